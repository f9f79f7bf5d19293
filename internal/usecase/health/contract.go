package health

import (
	"context"

	"github.com/kailas-cloud/esmcp/internal/engine"
)

// InfoReader reads the engine identity.
type InfoReader interface {
	Info(ctx context.Context) (*engine.Info, error)
}
