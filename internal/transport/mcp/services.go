package mcp

import (
	"go.uber.org/zap"

	"github.com/kailas-cloud/esmcp/internal/compat"
	"github.com/kailas-cloud/esmcp/internal/engine"
	batchuc "github.com/kailas-cloud/esmcp/internal/usecase/batch"
	clusteruc "github.com/kailas-cloud/esmcp/internal/usecase/cluster"
	collectionuc "github.com/kailas-cloud/esmcp/internal/usecase/collection"
	documentuc "github.com/kailas-cloud/esmcp/internal/usecase/document"
	reindexuc "github.com/kailas-cloud/esmcp/internal/usecase/reindex"
	searchuc "github.com/kailas-cloud/esmcp/internal/usecase/search"
	templateuc "github.com/kailas-cloud/esmcp/internal/usecase/template"
)

// NewServices wires every use case to one shared engine connection.
// Version-sensitive use cases go through a Runner that detects the engine
// version on each call.
func NewServices(store engine.Store, logger *zap.Logger) Services {
	runner := compat.NewRunner(compat.NewDetector(store, logger), store)
	return Services{
		Collections: collectionuc.New(store, runner),
		Search:      searchuc.New(store, store),
		Batch:       batchuc.New(store),
		Templates:   templateuc.New(runner),
		Reindex:     reindexuc.New(runner),
		Cluster:     clusteruc.New(store),
		Documents:   documentuc.New(store),
	}
}
