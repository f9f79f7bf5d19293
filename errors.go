package esmcp

import "github.com/kailas-cloud/esmcp/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrValidation       = domain.ErrValidation
	ErrNotFound         = domain.ErrNotFound
	ErrConnection       = domain.ErrConnection
	ErrVersionDetection = domain.ErrVersionDetection
)
