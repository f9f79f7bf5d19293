package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation signals malformed caller input, rejected before any engine call.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing collection, template or document.
	ErrNotFound = errors.New("not found")
	// ErrConnection signals an unreachable engine or a TLS/auth failure.
	ErrConnection = errors.New("engine connection failed")
	// ErrVersionDetection signals that the engine version could not be determined.
	// It is recoverable: callers fall back to the default generation.
	ErrVersionDetection = errors.New("version detection failed")
)

// Invalid wraps ErrValidation with a caller-facing message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// RequireName trims value and rejects it when empty.
func RequireName(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", Invalid("%s is required", field)
	}
	return v, nil
}
