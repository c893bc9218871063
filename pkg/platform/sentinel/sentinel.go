package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and infrastructure layers
// return these (optionally wrapped) so callers can tell a transient condition
// from a bad request.
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	// ErrUnavailable: a component is closed or temporarily at capacity.
	ErrUnavailable = errors.New("unavailable")
)
