package handler

import (
	"context"
	"time"

	dErrors "personnummer/pkg/domain-errors"
	"personnummer/pkg/requestcontext"
)

// ParseRequest is the HTTP request body for POST /personnummer/parse and
// POST /personnummer/validate.
//
// Input is left untyped so that non-string JSON values reach the service and
// are rejected as contract violations rather than decode failures.
type ParseRequest struct {
	Input any `json:"input"`
	// At overrides the request time as the reference instant.
	At *time.Time `json:"at,omitempty"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ParseRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.At != nil && r.At.IsZero() {
		return dErrors.New(dErrors.CodeBadRequest, "at must be a non-zero RFC 3339 timestamp")
	}
	return nil
}

func (r *ParseRequest) applyReferenceTime(ctx context.Context) context.Context {
	if r.At == nil {
		return ctx
	}
	return requestcontext.WithTime(ctx, *r.At)
}

// FormatRequest is the HTTP request body for POST /personnummer/format.
type FormatRequest struct {
	ParseRequest
	// Length is 10 or 12; zero selects the server default.
	Length int `json:"length,omitempty"`
}

func (r *FormatRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return r.ParseRequest.Validate()
}
