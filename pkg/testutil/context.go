package testutil

import (
	"net/http"
	"time"

	"personnummer/pkg/requestcontext"
)

// WithRequestTime pins the reference instant on the request context.
// This simulates the requesttime middleware with a fixed clock.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}

// WithRequestID adds a request ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
