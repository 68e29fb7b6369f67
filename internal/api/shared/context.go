// Package shared provides helpers used by every API handler: request
// decoding and validation, standardized JSON responses, and the context
// keys that carry per-request values through the middleware chain.
package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is a dedicated type for request-context keys so values set
// by this package cannot collide with keys from other packages.
type ContextKey string

const (
	// UserIDContextKey carries the authenticated user's ID (uuid.UUID),
	// set by the auth middleware after token validation.
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey carries the trace ID that correlates log entries for a
	// single request.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID returns a child context carrying a freshly generated trace ID.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID returns the trace ID stored in ctx, or the empty string when
// the context carries none.
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}
