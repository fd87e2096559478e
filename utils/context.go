package utils

import "context"

type contextKey string

// RequestIDKey carries the per-request id through the context chain.
const RequestIDKey = contextKey("request_id")

// RequestIDFromContext returns the request id injected by the middleware, or
// an empty string when absent.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(RequestIDKey).(string); ok {
		return v
	}
	return ""
}
