// Package utils holds small helpers shared by the adapter, the debug API and
// the services: request-scoped context values, JSON responses, the REST
// client and id generation.
package utils

import "context"

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey carries the id that ties a debug API request to the daemon
// calls it triggers.
var TraceIDCtxKey = contextKey("traceID")

// TraceIDHeader is the header the trace id travels in, both on the debug API
// and on requests to the wallet daemon.
const TraceIDHeader = "X-Trace-ID"

// WithTraceID returns a copy of ctx carrying traceID. An empty id leaves ctx
// untouched.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		return ctx
	}
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored by [WithTraceID].
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
