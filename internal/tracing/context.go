package tracing

import "context"

type contextKey string

const computationIDKey contextKey = "computation_id"

// ComputationIDFromContext returns the computation ID carried by ctx, or ""
// when none is present.
func ComputationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(computationIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithComputationID attaches id to ctx. An empty id returns ctx unchanged.
func ContextWithComputationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, computationIDKey, id)
}
