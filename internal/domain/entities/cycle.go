package entities

import "context"

type cycleIDKey struct{}

// WithCycleID tags ctx with the id of the current resolution cycle.
func WithCycleID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, cycleIDKey{}, id)
}

// CycleID returns the resolution cycle id stored in ctx, or "-" if none.
func CycleID(ctx context.Context) string {
	if id, ok := ctx.Value(cycleIDKey{}).(string); ok && id != "" {
		return id
	}
	return "-"
}
