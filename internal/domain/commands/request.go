package commands

import (
	"context"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

// withRequestTimeout bounds a single outbound fetch by the configured timeout.
func withRequestTimeout(
	ctx context.Context,
	settings *entities.Settings,
) (context.Context, context.CancelFunc) {
	if settings.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, settings.RequestTimeout)
}
