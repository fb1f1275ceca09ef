package contracts

import (
	"context"
	"timetable-service/internal/app/models"
)

type Highlighter interface {
	FindActiveClass(ctx context.Context, batch string) (*models.ActiveClass, error)
}

// ViewerRefresher is driven by the highlighter worker on every tick.
type ViewerRefresher interface {
	RefreshActiveClasses(ctx context.Context) int
	EvictIdleSessions(ctx context.Context) int
}
