package contracts

import (
	"context"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
)

type ViewerUsecase interface {
	ViewerRefresher
	GetViewer(ctx context.Context, clientID string) (*responses.Viewer, error)
	SelectBatch(ctx context.Context, clientID string, request *requests.SelectBatch) (*responses.Viewer, bool, error)
	SetViewMode(ctx context.Context, clientID string, request *requests.SetViewMode) (*responses.Viewer, error)
	JumpToDay(ctx context.Context, clientID string, request *requests.JumpToDay) (*responses.Viewer, bool, error)
	HandleKey(ctx context.Context, clientID string, request *requests.KeyPress) (*responses.Viewer, bool, error)
	HandleGesture(ctx context.Context, clientID string, request *requests.Gesture) (*responses.Gesture, bool, error)
	Resize(ctx context.Context, clientID string, request *requests.Resize) (*responses.Resize, error)
	ToggleTheme(ctx context.Context, clientID string) (*responses.Theme, error)
	SessionCount() int
	Stop()
}
