package contracts

import (
	"context"
	"timetable-service/internal/app/models"
)

type PreferenceRepository interface {
	Get(ctx context.Context, clientID, key string) (string, bool, error)
	Set(ctx context.Context, clientID, key, value string) error
}

// PreferenceUsecase never fails: storage errors are logged and the defaults
// are used instead.
type PreferenceUsecase interface {
	Get(ctx context.Context, clientID, key, defaultValue string) string
	Set(ctx context.Context, clientID, key, value string)
	Load(ctx context.Context, clientID string) models.Preferences
}
