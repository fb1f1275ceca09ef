package contracts

import (
	"context"
	"timetable-service/internal/app/models"
)

type EventPublisher interface {
	PublishActiveClassChanged(ctx context.Context, event *models.ActiveClassEvent) error
}
