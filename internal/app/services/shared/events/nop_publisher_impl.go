package events

import (
	"context"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type nopPublisher struct {
	Log *zap.Logger
}

// NewNopPublisher is used when event publishing is disabled.
func NewNopPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &nopPublisher{Log: logger}
}

func (p *nopPublisher) PublishActiveClassChanged(ctx context.Context, event *models.ActiveClassEvent) error {
	p.Log.Debug("nopPublisher.PublishActiveClassChanged dropped event",
		zap.String(constvars.LoggingBatchKey, event.Batch),
	)
	return nil
}
