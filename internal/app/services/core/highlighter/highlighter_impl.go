package highlighter

import (
	"context"
	"errors"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/schedule"
	"timetable-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type highlighter struct {
	ScheduleRepository contracts.ScheduleRepository
	Clock              contracts.Clock
	Log                *zap.Logger
}

func NewHighlighter(scheduleRepository contracts.ScheduleRepository, clock contracts.Clock, logger *zap.Logger) contracts.Highlighter {
	return &highlighter{
		ScheduleRepository: scheduleRepository,
		Clock:              clock,
		Log:                logger,
	}
}

// FindActiveClass maps the current weekday and hour to the running class of
// batch. Overlapping classes leave nothing highlighted.
func (h *highlighter) FindActiveClass(ctx context.Context, batch string) (*models.ActiveClass, error) {
	entries, ok := h.ScheduleRepository.FindClassesByBatch(batch)
	if !ok {
		return nil, nil
	}

	now := h.Clock.Now()
	weekday := int(now.Weekday())
	hour := now.Hour()

	entry, err := schedule.FindActiveClass(entries, weekday, hour)
	if err != nil {
		if errors.Is(err, schedule.ErrAmbiguousActiveClass) {
			h.Log.Warn("highlighter.FindActiveClass "+constvars.ErrDevAmbiguousActiveClass,
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingBatchKey, batch),
				zap.Int(constvars.LoggingDayKey, weekday),
				zap.Int(constvars.LoggingHourKey, hour),
			)
			return nil, nil
		}
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	return &models.ActiveClass{
		Batch:     batch,
		Entry:     *entry,
		Weekday:   weekday,
		Hour:      hour,
		CheckedAt: now,
	}, nil
}
