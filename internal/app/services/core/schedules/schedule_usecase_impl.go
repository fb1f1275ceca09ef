package schedules

import (
	"context"
	"fmt"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/schedule"
	"timetable-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepository contracts.ScheduleRepository
	Highlighter        contracts.Highlighter
	Clock              contracts.Clock
	Log                *zap.Logger
}

func NewScheduleUsecase(
	scheduleRepository contracts.ScheduleRepository,
	highlighter contracts.Highlighter,
	clock contracts.Clock,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		ScheduleRepository: scheduleRepository,
		Highlighter:        highlighter,
		Clock:              clock,
		Log:                logger,
	}
}

func (uc *scheduleUsecase) ListBatches(ctx context.Context) (*responses.BatchList, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.ListBatches called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := &responses.BatchList{
		Batches:      uc.ScheduleRepository.BatchNames(),
		DefaultBatch: uc.ScheduleRepository.DefaultBatch(),
	}

	uc.Log.Info("scheduleUsecase.ListBatches succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBatchCountKey, len(response.Batches)),
	)
	return response, nil
}

func (uc *scheduleUsecase) GetDayAgenda(ctx context.Context, batch string, day int) (*responses.DayAgenda, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.GetDayAgenda called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchKey, batch),
		zap.Int(constvars.LoggingDayKey, day),
	)

	if !schedule.IsSchoolDay(day) {
		err := exceptions.ErrInvalidDay(nil, day)
		uc.Log.Error("scheduleUsecase.GetDayAgenda invalid day",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	entries, err := uc.findClasses(ctx, batch)
	if err != nil {
		return nil, err
	}

	active := uc.activeClass(ctx, batch)
	agenda := RenderDayAgenda(uc.ScheduleRepository.Dataset(), batch, schedule.BuildDayAgenda(entries, day), active)

	uc.Log.Info("scheduleUsecase.GetDayAgenda succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchKey, batch),
		zap.Int(constvars.LoggingDayKey, day),
		zap.Bool("overlapping", agenda.Overlapping),
	)
	return &agenda, nil
}

func (uc *scheduleUsecase) GetWeekGrid(ctx context.Context, batch string) (*responses.Grid, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.GetWeekGrid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchKey, batch),
	)

	entries, err := uc.findClasses(ctx, batch)
	if err != nil {
		return nil, err
	}

	active := uc.activeClass(ctx, batch)
	grid := RenderGrid(uc.ScheduleRepository.Dataset(), batch, schedule.BuildGrid(entries), active)

	uc.Log.Info("scheduleUsecase.GetWeekGrid succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchKey, batch),
	)
	return &grid, nil
}

func (uc *scheduleUsecase) GetActiveClass(ctx context.Context, batch string) (*responses.ActiveClassLookup, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.GetActiveClass called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchKey, batch),
	)

	entries, err := uc.findClasses(ctx, batch)
	if err != nil {
		return nil, err
	}

	now := uc.Clock.Now()
	active := uc.activeClass(ctx, batch)
	response := &responses.ActiveClassLookup{
		Batch:     batch,
		Weekday:   int(now.Weekday()),
		Hour:      now.Hour(),
		Active:    RenderActiveClass(uc.ScheduleRepository.Dataset(), entries, active),
		CheckedAt: now,
	}

	uc.Log.Info("scheduleUsecase.GetActiveClass succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchKey, batch),
		zap.Bool("active", response.Active != nil),
	)
	return response, nil
}

func (uc *scheduleUsecase) findClasses(ctx context.Context, batch string) ([]models.ClassEntry, error) {
	entries, ok := uc.ScheduleRepository.FindClassesByBatch(batch)
	if !ok {
		err := exceptions.ErrBatchNotFound(fmt.Errorf("unknown batch"), batch)
		uc.Log.Error("scheduleUsecase batch not found",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBatchKey, batch),
			zap.Error(err),
		)
		return nil, err
	}
	return entries, nil
}

// activeClass never fails the request: a highlighter error only means
// nothing is highlighted.
func (uc *scheduleUsecase) activeClass(ctx context.Context, batch string) *models.ActiveClass {
	active, err := uc.Highlighter.FindActiveClass(ctx, batch)
	if err != nil {
		uc.Log.Warn("scheduleUsecase error finding active class",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBatchKey, batch),
			zap.Error(err),
		)
		return nil
	}
	return active
}
