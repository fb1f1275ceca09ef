package schedules

import (
	"context"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/schedule"

	"go.uber.org/zap"
)

// scheduleRepository holds the dataset in memory. It is loaded once and
// never mutated afterwards, so reads need no locking.
type scheduleRepository struct {
	dataset      *models.Dataset
	defaultBatch string
}

// NewScheduleRepository loads the dataset from source, drops malformed class
// entries and resolves the default batch: the configured one when present,
// then the dataset's own, then the first batch name.
func NewScheduleRepository(ctx context.Context, source contracts.ScheduleSource, configuredDefault string, logger *zap.Logger) (contracts.ScheduleRepository, error) {
	logger.Info("scheduleRepository loading dataset",
		zap.String(constvars.LoggingSourceKey, source.Name()),
	)

	dataset, err := source.Load(ctx)
	if err != nil {
		logger.Error("scheduleRepository error loading dataset",
			zap.String(constvars.LoggingSourceKey, source.Name()),
			zap.Error(err),
		)
		return nil, err
	}

	return newScheduleRepository(dataset, configuredDefault, logger), nil
}

func newScheduleRepository(dataset *models.Dataset, configuredDefault string, logger *zap.Logger) *scheduleRepository {
	classCount := 0
	for batch, entries := range dataset.Batches {
		valid := entries[:0]
		for _, entry := range entries {
			if !schedule.IsSchoolDay(entry.Day) || entry.Duration < 1 || entry.Start < 0 || entry.End() > 24 {
				logger.Warn("scheduleRepository dropping malformed class entry",
					zap.String(constvars.LoggingBatchKey, batch),
					zap.Int(constvars.LoggingDayKey, entry.Day),
					zap.Int(constvars.LoggingHourKey, entry.Start),
					zap.Int("duration", entry.Duration),
					zap.String("title", entry.Title),
				)
				continue
			}
			valid = append(valid, entry)
		}
		dataset.Batches[batch] = valid
		classCount += len(valid)

		for _, overlap := range schedule.FindOverlaps(valid) {
			logger.Warn("scheduleRepository overlapping classes are not supported",
				zap.String(constvars.LoggingBatchKey, batch),
				zap.Int(constvars.LoggingDayKey, overlap.Day),
				zap.String("first", overlap.First.Title),
				zap.Int("first_start", overlap.First.Start),
				zap.String("second", overlap.Second.Title),
				zap.Int("second_start", overlap.Second.Start),
			)
		}
	}

	repo := &scheduleRepository{dataset: dataset}
	switch {
	case repo.HasBatch(configuredDefault):
		repo.defaultBatch = configuredDefault
	case repo.HasBatch(dataset.DefaultBatch):
		repo.defaultBatch = dataset.DefaultBatch
	default:
		if names := dataset.BatchNames(); len(names) > 0 {
			repo.defaultBatch = names[0]
		}
	}
	dataset.DefaultBatch = repo.defaultBatch

	logger.Info("scheduleRepository dataset loaded",
		zap.Int(constvars.LoggingBatchCountKey, len(dataset.Batches)),
		zap.Int(constvars.LoggingClassCountKey, classCount),
		zap.String(constvars.LoggingBatchKey, repo.defaultBatch),
	)
	return repo
}

func (r *scheduleRepository) Dataset() *models.Dataset {
	return r.dataset
}

func (r *scheduleRepository) BatchNames() []string {
	return r.dataset.BatchNames()
}

func (r *scheduleRepository) DefaultBatch() string {
	return r.defaultBatch
}

func (r *scheduleRepository) HasBatch(batch string) bool {
	if batch == "" {
		return false
	}
	_, ok := r.dataset.Batches[batch]
	return ok
}

// FindClassesByBatch returns the shared, read-only class list of batch.
func (r *scheduleRepository) FindClassesByBatch(batch string) ([]models.ClassEntry, bool) {
	entries, ok := r.dataset.Batches[batch]
	return entries, ok
}
