package contracts

import (
	"context"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/dto/responses"
)

// ScheduleSource reads the whole dataset from one backing store.
type ScheduleSource interface {
	Name() string
	Load(ctx context.Context) (*models.Dataset, error)
}

type ScheduleRepository interface {
	Dataset() *models.Dataset
	BatchNames() []string
	DefaultBatch() string
	HasBatch(batch string) bool
	FindClassesByBatch(batch string) ([]models.ClassEntry, bool)
}

type ScheduleUsecase interface {
	ListBatches(ctx context.Context) (*responses.BatchList, error)
	GetDayAgenda(ctx context.Context, batch string, day int) (*responses.DayAgenda, error)
	GetWeekGrid(ctx context.Context, batch string) (*responses.Grid, error)
	GetActiveClass(ctx context.Context, batch string) (*responses.ActiveClassLookup, error)
}
