package schedules

import (
	"context"
	"os"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"
)

type scheduleFileSource struct {
	Path string
}

func NewScheduleFileSource(path string) contracts.ScheduleSource {
	return &scheduleFileSource{Path: path}
}

func (s *scheduleFileSource) Name() string {
	return constvars.ScheduleSourceFile
}

func (s *scheduleFileSource) Load(ctx context.Context) (*models.Dataset, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, exceptions.ErrScheduleReadFile(err, s.Path)
	}
	defer file.Close()

	return decodeDataset(file, s.Path)
}
