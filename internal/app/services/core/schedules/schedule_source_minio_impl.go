package schedules

import (
	"context"
	"fmt"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type scheduleMinioSource struct {
	Client     *minio.Client
	BucketName string
	ObjectName string
}

// NewScheduleMinioSource reads the dataset JSON from one object, in the same
// layout as the file source.
func NewScheduleMinioSource(client *minio.Client, bucketName, objectName string) contracts.ScheduleSource {
	return &scheduleMinioSource{
		Client:     client,
		BucketName: bucketName,
		ObjectName: objectName,
	}
}

func (s *scheduleMinioSource) Name() string {
	return constvars.ScheduleSourceMinio
}

func (s *scheduleMinioSource) Load(ctx context.Context) (*models.Dataset, error) {
	object, err := s.Client.GetObject(ctx, s.BucketName, s.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, s.ObjectName, s.BucketName)
	}
	defer object.Close()

	// GetObject is lazy; Stat surfaces a missing object before decoding.
	_, err = object.Stat()
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, s.ObjectName, s.BucketName)
	}

	return decodeDataset(object, fmt.Sprintf("minio://%s/%s", s.BucketName, s.ObjectName))
}
