package schedules

import (
	"fmt"
	"io"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewScheduleSource picks the dataset source named by SCHEDULE_SOURCE. The
// minio and mongo clients may be nil when the file source is configured.
func NewScheduleSource(internalConfig *config.InternalConfig, minioClient *minio.Client, mongoClient *mongo.Client) (contracts.ScheduleSource, error) {
	switch internalConfig.Schedule.Source {
	case constvars.ScheduleSourceFile:
		return NewScheduleFileSource(internalConfig.Schedule.FilePath), nil
	case constvars.ScheduleSourceMinio:
		if minioClient == nil {
			return nil, exceptions.ErrScheduleSourceUnknown(fmt.Errorf("minio client is not configured"), internalConfig.Schedule.Source)
		}
		return NewScheduleMinioSource(minioClient, internalConfig.Minio.BucketName, internalConfig.Schedule.ObjectName), nil
	case constvars.ScheduleSourceMongo:
		if mongoClient == nil {
			return nil, exceptions.ErrScheduleSourceUnknown(fmt.Errorf("mongo client is not configured"), internalConfig.Schedule.Source)
		}
		return NewScheduleMongoSource(mongoClient, internalConfig.MongoDB.DBName), nil
	default:
		return nil, exceptions.ErrScheduleSourceUnknown(nil, internalConfig.Schedule.Source)
	}
}

func decodeDataset(reader io.Reader, origin string) (*models.Dataset, error) {
	var dataset models.Dataset
	err := json.NewDecoder(reader).Decode(&dataset)
	if err != nil {
		return nil, exceptions.ErrScheduleDecode(err, origin)
	}
	if len(dataset.Batches) == 0 {
		return nil, exceptions.ErrScheduleEmpty(nil, origin)
	}
	return &dataset, nil
}
