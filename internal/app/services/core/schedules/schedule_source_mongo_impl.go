package schedules

import (
	"context"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type scheduleMongoSource struct {
	Schedules    *mongo.Collection
	DisplayNames *mongo.Collection
}

// NewScheduleMongoSource reads one document per batch from the schedules
// collection and the subject and teacher lookups from display_names.
func NewScheduleMongoSource(db *mongo.Client, dbName string) contracts.ScheduleSource {
	database := db.Database(dbName)
	return &scheduleMongoSource{
		Schedules:    database.Collection(constvars.MongoCollectionSchedules),
		DisplayNames: database.Collection(constvars.MongoCollectionDisplayNames),
	}
}

func (s *scheduleMongoSource) Name() string {
	return constvars.ScheduleSourceMongo
}

func (s *scheduleMongoSource) Load(ctx context.Context) (*models.Dataset, error) {
	var batches []models.BatchSchedule
	cursor, err := s.Schedules.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoCollectionSchedules)
	}
	err = cursor.All(ctx, &batches)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err, constvars.MongoCollectionSchedules)
	}
	if len(batches) == 0 {
		return nil, exceptions.ErrScheduleEmpty(nil, constvars.MongoCollectionSchedules)
	}

	var names []models.DisplayName
	cursor, err = s.DisplayNames.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoCollectionDisplayNames)
	}
	err = cursor.All(ctx, &names)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err, constvars.MongoCollectionDisplayNames)
	}

	dataset := &models.Dataset{Batches: make(map[string][]models.ClassEntry, len(batches))}
	for _, batch := range batches {
		dataset.Batches[batch.Batch] = append(dataset.Batches[batch.Batch], batch.Classes...)
	}
	dataset.Merge(names)
	return dataset, nil
}
