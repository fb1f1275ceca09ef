package database

import (
	"context"
	"fmt"
	"timetable-service/internal/app/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(driverConfig *config.DriverConfig, logger *zap.Logger) *redis.Client {
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		logger.Fatal("Could not connect to Redis", zap.Error(err))
	}

	logger.Info("Successfully connected to redis",
		zap.String("host", driverConfig.Redis.Host),
		zap.String("port", driverConfig.Redis.Port),
	)
	return rdb
}
