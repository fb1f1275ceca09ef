package config

import (
	"time"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessLogFileName:   utils.GetEnvString("LOGGER_ACCESS_LOG_FILENAME", "access.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CORSAllowedOrigins:         utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		Schedule: AppSchedule{
			Source:       utils.GetEnvString("SCHEDULE_SOURCE", constvars.ScheduleSourceFile),
			FilePath:     utils.GetEnvString("SCHEDULE_FILE_PATH", "data/schedules.json"),
			ObjectName:   utils.GetEnvString("SCHEDULE_OBJECT_NAME", "schedules.json"),
			DefaultBatch: utils.GetEnvString("SCHEDULE_DEFAULT_BATCH", "A1"),
		},
		Preferences: AppPreferences{
			Store:          utils.GetEnvString("PREFERENCE_STORE", constvars.PreferenceStoreRedis),
			TTLInDays:      utils.GetEnvInt("PREFERENCE_TTL_IN_DAYS", 365),
			RequestTimeout: utils.GetEnvDuration("PREFERENCE_REQUEST_TIMEOUT", 500*time.Millisecond),
		},
		Viewer: AppViewer{
			SessionIdleTTLInMinutes:      utils.GetEnvInt("VIEWER_SESSION_IDLE_TTL_IN_MINUTES", 30),
			DefaultTrackWidth:            utils.GetEnvFloat("VIEWER_DEFAULT_TRACK_WIDTH", 390),
			ResizeDebounceInMilliseconds: utils.GetEnvInt("VIEWER_RESIZE_DEBOUNCE_IN_MS", 200),
			GestureRateLimitPerSecond:    utils.GetEnvInt("VIEWER_GESTURE_RATE_LIMIT_PER_SECOND", 120),
			GestureBurst:                 utils.GetEnvInt("VIEWER_GESTURE_BURST", 240),
		},
		Highlighter: AppHighlighter{
			CronSpec:      utils.GetEnvString("HIGHLIGHTER_CRON_SPEC", "@every 1m"),
			PublishEvents: utils.GetEnvBool("HIGHLIGHTER_PUBLISH_EVENTS", false),
		},
		RabbitMQ: AppRabbitMQ{
			ActiveClassQueue: utils.GetEnvString("APP_RABBITMQ_ACTIVE_CLASS_QUEUE", "timetable.active_class"),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "timetable"),
		},
		MongoDB: AppMongoDB{
			DBName: utils.GetEnvString("MONGODB_DB_NAME", "timetable"),
		},
	}
}
