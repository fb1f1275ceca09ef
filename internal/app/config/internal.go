package config

import "time"

type InternalConfig struct {
	App         App            `mapstructure:"app"`
	Schedule    AppSchedule    `mapstructure:"schedule"`
	Preferences AppPreferences `mapstructure:"preferences"`
	Viewer      AppViewer      `mapstructure:"viewer"`
	Highlighter AppHighlighter `mapstructure:"highlighter"`
	RabbitMQ    AppRabbitMQ    `mapstructure:"rabbitmq"`
	Minio       AppMinio       `mapstructure:"minio"`
	MongoDB     AppMongoDB     `mapstructure:"mongodb"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Address                    string   `mapstructure:"address"`
	Timezone                   string   `mapstructure:"timezone"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	CORSAllowedOrigins         []string `mapstructure:"cors_allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds  int      `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
}

// AppSchedule selects where the dataset is loaded from: a local JSON file,
// an object in the minio bucket or the mongo collections.
type AppSchedule struct {
	Source       string `mapstructure:"source"`
	FilePath     string `mapstructure:"file_path"`
	ObjectName   string `mapstructure:"object_name"`
	DefaultBatch string `mapstructure:"default_batch"`
}

type AppPreferences struct {
	// Store is "redis" or "memory"
	Store          string        `mapstructure:"store"`
	TTLInDays      int           `mapstructure:"ttl_in_days"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type AppViewer struct {
	SessionIdleTTLInMinutes      int     `mapstructure:"session_idle_ttl_in_minutes"`
	DefaultTrackWidth            float64 `mapstructure:"default_track_width"`
	ResizeDebounceInMilliseconds int     `mapstructure:"resize_debounce_in_milliseconds"`
	GestureRateLimitPerSecond    int     `mapstructure:"gesture_rate_limit_per_second"`
	GestureBurst                 int     `mapstructure:"gesture_burst"`
}

type AppHighlighter struct {
	// CronSpec is the robfig/cron schedule of the refresh pass, e.g. "@every 1m"
	CronSpec      string `mapstructure:"cron_spec"`
	PublishEvents bool   `mapstructure:"publish_events"`
}

type AppRabbitMQ struct {
	ActiveClassQueue string `mapstructure:"active_class_queue"`
}

type AppMinio struct {
	BucketName string `mapstructure:"bucket_name"`
}

type AppMongoDB struct {
	DBName string `mapstructure:"db_name"`
}

func (v AppViewer) SessionIdleTTL() time.Duration {
	return time.Duration(v.SessionIdleTTLInMinutes) * time.Minute
}

func (v AppViewer) ResizeDebounce() time.Duration {
	return time.Duration(v.ResizeDebounceInMilliseconds) * time.Millisecond
}

func (p AppPreferences) TTL() time.Duration {
	return time.Duration(p.TTLInDays) * 24 * time.Hour
}
