package constvars

type ContextKey string

const (
	ResourceBatches   = "batches"
	ResourceSchedules = "schedules"
	ResourceViewer    = "viewer"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CLIENT_ID_KEY            ContextKey = "client_id"
)

const (
	REQUEST_ID_PREFIX = "TMTBL_SVC_"
)

const (
	ScheduleSourceFile  = "file"
	ScheduleSourceMinio = "minio"
	ScheduleSourceMongo = "mongo"
)

const (
	MongoCollectionSchedules    = "schedules"
	MongoCollectionDisplayNames = "display_names"
)

const (
	PreferenceStoreRedis  = "redis"
	PreferenceStoreMemory = "memory"
)
