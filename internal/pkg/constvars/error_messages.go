package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"numeric":  "must be a number",
	"uuid":     "must be a valid UUID",

	"batch_name": "must be a short alphanumeric batch name",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientBatchNotFound                 = "batch not found"
	ErrClientInvalidDay                    = "day must be between 1 and 6"
	ErrClientTooManyRequests               = "too many requests, slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevURLParamValidationFailed   = "url param '%s' validation failed"
	ErrDevBatchNotFound              = "batch '%s' is not present in the schedule dataset"
	ErrDevInvalidDay                 = "day %d is outside the school week"
	ErrDevScheduleSourceUnknown      = "unknown schedule source '%s'"
	ErrDevScheduleReadFile           = "failed to read schedule file '%s'"
	ErrDevScheduleDecode             = "failed to decode schedule dataset from '%s'"
	ErrDevScheduleEmpty              = "schedule dataset from '%s' has no batches"
	ErrDevMinioGetObject             = "failed to get object '%s' from bucket '%s'"
	ErrDevMongoFindDocument          = "failed to find documents in collection '%s'"
	ErrDevMongoIterateDocuments      = "failed to iterate documents in collection '%s'"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue '%s'"
	ErrDevAmbiguousActiveClass       = "more than one class is running at the same hour"
	ErrDevPreferenceStoreUnavailable = "preference store is unavailable"
)
