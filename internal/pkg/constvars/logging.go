package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingClientIDKey     = "client_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingOperationKey    = "operation"
	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"

	LoggingBatchKey        = "batch"
	LoggingBatchCountKey   = "batch_count"
	LoggingClassCountKey   = "class_count"
	LoggingDayKey          = "day"
	LoggingDayIndexKey     = "day_index"
	LoggingHourKey         = "hour"
	LoggingViewKey         = "view"
	LoggingThemeKey        = "theme"
	LoggingPreferenceKey   = "preference_key"
	LoggingKeyboardKey     = "key"
	LoggingGesturePhaseKey = "gesture_phase"
	LoggingGestureOutcome  = "gesture_outcome"
	LoggingTrackWidthKey   = "track_width"
	LoggingSessionCountKey = "session_count"
	LoggingSourceKey       = "source"
	LoggingQueueKey        = "queue"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
)
