package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetBatchesSuccessMessage     = "batches retrieved successfully"
	GetDayAgendaSuccessMessage   = "day agenda retrieved successfully"
	GetWeekGridSuccessMessage    = "week grid retrieved successfully"
	GetActiveClassSuccessMessage = "active class retrieved successfully"
	GetViewerSuccessMessage      = "viewer state retrieved successfully"
	SelectBatchSuccessMessage    = "batch selected successfully"
	SelectBatchIgnoredMessage    = "batch is not available, selection unchanged"
	SetViewModeSuccessMessage    = "view mode updated successfully"
	JumpToDaySuccessMessage      = "day updated successfully"
	JumpToDayIgnoredMessage      = "day is out of range, selection unchanged"
	KeyHandledSuccessMessage     = "key handled successfully"
	KeyIgnoredMessage            = "key ignored"
	GestureHandledSuccessMessage = "gesture handled successfully"
	GestureIgnoredMessage        = "gestures are only handled in swipe view"
	ResizeScheduledMessage       = "resize scheduled"
	ToggleThemeSuccessMessage    = "theme toggled successfully"
	HealthyMessage               = "ok"
)
