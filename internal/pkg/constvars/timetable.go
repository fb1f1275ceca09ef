package constvars

// Preference keys shared with the page.
const (
	PreferenceKeySelectedBatch = "selectedBatch"
	PreferenceKeyPreferredView = "preferredView"
	PreferenceKeyTheme         = "theme"
)

const (
	RedisKeyPreferenceFormat = "timetable:prefs:%s:%s"
)

const (
	ViewSwipe = "swipe"
	ViewTable = "table"

	ThemeDark  = "dark"
	ThemeLight = "light"

	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"

	PointerTouch = "touch"
	PointerMouse = "mouse"

	GesturePhaseStart = "start"
	GesturePhaseMove  = "move"
	GesturePhaseEnd   = "end"
	GesturePhaseLeave = "leave"
)

const (
	BatchLabelFormat         = "Batch %s"
	FloatingBatchLabelFormat = "BATCH %s"
	DayViewIDFormat          = "day-%d"
)

const (
	ActiveClassEventType = "timetable.active_class.changed"
)
