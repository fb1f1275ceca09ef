package schedule

// The school week runs Monday (1) through Saturday (6). Day indexes used by
// the carousel are 0-based.
const (
	FirstDay  = 1
	LastDay   = 6
	TotalDays = LastDay - FirstDay + 1
)

var DayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// IsSchoolDay reports whether weekday (0=Sunday) is a day with classes.
func IsSchoolDay(weekday int) bool {
	return weekday >= FirstDay && weekday <= LastDay
}

func IsValidDayIndex(index int) bool {
	return index >= 0 && index < TotalDays
}

// DayIndexForWeekday maps today to a carousel index; Sunday opens Monday.
func DayIndexForWeekday(weekday int) int {
	if IsSchoolDay(weekday) {
		return weekday - FirstDay
	}
	return 0
}

func DayNumberForIndex(index int) int {
	return index + FirstDay
}

// NextDayIndex advances one day, wrapping Saturday back to Monday.
func NextDayIndex(index int) int {
	return wrapDayIndex(index + 1)
}

// PrevDayIndex goes back one day, wrapping Monday to Saturday.
func PrevDayIndex(index int) int {
	return wrapDayIndex(index - 1)
}

func wrapDayIndex(index int) int {
	index %= TotalDays
	if index < 0 {
		index += TotalDays
	}
	return index
}

func DayName(day int) string {
	if day < 0 || day >= len(DayNames) {
		return ""
	}
	return DayNames[day]
}
