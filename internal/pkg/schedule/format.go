package schedule

import "fmt"

// FormatHour renders an hour of day as "09:00 AM".
func FormatHour(hour int) string {
	hour = ((hour % 24) + 24) % 24
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%02d:00 %s", displayHour, meridiem)
}

func FormatTimeRange(start, duration int) string {
	return FormatHour(start) + " - " + FormatHour(start+duration)
}
