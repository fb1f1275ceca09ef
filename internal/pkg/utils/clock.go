package utils

import "time"

// SystemClock reads the wall clock in time.Local, which main sets from
// APP_TIMEZONE.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
