package schedule

import (
	"errors"
	"timetable-service/internal/app/models"
)

// ErrAmbiguousActiveClass is returned when overlapping classes make the
// running class undecidable.
var ErrAmbiguousActiveClass = errors.New("more than one class is running at this hour")

// FindActiveClass returns the class running at hour on weekday (0=Sunday).
// It returns nil when nothing runs, including outside the school week.
func FindActiveClass(entries []models.ClassEntry, weekday, hour int) (*models.ClassEntry, error) {
	if !IsSchoolDay(weekday) {
		return nil, nil
	}

	var active *models.ClassEntry
	for i := range entries {
		if entries[i].Day != weekday || !entries[i].Covers(hour) {
			continue
		}
		if active != nil {
			return nil, ErrAmbiguousActiveClass
		}
		class := entries[i]
		active = &class
	}
	return active, nil
}
