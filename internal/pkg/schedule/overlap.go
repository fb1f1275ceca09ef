package schedule

import "timetable-service/internal/app/models"

// Overlap is a pair of classes on the same day sharing at least one hour.
type Overlap struct {
	Day    int
	First  models.ClassEntry
	Second models.ClassEntry
}

// FindOverlaps reports every overlapping pair. Neither the agenda nor the
// highlighter supports such input, so datasets are checked when loaded.
func FindOverlaps(entries []models.ClassEntry) []Overlap {
	var overlaps []Overlap
	for day := FirstDay; day <= LastDay; day++ {
		classes := ClassesForDay(entries, day)
		for i := 0; i < len(classes); i++ {
			for j := i + 1; j < len(classes); j++ {
				if classes[j].Start >= classes[i].End() {
					break
				}
				overlaps = append(overlaps, Overlap{Day: day, First: classes[i], Second: classes[j]})
			}
		}
	}
	return overlaps
}
