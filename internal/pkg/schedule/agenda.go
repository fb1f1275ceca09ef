package schedule

import (
	"sort"
	"timetable-service/internal/app/models"
)

const (
	LunchStartHour = 12
	LunchEndHour   = 13

	BreakLabel      = "Break"
	LunchBreakLabel = "Lunch Break"
	NoClassesLabel  = "No Classes Today!"
)

type SegmentKind string

const (
	SegmentClass     SegmentKind = "class"
	SegmentBreak     SegmentKind = "break"
	SegmentNoClasses SegmentKind = "no_classes"
)

// Segment is one card of a day agenda. Start and End are zero for the
// no-classes segment.
type Segment struct {
	Kind  SegmentKind
	Start int
	End   int
	Label string
	Class *models.ClassEntry
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

type DayAgenda struct {
	Day      int
	Segments []Segment
	// Overlapping is set when two classes of the day share hours. The
	// segments are still emitted in start order but are no longer contiguous.
	Overlapping bool
}

// ClassesForDay filters entries to day and orders them by start hour,
// keeping dataset order for classes that start together.
func ClassesForDay(entries []models.ClassEntry, day int) []models.ClassEntry {
	var classes []models.ClassEntry
	for _, entry := range entries {
		if entry.Day == day {
			classes = append(classes, entry)
		}
	}
	sort.SliceStable(classes, func(i, j int) bool {
		return classes[i].Start < classes[j].Start
	})
	return classes
}

// BuildDayAgenda packs one day's classes into an ordered run of class and
// break segments starting at the first class. Gaps that cover the lunch hour
// are split so lunch always gets its own segment.
func BuildDayAgenda(entries []models.ClassEntry, day int) DayAgenda {
	agenda := DayAgenda{Day: day}

	classes := ClassesForDay(entries, day)
	if len(classes) == 0 {
		agenda.Segments = []Segment{{Kind: SegmentNoClasses, Label: NoClassesLabel}}
		return agenda
	}

	lastEnd := classes[0].Start
	for i := range classes {
		class := classes[i]
		if i > 0 {
			if class.Start > lastEnd {
				agenda.Segments = append(agenda.Segments, breakSegments(lastEnd, class.Start)...)
			} else if class.Start < lastEnd {
				agenda.Overlapping = true
			}
		}
		agenda.Segments = append(agenda.Segments, Segment{
			Kind:  SegmentClass,
			Start: class.Start,
			End:   class.End(),
			Class: &class,
		})
		lastEnd = class.End()
	}
	return agenda
}

// BuildWeekAgenda builds the agenda of every school day, Monday first.
func BuildWeekAgenda(entries []models.ClassEntry) []DayAgenda {
	week := make([]DayAgenda, 0, TotalDays)
	for day := FirstDay; day <= LastDay; day++ {
		week = append(week, BuildDayAgenda(entries, day))
	}
	return week
}

func breakSegments(gapStart, gapEnd int) []Segment {
	if gapStart > LunchStartHour || gapEnd < LunchEndHour {
		return []Segment{newBreak(gapStart, gapEnd, BreakLabel)}
	}

	var segments []Segment
	if gapStart < LunchStartHour {
		segments = append(segments, newBreak(gapStart, LunchStartHour, BreakLabel))
	}
	segments = append(segments, newBreak(LunchStartHour, LunchEndHour, LunchBreakLabel))
	if gapEnd > LunchEndHour {
		segments = append(segments, newBreak(LunchEndHour, gapEnd, BreakLabel))
	}
	return segments
}

func newBreak(start, end int, label string) Segment {
	return Segment{Kind: SegmentBreak, Start: start, End: end, Label: label}
}

// ClassSegmentIndex returns the position of the class segment starting at
// start, or -1.
func (a DayAgenda) ClassSegmentIndex(start int) int {
	for i, segment := range a.Segments {
		if segment.Kind == SegmentClass && segment.Start == start {
			return i
		}
	}
	return -1
}
