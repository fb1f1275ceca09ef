package schedule

import (
	"testing"
	"timetable-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type span struct {
	start int
	end   int
	label string
}

func breakSpans(agenda DayAgenda) []span {
	var spans []span
	for _, segment := range agenda.Segments {
		if segment.Kind == SegmentBreak {
			spans = append(spans, span{segment.Start, segment.End, segment.Label})
		}
	}
	return spans
}

func TestBuildDayAgenda(t *testing.T) {
	t.Run("Lunch Spanning Gap Is Split In Three", func(t *testing.T) {
		entries := []models.ClassEntry{
			{Day: 1, Start: 9, Duration: 2, Title: "MATH"},
			{Day: 1, Start: 14, Duration: 1, Title: "PHY"},
		}

		agenda := BuildDayAgenda(entries, 1)

		assert.Equal(t, []span{
			{11, 12, BreakLabel},
			{12, 13, LunchBreakLabel},
			{13, 14, BreakLabel},
		}, breakSpans(agenda))
		require.Len(t, agenda.Segments, 5)
		assert.Equal(t, SegmentClass, agenda.Segments[0].Kind)
		assert.Equal(t, SegmentClass, agenda.Segments[4].Kind)
	})

	t.Run("Gap Exactly At Lunch Emits Only Lunch", func(t *testing.T) {
		entries := []models.ClassEntry{
			{Day: 2, Start: 10, Duration: 2},
			{Day: 2, Start: 13, Duration: 2},
		}

		agenda := BuildDayAgenda(entries, 2)

		assert.Equal(t, []span{{12, 13, LunchBreakLabel}}, breakSpans(agenda))
		for _, segment := range agenda.Segments {
			assert.Positive(t, segment.Duration(), "no empty segments expected")
		}
	})

	t.Run("Gap Starting At Lunch Keeps Trailing Break", func(t *testing.T) {
		entries := []models.ClassEntry{
			{Day: 3, Start: 9, Duration: 3},
			{Day: 3, Start: 15, Duration: 1},
		}

		agenda := BuildDayAgenda(entries, 3)

		assert.Equal(t, []span{
			{12, 13, LunchBreakLabel},
			{13, 15, BreakLabel},
		}, breakSpans(agenda))
	})

	t.Run("Gap Before Lunch Is Split And Later Gap Is One Break", func(t *testing.T) {
		entries := []models.ClassEntry{
			{Day: 4, Start: 13, Duration: 1},
			{Day: 4, Start: 15, Duration: 1},
			{Day: 4, Start: 9, Duration: 1},
			{Day: 4, Start: 10, Duration: 1},
		}

		agenda := BuildDayAgenda(entries, 4)

		assert.Equal(t, []span{
			{11, 12, BreakLabel},
			{12, 13, LunchBreakLabel},
			{14, 15, BreakLabel},
		}, breakSpans(agenda))
	})

	t.Run("Gap Ending Before Lunch Ends Is Not Split", func(t *testing.T) {
		entries := []models.ClassEntry{
			{Day: 5, Start: 9, Duration: 1},
			{Day: 5, Start: 12, Duration: 1},
		}

		agenda := BuildDayAgenda(entries, 5)

		assert.Equal(t, []span{{10, 12, BreakLabel}}, breakSpans(agenda))
	})

	t.Run("Empty Day Yields Single No Classes Segment", func(t *testing.T) {
		entries := []models.ClassEntry{{Day: 1, Start: 9, Duration: 1}}

		agenda := BuildDayAgenda(entries, 6)

		require.Len(t, agenda.Segments, 1)
		assert.Equal(t, SegmentNoClasses, agenda.Segments[0].Kind)
		assert.Equal(t, NoClassesLabel, agenda.Segments[0].Label)
		assert.Empty(t, breakSpans(agenda))
	})

	t.Run("No Leading Break Before First Class", func(t *testing.T) {
		entries := []models.ClassEntry{{Day: 1, Start: 11, Duration: 1}}

		agenda := BuildDayAgenda(entries, 1)

		require.Len(t, agenda.Segments, 1)
		assert.Equal(t, 11, agenda.Segments[0].Start)
	})

	t.Run("Same Start Keeps Dataset Order", func(t *testing.T) {
		entries := []models.ClassEntry{
			{Day: 1, Start: 10, Duration: 1, Title: "second-in-time"},
			{Day: 1, Start: 9, Duration: 1, Title: "first"},
			{Day: 1, Start: 10, Duration: 1, Title: "tie-b"},
		}

		classes := ClassesForDay(entries, 1)

		require.Len(t, classes, 3)
		assert.Equal(t, "first", classes[0].Title)
		assert.Equal(t, "second-in-time", classes[1].Title)
		assert.Equal(t, "tie-b", classes[2].Title)
	})

	t.Run("Overlapping Classes Are Flagged", func(t *testing.T) {
		entries := []models.ClassEntry{
			{Day: 1, Start: 9, Duration: 2},
			{Day: 1, Start: 10, Duration: 1},
		}

		agenda := BuildDayAgenda(entries, 1)

		assert.True(t, agenda.Overlapping)
		assert.False(t, BuildDayAgenda([]models.ClassEntry{{Day: 1, Start: 9, Duration: 1}}, 1).Overlapping)
	})
}

func TestBuildDayAgendaCoversWholeDay(t *testing.T) {
	days := map[string][]models.ClassEntry{
		"packed": {
			{Day: 1, Start: 9, Duration: 1},
			{Day: 1, Start: 10, Duration: 2},
			{Day: 1, Start: 12, Duration: 1},
		},
		"sparse": {
			{Day: 1, Start: 8, Duration: 1},
			{Day: 1, Start: 11, Duration: 1},
			{Day: 1, Start: 16, Duration: 2},
		},
		"lunch edges": {
			{Day: 1, Start: 9, Duration: 3},
			{Day: 1, Start: 13, Duration: 1},
			{Day: 1, Start: 17, Duration: 1},
		},
	}

	for name, entries := range days {
		t.Run(name, func(t *testing.T) {
			agenda := BuildDayAgenda(entries, 1)
			classes := ClassesForDay(entries, 1)

			require.NotEmpty(t, agenda.Segments)
			assert.Equal(t, classes[0].Start, agenda.Segments[0].Start, "agenda starts at the first class")
			assert.Equal(t, classes[len(classes)-1].End(), agenda.Segments[len(agenda.Segments)-1].End, "agenda ends at the last class")
			for i := 1; i < len(agenda.Segments); i++ {
				assert.Equal(t, agenda.Segments[i-1].End, agenda.Segments[i].Start, "segments must be contiguous")
				assert.Positive(t, agenda.Segments[i].Duration())
			}
		})
	}
}

func TestBuildWeekAgenda(t *testing.T) {
	entries := []models.ClassEntry{
		{Day: 1, Start: 9, Duration: 1},
		{Day: 6, Start: 10, Duration: 1},
	}

	week := BuildWeekAgenda(entries)

	require.Len(t, week, TotalDays)
	for i, agenda := range week {
		assert.Equal(t, i+FirstDay, agenda.Day)
	}
	assert.Equal(t, SegmentNoClasses, week[2].Segments[0].Kind)
	assert.Equal(t, 0, week[5].ClassSegmentIndex(10))
	assert.Equal(t, -1, week[5].ClassSegmentIndex(9))
}
