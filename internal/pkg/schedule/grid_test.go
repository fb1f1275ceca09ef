package schedule

import (
	"testing"
	"timetable-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid(t *testing.T) {
	t.Run("Multi Hour Class Spans Rows", func(t *testing.T) {
		entries := []models.ClassEntry{{Day: 2, Start: 10, Duration: 2, Title: "LAB"}}

		grid := BuildGrid(entries)

		require.Len(t, grid.Rows, 8)
		cell := grid.Cell(10, 2)
		require.NotNil(t, cell)
		require.NotNil(t, cell.Class)
		assert.Equal(t, 2, cell.RowSpan)
		assert.Equal(t, "LAB", cell.Class.Title)

		assert.Nil(t, grid.Cell(11, 2), "hour 11 of day 2 is covered by the span")
		assert.Len(t, grid.Rows[2].Cells, 5, "the covered row renders one cell less")
		assert.NotNil(t, grid.Cell(11, 3))
	})

	t.Run("Empty Lunch Cells Are Flagged", func(t *testing.T) {
		entries := []models.ClassEntry{{Day: 1, Start: 12, Duration: 1}}

		grid := BuildGrid(entries)

		assert.False(t, grid.Cell(12, 1).Lunch, "a class at noon is not a lunch placeholder")
		for day := 2; day <= LastDay; day++ {
			assert.True(t, grid.Cell(12, day).Lunch)
		}
		assert.False(t, grid.Cell(13, 2).Lunch)
	})

	t.Run("Class Spanning Lunch Hides The Placeholder", func(t *testing.T) {
		entries := []models.ClassEntry{{Day: 4, Start: 11, Duration: 3}}

		grid := BuildGrid(entries)

		assert.Nil(t, grid.Cell(12, 4))
		assert.Nil(t, grid.Cell(13, 4))
		assert.Equal(t, 3, grid.Cell(11, 4).RowSpan)
	})

	t.Run("Classes Outside Displayed Hours Are Skipped", func(t *testing.T) {
		entries := []models.ClassEntry{
			{Day: 1, Start: 8, Duration: 2},
			{Day: 1, Start: 17, Duration: 1},
		}

		grid := BuildGrid(entries)

		for _, row := range grid.Rows {
			for _, cell := range row.Cells {
				assert.Nil(t, cell.Class)
			}
		}
	})

	t.Run("Rows Cover Nine To Four", func(t *testing.T) {
		grid := BuildGrid(nil)

		require.Len(t, grid.Rows, 8)
		assert.Equal(t, GridFirstHour, grid.Rows[0].Hour)
		assert.Equal(t, GridLastHour, grid.Rows[7].Hour)
		for _, row := range grid.Rows {
			assert.Len(t, row.Cells, TotalDays)
		}
	})
}
