package schedule

import "timetable-service/internal/app/models"

const (
	GridFirstHour = 9
	GridLastHour  = 16
)

// GridCell is a rendered table cell. Cells covered by a multi-hour class
// above them are not emitted at all.
type GridCell struct {
	Day     int
	Hour    int
	RowSpan int
	Lunch   bool
	Class   *models.ClassEntry
}

type GridRow struct {
	Hour  int
	Cells []GridCell
}

type Grid struct {
	Rows []GridRow
}

type cellKey struct {
	hour int
	day  int
}

// GridHours lists the displayed hour rows.
func GridHours() []int {
	hours := make([]int, 0, GridLastHour-GridFirstHour+1)
	for hour := GridFirstHour; hour <= GridLastHour; hour++ {
		hours = append(hours, hour)
	}
	return hours
}

// BuildGrid lays the week out as hour rows by day columns. A class is placed
// at the cell of its start hour and spans Duration rows; empty cells at the
// lunch hour are flagged. Classes starting outside the displayed hours are
// not shown.
func BuildGrid(entries []models.ClassEntry) Grid {
	covered := make(map[cellKey]bool)
	var grid Grid

	for _, hour := range GridHours() {
		row := GridRow{Hour: hour}
		for day := FirstDay; day <= LastDay; day++ {
			if covered[cellKey{hour: hour, day: day}] {
				continue
			}

			class := findStartingAt(entries, day, hour)
			if class == nil {
				row.Cells = append(row.Cells, GridCell{
					Day:     day,
					Hour:    hour,
					RowSpan: 1,
					Lunch:   hour == LunchStartHour,
				})
				continue
			}

			for i := 1; i < class.Duration; i++ {
				covered[cellKey{hour: hour + i, day: day}] = true
			}
			rowSpan := class.Duration
			if rowSpan < 1 {
				rowSpan = 1
			}
			row.Cells = append(row.Cells, GridCell{
				Day:     day,
				Hour:    hour,
				RowSpan: rowSpan,
				Class:   class,
			})
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// Cell returns the rendered cell at (hour, day), or nil when that position
// is covered by a span or outside the grid.
func (g Grid) Cell(hour, day int) *GridCell {
	for i := range g.Rows {
		if g.Rows[i].Hour != hour {
			continue
		}
		for j := range g.Rows[i].Cells {
			if g.Rows[i].Cells[j].Day == day {
				return &g.Rows[i].Cells[j]
			}
		}
	}
	return nil
}

func findStartingAt(entries []models.ClassEntry, day, hour int) *models.ClassEntry {
	for i := range entries {
		if entries[i].Day == day && entries[i].Start == hour {
			class := entries[i]
			return &class
		}
	}
	return nil
}
