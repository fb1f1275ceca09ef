package schedules

import (
	"fmt"
	"strings"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/schedule"
)

const (
	scrollBlockCenter    = "center"
	scrollBehaviorSmooth = "smooth"
)

// RenderClassCard resolves the display fields of entry through the dataset
// lookups.
func RenderClassCard(dataset *models.Dataset, entry models.ClassEntry) responses.ClassCard {
	return responses.ClassCard{
		Day:       entry.Day,
		Start:     entry.Start,
		End:       entry.End(),
		TimeLabel: schedule.FormatTimeRange(entry.Start, entry.Duration),
		Title:     entry.Title,
		FullTitle: dataset.SubjectTitle(entry.Title, entry.Type),
		Code:      entry.Code,
		Teacher:   dataset.TeacherName(entry.Teacher),
		Type:      entry.Type,
		TypeBadge: strings.ToUpper(entry.Type),
	}
}

func RenderDayAgenda(dataset *models.Dataset, batch string, agenda schedule.DayAgenda, active *models.ActiveClass) responses.DayAgenda {
	rendered := responses.DayAgenda{
		Batch:       batch,
		Day:         agenda.Day,
		DayName:     schedule.DayName(agenda.Day),
		ViewID:      fmt.Sprintf(constvars.DayViewIDFormat, agenda.Day),
		Overlapping: agenda.Overlapping,
		Segments:    make([]responses.Segment, 0, len(agenda.Segments)),
	}

	for _, segment := range agenda.Segments {
		item := responses.Segment{
			Kind:  string(segment.Kind),
			Label: segment.Label,
		}
		switch segment.Kind {
		case schedule.SegmentClass:
			card := RenderClassCard(dataset, *segment.Class)
			item.Start = segment.Start
			item.End = segment.End
			item.TimeLabel = card.TimeLabel
			item.Class = &card
			item.Active = isActiveAt(active, batch, agenda.Day, segment.Start)
		case schedule.SegmentBreak:
			item.Start = segment.Start
			item.End = segment.End
			item.TimeLabel = schedule.FormatTimeRange(segment.Start, segment.Duration())
		}
		rendered.Segments = append(rendered.Segments, item)
	}
	return rendered
}

func RenderWeekAgenda(dataset *models.Dataset, batch string, entries []models.ClassEntry, active *models.ActiveClass) []responses.DayAgenda {
	week := schedule.BuildWeekAgenda(entries)
	rendered := make([]responses.DayAgenda, 0, len(week))
	for _, agenda := range week {
		rendered = append(rendered, RenderDayAgenda(dataset, batch, agenda, active))
	}
	return rendered
}

func RenderGrid(dataset *models.Dataset, batch string, grid schedule.Grid, active *models.ActiveClass) responses.Grid {
	rendered := responses.Grid{
		Batch: batch,
		Rows:  make([]responses.GridRow, 0, len(grid.Rows)),
	}
	for day := schedule.FirstDay; day <= schedule.LastDay; day++ {
		rendered.Days = append(rendered.Days, schedule.DayName(day))
	}

	for _, row := range grid.Rows {
		renderedRow := responses.GridRow{
			Hour:      row.Hour,
			TimeLabel: schedule.FormatHour(row.Hour),
			Cells:     make([]responses.GridCell, 0, len(row.Cells)),
		}
		for _, cell := range row.Cells {
			renderedCell := responses.GridCell{
				Day:     cell.Day,
				RowSpan: cell.RowSpan,
				Lunch:   cell.Lunch,
			}
			// Lunch placeholders are never highlighted.
			if cell.Class != nil {
				card := RenderClassCard(dataset, *cell.Class)
				renderedCell.Class = &card
				renderedCell.Active = isActiveAt(active, batch, cell.Day, cell.Hour)
			}
			renderedRow.Cells = append(renderedRow.Cells, renderedCell)
		}
		rendered.Rows = append(rendered.Rows, renderedRow)
	}
	return rendered
}

// RenderActiveClass locates the running class in the agenda of its day and
// in the grid. GridHour and GridDay stay zero when the class starts outside
// the displayed hours.
func RenderActiveClass(dataset *models.Dataset, entries []models.ClassEntry, active *models.ActiveClass) *responses.ActiveClass {
	if active == nil {
		return nil
	}

	agenda := schedule.BuildDayAgenda(entries, active.Entry.Day)
	rendered := &responses.ActiveClass{
		Batch:       active.Batch,
		Day:         active.Entry.Day,
		DayName:     schedule.DayName(active.Entry.Day),
		Hour:        active.Hour,
		Class:       RenderClassCard(dataset, active.Entry),
		AgendaIndex: agenda.ClassSegmentIndex(active.Entry.Start),
		CheckedAt:   active.CheckedAt,
	}
	if active.Entry.Start >= schedule.GridFirstHour && active.Entry.Start <= schedule.GridLastHour {
		rendered.GridHour = active.Entry.Start
		rendered.GridDay = active.Entry.Day
	}
	return rendered
}

// ScrollTargetFor asks for a centered smooth scroll to the active card.
func ScrollTargetFor(active *responses.ActiveClass) *responses.ScrollTarget {
	if active == nil || active.AgendaIndex < 0 {
		return nil
	}
	return &responses.ScrollTarget{
		ViewID:       fmt.Sprintf(constvars.DayViewIDFormat, active.Day),
		SegmentIndex: active.AgendaIndex,
		Block:        scrollBlockCenter,
		Behavior:     scrollBehaviorSmooth,
	}
}

func isActiveAt(active *models.ActiveClass, batch string, day, start int) bool {
	return active != nil && active.Batch == batch && active.Entry.Day == day && active.Entry.Start == start
}
