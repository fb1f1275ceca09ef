package responses

import "time"

type BatchList struct {
	Batches      []string `json:"batches"`
	DefaultBatch string   `json:"default_batch"`
}

// ClassCard carries the display fields of one class, already resolved
// through the subject and teacher lookups.
type ClassCard struct {
	Day       int    `json:"day"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	TimeLabel string `json:"time_label"`
	Title     string `json:"title"`
	FullTitle string `json:"full_title"`
	Code      string `json:"code"`
	Teacher   string `json:"teacher"`
	Type      string `json:"type"`
	TypeBadge string `json:"type_badge"`
}

type Segment struct {
	Kind      string     `json:"kind"`
	Start     int        `json:"start,omitempty"`
	End       int        `json:"end,omitempty"`
	TimeLabel string     `json:"time_label,omitempty"`
	Label     string     `json:"label,omitempty"`
	Class     *ClassCard `json:"class,omitempty"`
	Active    bool       `json:"active"`
}

type DayAgenda struct {
	Batch       string    `json:"batch"`
	Day         int       `json:"day"`
	DayName     string    `json:"day_name"`
	ViewID      string    `json:"view_id"`
	Overlapping bool      `json:"overlapping"`
	Segments    []Segment `json:"segments"`
}

type GridCell struct {
	Day     int        `json:"day"`
	RowSpan int        `json:"row_span"`
	Lunch   bool       `json:"lunch"`
	Class   *ClassCard `json:"class,omitempty"`
	Active  bool       `json:"active"`
}

type GridRow struct {
	Hour      int        `json:"hour"`
	TimeLabel string     `json:"time_label"`
	Cells     []GridCell `json:"cells"`
}

type Grid struct {
	Batch string    `json:"batch"`
	Days  []string  `json:"days"`
	Rows  []GridRow `json:"rows"`
}

// ActiveClass points at the card and the table cell of the running class.
type ActiveClass struct {
	Batch       string    `json:"batch"`
	Day         int       `json:"day"`
	DayName     string    `json:"day_name"`
	Hour        int       `json:"hour"`
	Class       ClassCard `json:"class"`
	AgendaIndex int       `json:"agenda_index"`
	GridHour    int       `json:"grid_hour"`
	GridDay     int       `json:"grid_day"`
	CheckedAt   time.Time `json:"checked_at"`
}

type ActiveClassLookup struct {
	Batch     string       `json:"batch"`
	Weekday   int          `json:"weekday"`
	Hour      int          `json:"hour"`
	Active    *ActiveClass `json:"active"`
	CheckedAt time.Time    `json:"checked_at"`
}
