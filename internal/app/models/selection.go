package models

import "time"

// ScheduleSelection is the per-viewer UI state. Day is a 0-based index into
// the school week.
type ScheduleSelection struct {
	Batch string `json:"batch"`
	Day   int    `json:"day"`
	View  string `json:"view"`
}

// Preferences are the persisted per-client settings.
type Preferences struct {
	SelectedBatch string `json:"selected_batch"`
	PreferredView string `json:"preferred_view"`
	Theme         string `json:"theme"`
}

// ActiveClass is the result of one highlight pass.
type ActiveClass struct {
	Batch     string     `json:"batch"`
	Entry     ClassEntry `json:"entry"`
	Weekday   int        `json:"weekday"`
	Hour      int        `json:"hour"`
	CheckedAt time.Time  `json:"checked_at"`
}

// ActiveClassEvent is published when a batch's running class changes.
type ActiveClassEvent struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Batch      string      `json:"batch"`
	Active     *ClassEntry `json:"active,omitempty"`
	Previous   *ClassEntry `json:"previous,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}
