package models

const (
	ClassTypeLecture  = "lecture"
	ClassTypeLab      = "lab"
	ClassTypeTutorial = "tutorial"
)

// ClassEntry is one scheduled class occurrence. Day is 1 (Monday) through 6
// (Saturday); Start and Duration are whole hours.
type ClassEntry struct {
	Day      int    `json:"day" bson:"day"`
	Start    int    `json:"start" bson:"start"`
	Duration int    `json:"duration" bson:"duration"`
	Title    string `json:"title" bson:"title"`
	Type     string `json:"type" bson:"type"`
	Code     string `json:"code" bson:"code"`
	Teacher  string `json:"teacher" bson:"teacher"`
}

func (c ClassEntry) End() int {
	return c.Start + c.Duration
}

// Covers reports whether hour falls inside [Start, End).
func (c ClassEntry) Covers(hour int) bool {
	return hour >= c.Start && hour < c.End()
}

// BatchSchedule is the stored form of one batch's week.
type BatchSchedule struct {
	Batch   string       `json:"batch" bson:"batch"`
	Classes []ClassEntry `json:"classes" bson:"classes"`
}

// DisplayName maps a short subject title or teacher code to its display form.
type DisplayName struct {
	Kind    string `json:"kind" bson:"kind"`
	Key     string `json:"key" bson:"key"`
	Display string `json:"display" bson:"display"`
}

const (
	DisplayNameKindSubject = "subject"
	DisplayNameKindTeacher = "teacher"
)
