package responses

type BatchButton struct {
	Batch  string `json:"batch"`
	Active bool   `json:"active"`
}

type DayButton struct {
	Day    int    `json:"day"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type Track struct {
	DayIndex   int     `json:"day_index"`
	Width      float64 `json:"width"`
	Translate  float64 `json:"translate"`
	Transition string  `json:"transition"`
	Cursor     string  `json:"cursor"`
	State      string  `json:"state"`
}

// ScrollTarget asks the page to bring a card to the middle of its day view.
type ScrollTarget struct {
	ViewID       string `json:"view_id"`
	SegmentIndex int    `json:"segment_index"`
	Block        string `json:"block"`
	Behavior     string `json:"behavior"`
}

type Viewer struct {
	ClientID           string        `json:"client_id"`
	Batch              string        `json:"batch"`
	BatchLabel         string        `json:"batch_label"`
	FloatingBatchLabel string        `json:"floating_batch_label"`
	Batches            []BatchButton `json:"batches"`
	View               string        `json:"view"`
	Theme              string        `json:"theme"`
	DayIndex           int           `json:"day_index"`
	DayButtons         []DayButton   `json:"day_buttons"`
	Track              Track         `json:"track"`
	Days               []DayAgenda   `json:"days"`
	Grid               Grid          `json:"grid"`
	Active             *ActiveClass  `json:"active,omitempty"`
	ScrollTarget       *ScrollTarget `json:"scroll_target,omitempty"`
}

type Gesture struct {
	Phase          string `json:"phase"`
	PreventDefault bool   `json:"prevent_default"`
	Outcome        string `json:"outcome"`
	Track          Track  `json:"track"`
	DayChanged     bool   `json:"day_changed"`
}

type Resize struct {
	Width   float64 `json:"width"`
	Pending bool    `json:"pending"`
}

type Theme struct {
	Theme string `json:"theme"`
}
