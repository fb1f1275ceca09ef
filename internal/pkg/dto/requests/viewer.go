package requests

type SelectBatch struct {
	Batch string `json:"batch" validate:"required,batch_name"`
}

type SetViewMode struct {
	View string `json:"view" validate:"required,oneof=swipe table"`
}

// JumpToDay takes a day number 1..6. Other values are accepted and ignored.
type JumpToDay struct {
	Day int `json:"day"`
}

type KeyPress struct {
	Key string `json:"key" validate:"required,max=32"`
}

type Gesture struct {
	Phase                  string  `json:"-" validate:"required,oneof=start move end leave"`
	Pointer                string  `json:"pointer" validate:"omitempty,oneof=touch mouse"`
	X                      float64 `json:"x"`
	Y                      float64 `json:"y"`
	VerticalScrollPossible bool    `json:"vertical_scroll_possible"`
	ScrollTop              float64 `json:"scroll_top" validate:"gte=0"`
}

type Resize struct {
	Width float64 `json:"width" validate:"gte=0,lte=100000"`
}
