package gesture

import (
	"math"
	"timetable-service/internal/pkg/schedule"
)

type Pointer string

const (
	PointerTouch Pointer = "touch"
	PointerMouse Pointer = "mouse"
)

type State string

const (
	StateIdle           State = "idle"
	StateDragging       State = "dragging"
	StateLockedVertical State = "locked_vertical"
)

// Outcome describes what a released gesture did to the carousel.
type Outcome string

const (
	OutcomeNone           Outcome = "none"
	OutcomeStay           Outcome = "stay"
	OutcomeNextDay        Outcome = "next_day"
	OutcomePreviousDay    Outcome = "previous_day"
	OutcomeVerticalScroll Outcome = "vertical_scroll"
)

const (
	// DeadZone is the horizontal travel in pixels a touch must exceed before
	// the track follows the finger.
	DeadZone = 5.0

	SnapTransition = "transform 0.3s cubic-bezier(0.25, 0.8, 0.5, 1)"
	NoTransition   = "none"

	CursorGrab    = "grab"
	CursorDefault = "default"
)

// StartEvent is a touch-start or mouse-down on the days track.
// VerticalScrollPossible and ScrollTop describe the visible day view.
type StartEvent struct {
	Pointer                Pointer
	X                      float64
	Y                      float64
	VerticalScrollPossible bool
	ScrollTop              float64
}

// Track is what the page applies to the days track element.
type Track struct {
	DayIndex   int     `json:"day_index"`
	Width      float64 `json:"width"`
	Translate  float64 `json:"translate"`
	Transition string  `json:"transition"`
	Cursor     string  `json:"cursor"`
	State      State   `json:"state"`
}

// Controller is the drag state machine of the day carousel. It is not safe
// for concurrent use; callers serialize access per viewer.
type Controller struct {
	state   State
	pointer Pointer

	startX float64
	startY float64

	currentTranslate float64
	prevTranslate    float64

	verticalScrollPossible bool
	initialScrollTop       float64

	dayIndex   int
	width      float64
	transition string
	cursor     string
}

// NewController returns a controller snapped to dayIndex on a track of the
// given width.
func NewController(dayIndex int, width float64) *Controller {
	c := &Controller{
		state:  StateIdle,
		width:  width,
		cursor: CursorGrab,
	}
	if !schedule.IsValidDayIndex(dayIndex) {
		dayIndex = 0
	}
	c.JumpToDay(dayIndex)
	return c
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) DayIndex() int {
	return c.dayIndex
}

func (c *Controller) Track() Track {
	return Track{
		DayIndex:   c.dayIndex,
		Width:      c.width,
		Translate:  c.currentTranslate,
		Transition: c.transition,
		Cursor:     c.cursor,
		State:      c.state,
	}
}

// Start begins a drag. The track stops animating so it can follow the pointer.
func (c *Controller) Start(event StartEvent) {
	c.state = StateDragging
	c.pointer = event.Pointer
	c.startX = event.X
	c.startY = event.Y
	c.transition = NoTransition

	if event.Pointer == PointerTouch {
		c.verticalScrollPossible = event.VerticalScrollPossible
		c.initialScrollTop = event.ScrollTop
	} else {
		c.verticalScrollPossible = false
		c.initialScrollTop = 0
	}
}

// Move feeds a pointer position. It reports whether the event was consumed,
// in which case the page suppresses the default scroll.
//
// A touch that travels further vertically than horizontally over a scrollable
// day view locks the gesture to vertical scrolling for the rest of its life.
// Mouse drags follow the pointer immediately.
func (c *Controller) Move(x, y float64) bool {
	if c.state != StateDragging {
		return false
	}

	if c.pointer == PointerMouse {
		c.follow(x)
		return true
	}

	deltaX := math.Abs(x - c.startX)
	deltaY := math.Abs(y - c.startY)

	if c.verticalScrollPossible && deltaY > deltaX {
		c.state = StateLockedVertical
		c.cursor = CursorDefault
		return false
	}

	if deltaX > DeadZone {
		c.follow(x)
		return true
	}
	return false
}

// End releases the gesture. A free drag moved by more than a quarter of the
// track width switches day, wrapping at both ends of the week; anything
// shorter snaps back.
func (c *Controller) End() Outcome {
	switch c.state {
	case StateLockedVertical:
		c.reset()
		return OutcomeVerticalScroll
	case StateDragging:
	default:
		return OutcomeNone
	}

	c.reset()

	movedBy := c.currentTranslate - c.prevTranslate
	threshold := c.width / 4

	outcome := OutcomeStay
	switch {
	case movedBy < -threshold:
		c.dayIndex = schedule.NextDayIndex(c.dayIndex)
		outcome = OutcomeNextDay
	case movedBy > threshold:
		c.dayIndex = schedule.PrevDayIndex(c.dayIndex)
		outcome = OutcomePreviousDay
	}

	c.JumpToDay(c.dayIndex)
	return outcome
}

// Leave handles the pointer leaving the track, which only ends a drag in
// progress.
func (c *Controller) Leave() Outcome {
	if c.state != StateDragging {
		return OutcomeNone
	}
	return c.End()
}

// JumpToDay snaps the track to index with the eased transition. Out of range
// indexes are ignored.
func (c *Controller) JumpToDay(index int) bool {
	if !schedule.IsValidDayIndex(index) {
		return false
	}
	c.dayIndex = index
	c.currentTranslate = float64(index) * -c.width
	c.prevTranslate = c.currentTranslate
	c.transition = SnapTransition
	return true
}

// Resize re-snaps the current day for a new track width. Non-positive widths
// are ignored.
func (c *Controller) Resize(width float64) {
	if width <= 0 {
		return
	}
	c.width = width
	c.JumpToDay(c.dayIndex)
}

func (c *Controller) follow(x float64) {
	c.currentTranslate = c.prevTranslate + (x - c.startX)
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.verticalScrollPossible = false
	c.initialScrollTop = 0
	c.cursor = CursorGrab
}
