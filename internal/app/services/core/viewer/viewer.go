package viewer

import (
	"sync"
	"time"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/gesture"
	"timetable-service/internal/pkg/utils"
)

// Viewer is the state of one client's timetable page. Every handler runs
// its mutation under mu, so each client sees one change at a time.
type Viewer struct {
	mu sync.Mutex

	clientID  string
	selection models.ScheduleSelection
	theme     string
	track     *gesture.Controller
	active    *models.ActiveClass
	lastSeen  time.Time
	resize    *utils.Debouncer
}

func (v *Viewer) touch(now time.Time) {
	v.lastSeen = now
}

// syncDay copies the carousel position into the selection after any track
// operation.
func (v *Viewer) syncDay() {
	v.selection.Day = v.track.DayIndex()
}

func (v *Viewer) idleSince(cutoff time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen.Before(cutoff)
}

func (v *Viewer) stop() {
	v.resize.Stop()
}
