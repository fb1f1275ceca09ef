package viewer

import (
	"context"
	"fmt"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/app/services/core/schedules"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/gesture"
	"timetable-service/internal/pkg/schedule"
	"timetable-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type viewerUsecase struct {
	ScheduleRepository contracts.ScheduleRepository
	PreferenceUsecase  contracts.PreferenceUsecase
	Highlighter        contracts.Highlighter
	Clock              contracts.Clock
	Config             config.AppViewer
	Log                *zap.Logger
	sessions           *sessionStore
}

func NewViewerUsecase(
	scheduleRepository contracts.ScheduleRepository,
	preferenceUsecase contracts.PreferenceUsecase,
	highlighter contracts.Highlighter,
	clock contracts.Clock,
	viewerConfig config.AppViewer,
	logger *zap.Logger,
) contracts.ViewerUsecase {
	return &viewerUsecase{
		ScheduleRepository: scheduleRepository,
		PreferenceUsecase:  preferenceUsecase,
		Highlighter:        highlighter,
		Clock:              clock,
		Config:             viewerConfig,
		Log:                logger,
		sessions:           newSessionStore(),
	}
}

func (uc *viewerUsecase) GetViewer(ctx context.Context, clientID string) (*responses.Viewer, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("viewerUsecase.GetViewer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
	)

	viewer := uc.session(ctx, clientID)
	viewer.mu.Lock()
	defer viewer.mu.Unlock()

	return uc.snapshot(viewer), nil
}

// SelectBatch switches the batch when it exists in the dataset. An unknown
// batch leaves the selection unchanged and reports false.
func (uc *viewerUsecase) SelectBatch(ctx context.Context, clientID string, request *requests.SelectBatch) (*responses.Viewer, bool, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("viewerUsecase.SelectBatch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
		zap.String(constvars.LoggingBatchKey, request.Batch),
	)

	viewer := uc.session(ctx, clientID)
	viewer.mu.Lock()
	defer viewer.mu.Unlock()

	if !uc.ScheduleRepository.HasBatch(request.Batch) {
		uc.Log.Info("viewerUsecase.SelectBatch ignored unknown batch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBatchKey, request.Batch),
		)
		return uc.snapshot(viewer), false, nil
	}

	viewer.selection.Batch = request.Batch
	uc.PreferenceUsecase.Set(ctx, clientID, constvars.PreferenceKeySelectedBatch, request.Batch)
	viewer.track.JumpToDay(viewer.selection.Day)
	uc.refreshActive(ctx, viewer)

	uc.Log.Info("viewerUsecase.SelectBatch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchKey, request.Batch),
	)
	return uc.snapshot(viewer), true, nil
}

func (uc *viewerUsecase) SetViewMode(ctx context.Context, clientID string, request *requests.SetViewMode) (*responses.Viewer, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("viewerUsecase.SetViewMode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
		zap.String(constvars.LoggingViewKey, request.View),
	)

	viewer := uc.session(ctx, clientID)
	viewer.mu.Lock()
	defer viewer.mu.Unlock()

	viewer.selection.View = request.View
	uc.PreferenceUsecase.Set(ctx, clientID, constvars.PreferenceKeyPreferredView, request.View)
	if request.View == constvars.ViewSwipe {
		viewer.track.JumpToDay(viewer.selection.Day)
	}
	uc.refreshActive(ctx, viewer)

	uc.Log.Info("viewerUsecase.SetViewMode succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewKey, request.View),
	)
	return uc.snapshot(viewer), nil
}

// JumpToDay takes a day number 1..6; anything else is ignored.
func (uc *viewerUsecase) JumpToDay(ctx context.Context, clientID string, request *requests.JumpToDay) (*responses.Viewer, bool, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("viewerUsecase.JumpToDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
		zap.Int(constvars.LoggingDayKey, request.Day),
	)

	viewer := uc.session(ctx, clientID)
	viewer.mu.Lock()
	defer viewer.mu.Unlock()

	if !viewer.track.JumpToDay(request.Day - schedule.FirstDay) {
		return uc.snapshot(viewer), false, nil
	}
	viewer.syncDay()
	uc.refreshActive(ctx, viewer)

	uc.Log.Info("viewerUsecase.JumpToDay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDayIndexKey, viewer.selection.Day),
	)
	return uc.snapshot(viewer), true, nil
}

// HandleKey moves through the week with the arrow keys in swipe view,
// wrapping at both ends.
func (uc *viewerUsecase) HandleKey(ctx context.Context, clientID string, request *requests.KeyPress) (*responses.Viewer, bool, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("viewerUsecase.HandleKey called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
		zap.String(constvars.LoggingKeyboardKey, request.Key),
	)

	viewer := uc.session(ctx, clientID)
	viewer.mu.Lock()
	defer viewer.mu.Unlock()

	if viewer.selection.View != constvars.ViewSwipe {
		return uc.snapshot(viewer), false, nil
	}

	switch request.Key {
	case constvars.KeyArrowRight:
		viewer.track.JumpToDay(schedule.NextDayIndex(viewer.selection.Day))
	case constvars.KeyArrowLeft:
		viewer.track.JumpToDay(schedule.PrevDayIndex(viewer.selection.Day))
	default:
		return uc.snapshot(viewer), false, nil
	}
	viewer.syncDay()
	uc.refreshActive(ctx, viewer)

	uc.Log.Info("viewerUsecase.HandleKey succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDayIndexKey, viewer.selection.Day),
	)
	return uc.snapshot(viewer), true, nil
}

// HandleGesture feeds one pointer event to the carousel. Gestures are only
// handled in swipe view.
func (uc *viewerUsecase) HandleGesture(ctx context.Context, clientID string, request *requests.Gesture) (*responses.Gesture, bool, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Debug("viewerUsecase.HandleGesture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
		zap.String(constvars.LoggingGesturePhaseKey, request.Phase),
	)

	viewer := uc.session(ctx, clientID)
	viewer.mu.Lock()
	defer viewer.mu.Unlock()

	response := &responses.Gesture{
		Phase:   request.Phase,
		Outcome: string(gesture.OutcomeNone),
	}
	if viewer.selection.View != constvars.ViewSwipe {
		response.Track = toTrack(viewer.track.Track())
		return response, false, nil
	}

	dayBefore := viewer.selection.Day
	switch request.Phase {
	case constvars.GesturePhaseStart:
		pointer := gesture.Pointer(request.Pointer)
		if pointer == "" {
			pointer = gesture.PointerTouch
		}
		viewer.track.Start(gesture.StartEvent{
			Pointer:                pointer,
			X:                      request.X,
			Y:                      request.Y,
			VerticalScrollPossible: request.VerticalScrollPossible,
			ScrollTop:              request.ScrollTop,
		})
	case constvars.GesturePhaseMove:
		response.PreventDefault = viewer.track.Move(request.X, request.Y)
	case constvars.GesturePhaseEnd:
		response.Outcome = string(viewer.track.End())
	case constvars.GesturePhaseLeave:
		response.Outcome = string(viewer.track.Leave())
	}

	viewer.syncDay()
	response.DayChanged = viewer.selection.Day != dayBefore
	if response.DayChanged {
		uc.refreshActive(ctx, viewer)
		uc.Log.Info("viewerUsecase.HandleGesture changed day",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGestureOutcome, response.Outcome),
			zap.Int(constvars.LoggingDayIndexKey, viewer.selection.Day),
		)
	}
	response.Track = toTrack(viewer.track.Track())
	return response, true, nil
}

// Resize schedules a re-snap for the new track width. Calls arriving within
// the debounce window collapse into the last one. A zero width falls back to
// the configured default.
func (uc *viewerUsecase) Resize(ctx context.Context, clientID string, request *requests.Resize) (*responses.Resize, error) {
	requestID := utils.GetRequestID(ctx)
	width := request.Width
	if width <= 0 {
		width = uc.Config.DefaultTrackWidth
	}
	uc.Log.Debug("viewerUsecase.Resize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
		zap.Float64(constvars.LoggingTrackWidthKey, width),
	)

	viewer := uc.session(ctx, clientID)
	viewer.mu.Lock()
	viewer.touch(uc.Clock.Now())
	viewer.mu.Unlock()

	viewer.resize.Call(func() {
		viewer.mu.Lock()
		defer viewer.mu.Unlock()
		viewer.track.Resize(width)
	})

	return &responses.Resize{Width: width, Pending: true}, nil
}

func (uc *viewerUsecase) ToggleTheme(ctx context.Context, clientID string) (*responses.Theme, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("viewerUsecase.ToggleTheme called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
	)

	viewer := uc.session(ctx, clientID)
	viewer.mu.Lock()
	defer viewer.mu.Unlock()

	if viewer.theme == constvars.ThemeDark {
		viewer.theme = constvars.ThemeLight
	} else {
		viewer.theme = constvars.ThemeDark
	}
	uc.PreferenceUsecase.Set(ctx, clientID, constvars.PreferenceKeyTheme, viewer.theme)

	uc.Log.Info("viewerUsecase.ToggleTheme succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingThemeKey, viewer.theme),
	)
	return &responses.Theme{Theme: viewer.theme}, nil
}

// RefreshActiveClasses re-evaluates the running class of every session and
// returns how many sessions were refreshed.
func (uc *viewerUsecase) RefreshActiveClasses(ctx context.Context) int {
	viewers := uc.sessions.all()
	for _, viewer := range viewers {
		viewer.mu.Lock()
		uc.refreshActive(ctx, viewer)
		viewer.mu.Unlock()
	}
	return len(viewers)
}

// EvictIdleSessions drops sessions not used within the idle TTL. A
// non-positive TTL keeps sessions forever.
func (uc *viewerUsecase) EvictIdleSessions(ctx context.Context) int {
	ttl := uc.Config.SessionIdleTTL()
	if ttl <= 0 {
		return 0
	}

	evicted := uc.sessions.evictIdle(uc.Clock.Now().Add(-ttl))
	for _, viewer := range evicted {
		viewer.stop()
	}
	if len(evicted) > 0 {
		uc.Log.Info("viewerUsecase.EvictIdleSessions evicted idle sessions",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Int(constvars.LoggingSessionCountKey, len(evicted)),
		)
	}
	return len(evicted)
}

func (uc *viewerUsecase) SessionCount() int {
	return uc.sessions.len()
}

// Stop cancels pending resize timers of every session.
func (uc *viewerUsecase) Stop() {
	for _, viewer := range uc.sessions.all() {
		viewer.stop()
	}
}

// session returns the client's viewer, creating it from the stored
// preferences on first use. The caller must lock the returned viewer.
func (uc *viewerUsecase) session(ctx context.Context, clientID string) *Viewer {
	if viewer, ok := uc.sessions.get(clientID); ok {
		viewer.mu.Lock()
		viewer.touch(uc.Clock.Now())
		viewer.mu.Unlock()
		return viewer
	}

	viewer, created := uc.sessions.putIfAbsent(clientID, uc.newViewer(ctx, clientID))
	if created {
		uc.Log.Info("viewerUsecase session created",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingClientIDKey, clientID),
			zap.String(constvars.LoggingBatchKey, viewer.selection.Batch),
			zap.String(constvars.LoggingViewKey, viewer.selection.View),
		)
	}
	return viewer
}

func (uc *viewerUsecase) newViewer(ctx context.Context, clientID string) *Viewer {
	preferences := uc.PreferenceUsecase.Load(ctx, clientID)
	now := uc.Clock.Now()

	batch := preferences.SelectedBatch
	if !uc.ScheduleRepository.HasBatch(batch) {
		batch = uc.ScheduleRepository.DefaultBatch()
	}

	view := preferences.PreferredView
	if view != constvars.ViewSwipe && view != constvars.ViewTable {
		view = constvars.ViewSwipe
	}

	theme := preferences.Theme
	if theme != constvars.ThemeDark && theme != constvars.ThemeLight {
		theme = constvars.ThemeDark
	}

	dayIndex := schedule.DayIndexForWeekday(int(now.Weekday()))
	viewer := &Viewer{
		clientID: clientID,
		selection: models.ScheduleSelection{
			Batch: batch,
			Day:   dayIndex,
			View:  view,
		},
		theme:    theme,
		track:    gesture.NewController(dayIndex, uc.Config.DefaultTrackWidth),
		lastSeen: now,
		resize:   utils.NewDebouncer(uc.Config.ResizeDebounce()),
	}
	uc.refreshActive(ctx, viewer)
	return viewer
}

// refreshActive clears the previous highlight and evaluates the running
// class again. The caller holds viewer.mu.
func (uc *viewerUsecase) refreshActive(ctx context.Context, viewer *Viewer) {
	viewer.active = nil
	active, err := uc.Highlighter.FindActiveClass(ctx, viewer.selection.Batch)
	if err != nil {
		uc.Log.Warn("viewerUsecase error finding active class",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingClientIDKey, viewer.clientID),
			zap.Error(err),
		)
		return
	}
	viewer.active = active
}

// snapshot renders the full page state. The caller holds viewer.mu.
func (uc *viewerUsecase) snapshot(viewer *Viewer) *responses.Viewer {
	dataset := uc.ScheduleRepository.Dataset()
	batch := viewer.selection.Batch
	entries, _ := uc.ScheduleRepository.FindClassesByBatch(batch)
	active := schedules.RenderActiveClass(dataset, entries, viewer.active)

	response := &responses.Viewer{
		ClientID:           viewer.clientID,
		Batch:              batch,
		BatchLabel:         fmt.Sprintf(constvars.BatchLabelFormat, batch),
		FloatingBatchLabel: fmt.Sprintf(constvars.FloatingBatchLabelFormat, batch),
		View:               viewer.selection.View,
		Theme:              viewer.theme,
		DayIndex:           viewer.selection.Day,
		Track:              toTrack(viewer.track.Track()),
		Days:               schedules.RenderWeekAgenda(dataset, batch, entries, viewer.active),
		Grid:               schedules.RenderGrid(dataset, batch, schedule.BuildGrid(entries), viewer.active),
		Active:             active,
		ScrollTarget:       schedules.ScrollTargetFor(active),
	}

	for _, name := range uc.ScheduleRepository.BatchNames() {
		response.Batches = append(response.Batches, responses.BatchButton{
			Batch:  name,
			Active: name == batch,
		})
	}
	for day := schedule.FirstDay; day <= schedule.LastDay; day++ {
		response.DayButtons = append(response.DayButtons, responses.DayButton{
			Day:    day,
			Name:   schedule.DayName(day),
			Active: day == schedule.DayNumberForIndex(viewer.selection.Day),
		})
	}
	return response
}

func toTrack(track gesture.Track) responses.Track {
	return responses.Track{
		DayIndex:   track.DayIndex,
		Width:      track.Width,
		Translate:  track.Translate,
		Transition: track.Transition,
		Cursor:     track.Cursor,
		State:      string(track.State),
	}
}
