package highlighter

import (
	"context"
	"sync"
	"time"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	// leaderLockKey makes a single replica publish active class events.
	leaderLockKey  = "timetable:highlighter:leader"
	leaderLockTTL  = 50 * time.Second
	defaultSpec    = "@every 1m"
	publishTimeout = 10 * time.Second
)

// Worker refreshes the active class of every viewer session on a cron
// cadence, evicts idle sessions and publishes per batch change events.
type Worker struct {
	log         *zap.Logger
	cfg         *config.InternalConfig
	locker      contracts.LockerService
	highlighter contracts.Highlighter
	schedules   contracts.ScheduleRepository
	viewers     contracts.ViewerRefresher
	publisher   contracts.EventPublisher
	clock       contracts.Clock

	mu        sync.Mutex
	published map[string]*models.ClassEntry

	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

// NewWorker builds the worker. locker may be nil when no redis is
// configured, in which case this instance always publishes.
func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	highlighter contracts.Highlighter,
	schedules contracts.ScheduleRepository,
	viewers contracts.ViewerRefresher,
	publisher contracts.EventPublisher,
	clock contracts.Clock,
) *Worker {
	return &Worker{
		log:         log,
		cfg:         cfg,
		locker:      lockerSvc,
		highlighter: highlighter,
		schedules:   schedules,
		viewers:     viewers,
		publisher:   publisher,
		clock:       clock,
		published:   make(map[string]*models.ClassEntry),
	}
}

// Start runs one pass immediately and then schedules the periodic pass.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	w.RunOnce(w.runCtx)

	c := cron.New()
	spec := w.cfg.Highlighter.CronSpec
	_, err := c.AddFunc(spec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("highlighter.worker: failed to schedule with provided cron spec; falling back to "+defaultSpec, zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc(defaultSpec, func() { w.RunOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels the run context and waits for a running pass to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	requestID := utils.GetRequestID(ctx)

	evicted := w.viewers.EvictIdleSessions(ctx)
	refreshed := w.viewers.RefreshActiveClasses(ctx)
	w.log.Debug("highlighter.worker: refreshed viewer sessions",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSessionCountKey, refreshed),
		zap.Int("evicted", evicted),
	)

	if w.cfg.Highlighter.PublishEvents {
		w.publishChanges(ctx)
	}
}

func (w *Worker) publishChanges(ctx context.Context) {
	requestID := utils.GetRequestID(ctx)

	if w.locker != nil {
		acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, leaderLockTTL)
		if err != nil {
			w.log.Warn("highlighter.worker: leader lock attempt failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return
		}
		if !acquired {
			w.log.Debug("highlighter.worker: leader lock not acquired; another instance is publishing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return
		}
		defer w.locker.Unlock(context.WithoutCancel(ctx), leaderLockKey, token)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for _, batch := range w.schedules.BatchNames() {
		active, err := w.highlighter.FindActiveClass(ctx, batch)
		if err != nil {
			w.log.Warn("highlighter.worker: failed to evaluate batch",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBatchKey, batch),
				zap.Error(err),
			)
			continue
		}

		var current *models.ClassEntry
		if active != nil {
			entry := active.Entry
			current = &entry
		}
		previous, seen := w.published[batch]
		if seen && sameEntry(previous, current) {
			continue
		}
		if !seen && current == nil {
			w.published[batch] = nil
			continue
		}

		event := &models.ActiveClassEvent{
			ID:         uuid.NewString(),
			Type:       constvars.ActiveClassEventType,
			Batch:      batch,
			Active:     current,
			Previous:   previous,
			OccurredAt: w.clock.Now(),
		}
		publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		err = w.publisher.PublishActiveClassChanged(publishCtx, event)
		cancel()
		if err != nil {
			w.log.Error("highlighter.worker: failed to publish active class event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBatchKey, batch),
				zap.Error(err),
			)
			continue
		}
		utils.LogBusinessEvent(w.log, constvars.ActiveClassEventType, requestID,
			zap.String(constvars.LoggingBatchKey, batch),
			zap.String("event_id", event.ID),
		)
		w.published[batch] = current
	}
}

func sameEntry(a, b *models.ClassEntry) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
