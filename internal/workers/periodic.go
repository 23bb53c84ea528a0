package workers

import (
	"context"
	"sync"
	"time"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
)

type periodicWorker struct {
	name     string
	delay    time.Duration
	interval time.Duration
	task     func(ctx context.Context)

	parent context.Context
	log    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodicWorker returns a worker that calls task after delay and then
// every interval until it is stopped or ctx is cancelled. The task receives
// a context that is cancelled on Stop.
func NewPeriodicWorker(ctx context.Context, name string, delay, interval time.Duration, task func(ctx context.Context), log *logger.Logger) Worker {
	if log == nil {
		log = logger.Nop()
	}

	return &periodicWorker{
		name:     name,
		delay:    max(delay, 0),
		interval: interval,
		task:     task,
		parent:   ctx,
		log:      log,
	}
}

// Run implements Worker. A running worker is restarted.
func (w *periodicWorker) Run() {
	if w.interval <= 0 {
		w.log.Warn().Str("func", "periodicWorker.Run").Str("worker", w.name).Msg("non-positive interval, worker not started")
		return
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(w.parent)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()

		first := time.NewTimer(w.delay)
		defer first.Stop()

		select {
		case <-jobCtx.Done():
			return
		case <-first.C:
			w.run(jobCtx)
		}

		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.run(jobCtx)
			}
		}
	}()

	w.log.Debug().
		Str("func", "periodicWorker.Run").
		Str("worker", w.name).
		Dur("delay", w.delay).
		Dur("interval", w.interval).
		Msg("worker started")
}

func (w *periodicWorker) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	w.task(ctx)
}

// Stop implements Worker. It is a no-op when the worker is not running.
func (w *periodicWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
