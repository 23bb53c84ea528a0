package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

type laneTask struct {
	// wait is the submitter's context; a task whose submitter gave up
	// before it started is dropped.
	wait      context.Context
	direction models.SyncDirection
	fn        func(ctx context.Context)
	done      chan error
}

// lane serialises the sync cycles of one connection. A single worker
// goroutine drains a bounded FIFO queue, so at most one cycle per
// connection is in flight. Submitters block while the queue is full.
type lane struct {
	connectionID string
	suppressor   ChangeSuppressor
	log          *logger.Logger
	now          func() time.Time

	ctx   context.Context
	tasks chan *laneTask

	quit     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu      sync.Mutex
	current *models.SyncCycle
}

type nopSuppressor struct{}

func (nopSuppressor) Suppress() func() { return func() {} }

// newLane starts the worker of a lane. Cancelling ctx cancels the running
// cycle; cancelling a submitter's context does not.
func newLane(ctx context.Context, connectionID string, queueSize int, suppressor ChangeSuppressor, log *logger.Logger) *lane {
	if queueSize < 1 {
		queueSize = 1
	}
	if suppressor == nil {
		suppressor = nopSuppressor{}
	}

	l := &lane{
		connectionID: connectionID,
		suppressor:   suppressor,
		log:          log,
		now:          time.Now,
		ctx:          ctx,
		tasks:        make(chan *laneTask, queueSize),
		quit:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}

	l.wg.Add(1)
	go l.loop()

	return l
}

// Do queues fn and waits for it to finish. It returns ErrSyncCancelled when
// the task was dropped before it started, or ctx.Err() when ctx ended
// first; in the latter case a task that already started still completes.
func (l *lane) Do(ctx context.Context, direction models.SyncDirection, fn func(ctx context.Context)) error {
	t := &laneTask{
		wait:      ctx,
		direction: direction,
		fn:        fn,
		done:      make(chan error, 1),
	}

	select {
	case <-l.quit:
		return ErrSyncCancelled
	case <-ctx.Done():
		return ctx.Err()
	case l.tasks <- t:
	}

	select {
	case err := <-t.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		select {
		case err := <-t.done:
			return err
		default:
			return ErrSyncCancelled
		}
	}
}

func (l *lane) loop() {
	defer l.wg.Done()

	for {
		select {
		case <-l.quit:
			return
		case t := <-l.tasks:
			select {
			case <-l.quit:
				t.done <- ErrSyncCancelled
				return
			default:
			}
			if t.wait.Err() != nil {
				t.done <- ErrSyncCancelled
				continue
			}
			t.done <- l.execute(t)
		}
	}
}

func (l *lane) execute(t *laneTask) (err error) {
	l.setCurrent(&models.SyncCycle{
		ConnectionID: l.connectionID,
		Direction:    t.direction,
		StartedAt:    l.now(),
		InProgress:   true,
	})
	release := l.suppressor.Suppress()

	defer func() {
		release()
		l.setCurrent(nil)

		if r := recover(); r != nil {
			err = fmt.Errorf("%s cycle panicked: %v", t.direction, r)
			l.log.Error().
				Str("func", "lane.execute").
				Str("connection_id", l.connectionID).
				Str("direction", string(t.direction)).
				Interface("panic", r).
				Msg("sync cycle panicked")
		}
	}()

	ctx, cancel := context.WithCancel(context.WithoutCancel(t.wait))
	defer cancel()
	stop := context.AfterFunc(l.ctx, cancel)
	defer stop()

	t.fn(ctx)
	return nil
}

func (l *lane) setCurrent(c *models.SyncCycle) {
	l.mu.Lock()
	l.current = c
	l.mu.Unlock()
}

// Current returns a copy of the running cycle, or nil when idle.
func (l *lane) Current() *models.SyncCycle {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return nil
	}
	c := *l.current
	return &c
}

// QueueLength returns the number of queued tasks that have not started.
func (l *lane) QueueLength() int {
	return len(l.tasks)
}

// drain resolves every queued task with ErrSyncCancelled and returns how
// many were dropped. The running cycle is not affected.
func (l *lane) drain() int {
	n := 0
	for {
		select {
		case t := <-l.tasks:
			t.done <- ErrSyncCancelled
			n++
		default:
			return n
		}
	}
}

// close stops the worker after the running cycle and drops the queue.
func (l *lane) close() {
	l.stopOnce.Do(func() {
		close(l.quit)
		l.wg.Wait()
		l.drain()
		close(l.stopped)
	})
}
