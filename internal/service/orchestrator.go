// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/adapter"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/validators"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/workers"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// OrchestratorConfig holds the scheduling defaults of the orchestrator.
type OrchestratorConfig struct {
	Defaults  models.Schedule
	QueueSize int
}

// NewOrchestratorConfig maps the daemon's worker settings.
func NewOrchestratorConfig(cfg config.DaemonWorkers) OrchestratorConfig {
	return OrchestratorConfig{
		Defaults: models.Schedule{
			PullInterval:       cfg.PullInterval,
			PushInterval:       cfg.PushInterval,
			PushOffset:         cfg.PushOffset,
			ProtectionInterval: cfg.ProtectionInterval,
			RefreshInterval:    cfg.RefreshInterval,
			HeartbeatInterval:  cfg.HeartbeatInterval,
		},
		QueueSize: cfg.QueueSize,
	}
}

// Engines bundles the cycle implementations driven by the orchestrator.
type Engines struct {
	Puller    Puller
	Pusher    Pusher
	Protector Protector
}

// Orchestrator implements [SyncService]. It owns the connection registry,
// serialises the cycles of every connection through a lane and runs their
// schedules.
type Orchestrator struct {
	registry     *ConnectionRegistry
	capabilities *CapabilityRegistry
	bridge       adapter.BridgeAdapter
	engines      Engines
	suppressor   ChangeSuppressor
	events       *EventBus
	ids          IDGenerator
	validator    validators.Validator
	cfg          OrchestratorConfig

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	states map[string]*connectionState

	now    func() time.Time
	logger *logger.Logger
}

type connectionState struct {
	lane *lane

	mu            sync.Mutex
	schedule      *workers.Workers
	lastHeartbeat time.Time
	lastPull      *models.PullResult
	lastPush      *models.BatchResult
	lastError     string
	lastErrorCode models.ErrorCode
	// heartbeatErr is set while lastError comes from a failed heartbeat.
	heartbeatErr bool
}

func NewOrchestrator(
	registry *ConnectionRegistry,
	capabilities *CapabilityRegistry,
	bridge adapter.BridgeAdapter,
	engines Engines,
	suppressor ChangeSuppressor,
	events *EventBus,
	ids IDGenerator,
	cfg OrchestratorConfig,
	log *logger.Logger,
) *Orchestrator {
	ctx, cancel := context.WithCancel(context.Background())

	return &Orchestrator{
		registry:     registry,
		capabilities: capabilities,
		bridge:       bridge,
		engines:      engines,
		suppressor:   suppressor,
		events:       events,
		ids:          ids,
		validator:    validators.NewConnectionValidator(),
		cfg:          cfg,
		ctx:          ctx,
		cancel:       cancel,
		states:       make(map[string]*connectionState),
		now:          time.Now,
		logger:       log,
	}
}

// recoverPanic turns a panic of a public method into a failed result.
func (o *Orchestrator) recoverPanic(fn string, onPanic func(err error)) {
	if r := recover(); r != nil {
		err := fmt.Errorf("%s: unexpected panic: %v", fn, r)
		o.logger.Error().Str("func", fn).Interface("panic", r).Msg("recovered from panic")
		onPanic(err)
	}
}

// Connect implements [SyncService].
//
// Capabilities come from the override in cfg, a named profile or the
// server URL, and are then narrowed to the address books the bridge
// discovered.
func (o *Orchestrator) Connect(ctx context.Context, cfg models.ConnectConfig) (result models.ConnectResult) {
	defer o.recoverPanic("Orchestrator.Connect", func(err error) {
		result = models.ConnectResult{Error: err.Error(), Code: errorCode(err)}
	})

	log := logger.FromContext(ctx)

	if err := o.validator.Validate(ctx, cfg); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidConnectConfig, err)
		return models.ConnectResult{Error: err.Error(), Code: errorCode(err)}
	}

	id := cfg.ConnectionID
	if id == "" {
		id = o.ids.Generate()
	}
	if _, err := o.registry.Get(id); err == nil {
		err = fmt.Errorf("%w: %s", ErrConnectionExists, id)
		return models.ConnectResult{Error: err.Error(), Code: errorCode(err)}
	}

	caps, err := o.capabilities.Resolve(cfg.ServerURL, cfg.Capabilities, cfg.Profile)
	if err != nil {
		return models.ConnectResult{Error: err.Error(), Code: errorCode(err)}
	}

	books, err := o.bridge.Discover(ctx, id, models.DiscoverRequest{
		ServerURL: cfg.ServerURL,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		log.Err(err).
			Str("func", "Orchestrator.Connect").
			Str("connection_id", id).
			Str("server_url", cfg.ServerURL).
			Msg("address book discovery failed")
		return models.ConnectResult{Error: fmt.Errorf("discover address books: %w", err).Error(), Code: errorCode(err)}
	}

	conn := models.Connection{
		ID:           id,
		ServerURL:    cfg.ServerURL,
		Credentials:  models.Credentials{Username: cfg.Username, Password: cfg.Password},
		Capabilities: Refine(caps, books),
		AddressBooks: books,
		ConnectedAt:  o.now(),
	}
	if err = o.registry.Add(conn); err != nil {
		return models.ConnectResult{Error: err.Error(), Code: errorCode(err)}
	}

	o.mu.Lock()
	o.states[id] = &connectionState{
		lane: newLane(o.ctx, id, o.cfg.QueueSize, o.suppressor, o.logger),
	}
	o.mu.Unlock()

	log.Info().
		Str("func", "Orchestrator.Connect").
		Str("connection_id", id).
		Str("flavor", conn.Capabilities.Flavor).
		Str("protection", string(conn.Capabilities.ProtectionStrategy)).
		Int("address_books", len(books)).
		Msg("connected")

	o.publish(models.Event{Type: models.EventConnectionStatusChanged, ConnectionID: id, Message: "connected"})

	conn.Credentials.Password = ""
	return models.ConnectResult{Success: true, Connection: &conn}
}

// Disconnect implements [SyncService]. The running cycle completes; queued
// cycles resolve with [ErrSyncCancelled].
func (o *Orchestrator) Disconnect(ctx context.Context, connectionID string) (result models.OperationResult) {
	defer o.recoverPanic("Orchestrator.Disconnect", func(err error) {
		result = models.OperationResult{Error: err.Error(), Code: errorCode(err)}
	})

	o.mu.Lock()
	st, ok := o.states[connectionID]
	delete(o.states, connectionID)
	o.mu.Unlock()

	if !ok {
		err := fmt.Errorf("%w: %s", ErrConnectionNotFound, connectionID)
		return models.OperationResult{Error: err.Error(), Code: errorCode(err)}
	}

	st.stopSchedule()
	st.lane.close()
	o.registry.Remove(connectionID)

	logger.FromContext(ctx).Info().
		Str("func", "Orchestrator.Disconnect").
		Str("connection_id", connectionID).
		Msg("disconnected")

	o.publish(models.Event{Type: models.EventConnectionStatusChanged, ConnectionID: connectionID, Message: "disconnected"})

	return models.OperationResult{Success: true}
}

// Pull implements [SyncService].
func (o *Orchestrator) Pull(ctx context.Context, connectionID string) (result models.PullResult) {
	defer o.recoverPanic("Orchestrator.Pull", func(err error) {
		result = models.PullResult{ConnectionID: connectionID, Error: err.Error(), Code: errorCode(err)}
	})

	st, err := o.state(connectionID)
	if err != nil {
		return models.PullResult{ConnectionID: connectionID, Error: err.Error(), Code: errorCode(err)}
	}

	var out models.PullResult
	err = o.cycle(ctx, st, connectionID, models.SyncPull, func(ctx context.Context) cycleOutcome {
		out = o.engines.Puller.Pull(ctx, connectionID)

		st.mu.Lock()
		st.lastPull = &out
		st.mu.Unlock()

		outcome := cycleOutcome{success: out.Success, errMsg: out.Error, code: out.Code}
		if out.Aborted || out.DeletionAborted {
			outcome.abortReason = out.AbortReason
		}
		return outcome
	})
	if err != nil {
		return models.PullResult{ConnectionID: connectionID, Error: err.Error(), Code: errorCode(err)}
	}

	return out
}

// PushAll implements [SyncService].
func (o *Orchestrator) PushAll(ctx context.Context, connectionID string) (result models.BatchResult) {
	defer o.recoverPanic("Orchestrator.PushAll", func(err error) {
		result = models.BatchResult{ConnectionID: connectionID, Error: err.Error(), Code: errorCode(err)}
	})

	st, err := o.state(connectionID)
	if err != nil {
		return models.BatchResult{ConnectionID: connectionID, Error: err.Error(), Code: errorCode(err)}
	}

	var out models.BatchResult
	err = o.cycle(ctx, st, connectionID, models.SyncPush, func(ctx context.Context) cycleOutcome {
		out = o.engines.Pusher.PushAll(ctx, connectionID)

		st.mu.Lock()
		st.lastPush = &out
		st.mu.Unlock()

		return cycleOutcome{success: out.Success, errMsg: out.Error, code: out.Code}
	})
	if err != nil {
		return models.BatchResult{ConnectionID: connectionID, Error: err.Error(), Code: errorCode(err)}
	}

	return out
}

// Protect implements [SyncService]. It runs one unauthorized-edit
// detection pass.
func (o *Orchestrator) Protect(ctx context.Context, connectionID string) models.ProtectionResult {
	return o.protect(ctx, connectionID, models.SyncProtect)
}

func (o *Orchestrator) protect(ctx context.Context, connectionID string, direction models.SyncDirection) (result models.ProtectionResult) {
	defer o.recoverPanic("Orchestrator.protect", func(err error) {
		result = models.ProtectionResult{ConnectionID: connectionID, Error: err.Error(), Code: errorCode(err)}
	})

	st, err := o.state(connectionID)
	if err != nil {
		return models.ProtectionResult{ConnectionID: connectionID, Error: err.Error(), Code: errorCode(err)}
	}

	var out models.ProtectionResult
	err = o.cycle(ctx, st, connectionID, direction, func(ctx context.Context) cycleOutcome {
		if direction == models.SyncRefresh {
			out = o.engines.Protector.RefreshShared(ctx, connectionID)
		} else {
			out = o.engines.Protector.DetectUnauthorizedEdits(ctx, connectionID)
		}
		return cycleOutcome{success: out.Success, errMsg: out.Error, code: out.Code}
	})
	if err != nil {
		return models.ProtectionResult{ConnectionID: connectionID, Error: err.Error(), Code: errorCode(err)}
	}

	return out
}

// cycleOutcome is what a cycle reports back to the orchestrator.
type cycleOutcome struct {
	success     bool
	errMsg      string
	code        models.ErrorCode
	abortReason string
}

// cycle runs fn on the connection's lane and publishes its lifecycle
// events.
func (o *Orchestrator) cycle(
	ctx context.Context,
	st *connectionState,
	connectionID string,
	direction models.SyncDirection,
	fn func(ctx context.Context) cycleOutcome,
) error {
	ctx = o.logger.ContextWithConnection(ctx, connectionID)

	err := st.lane.Do(ctx, direction, func(ctx context.Context) {
		log := logger.FromContext(ctx)
		log.Debug().Str("func", "Orchestrator.cycle").Str("direction", string(direction)).Msg("sync cycle started")
		o.publish(models.Event{Type: models.EventSyncStarted, ConnectionID: connectionID, Direction: direction})

		outcome := fn(ctx)
		success, errMsg, abortReason := outcome.success, outcome.errMsg, outcome.abortReason

		st.mu.Lock()
		if success {
			st.lastError, st.lastErrorCode = "", ""
		} else {
			st.lastError, st.lastErrorCode = errMsg, outcome.code
		}
		st.heartbeatErr = false
		st.mu.Unlock()

		switch {
		case abortReason != "":
			log.Warn().Str("func", "Orchestrator.cycle").Str("direction", string(direction)).Str("reason", abortReason).Msg("sync cycle safety abort")
			o.publish(models.Event{Type: models.EventSafetyAbort, ConnectionID: connectionID, Direction: direction, Message: abortReason})
		case !success:
			log.Error().Str("func", "Orchestrator.cycle").Str("direction", string(direction)).Str("error", errMsg).Msg("sync cycle failed")
			o.publish(models.Event{Type: models.EventSyncFailed, ConnectionID: connectionID, Direction: direction, Message: errMsg})
		default:
			o.publish(models.Event{Type: models.EventSyncFinished, ConnectionID: connectionID, Direction: direction})
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "Orchestrator.cycle").
			Str("direction", string(direction)).
			Msg("sync cycle did not run")
	}

	return err
}

// StartScheduledSync implements [SyncService].
//
// Zero intervals select the configured defaults. Pull runs at once, push
// after the push offset. Protection and refresh are only scheduled on
// connections that need client-side protection; a negative interval
// disables them. A running schedule is replaced.
func (o *Orchestrator) StartScheduledSync(ctx context.Context, connectionID string, schedule models.Schedule) (result models.OperationResult) {
	defer o.recoverPanic("Orchestrator.StartScheduledSync", func(err error) {
		result = models.OperationResult{Error: err.Error(), Code: errorCode(err)}
	})

	if err := o.validator.Validate(ctx, schedule); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
		return models.OperationResult{Error: err.Error(), Code: errorCode(err)}
	}

	st, err := o.state(connectionID)
	if err != nil {
		return models.OperationResult{Error: err.Error(), Code: errorCode(err)}
	}
	conn, err := o.registry.Get(connectionID)
	if err != nil {
		return models.OperationResult{Error: err.Error(), Code: errorCode(err)}
	}

	s := o.effectiveSchedule(schedule)
	log := o.logger.WithConnection(connectionID)

	group := []workers.Worker{
		workers.NewPeriodicWorker(o.ctx, "pull", 0, s.PullInterval, func(ctx context.Context) {
			o.Pull(ctx, connectionID)
		}, log),
		workers.NewPeriodicWorker(o.ctx, "push", s.PushOffset, s.PushInterval, func(ctx context.Context) {
			o.PushAll(ctx, connectionID)
		}, log),
		workers.NewPeriodicWorker(o.ctx, "heartbeat", 0, s.HeartbeatInterval, func(ctx context.Context) {
			o.heartbeat(ctx, st, connectionID)
		}, log),
	}
	if conn.Capabilities.ClientSideProtection() {
		if s.ProtectionInterval > 0 {
			group = append(group, workers.NewPeriodicWorker(o.ctx, "protection", s.ProtectionInterval, s.ProtectionInterval, func(ctx context.Context) {
				o.protect(ctx, connectionID, models.SyncProtect)
			}, log))
		}
		if s.RefreshInterval > 0 {
			group = append(group, workers.NewPeriodicWorker(o.ctx, "refresh", s.RefreshInterval, s.RefreshInterval, func(ctx context.Context) {
				o.protect(ctx, connectionID, models.SyncRefresh)
			}, log))
		}
	}
	ws := workers.NewWorkers(group...)

	st.mu.Lock()
	previous := st.schedule
	st.schedule = ws
	st.mu.Unlock()

	if previous != nil {
		previous.Stop()
	}
	ws.Run()

	log.Info().
		Str("func", "Orchestrator.StartScheduledSync").
		Dur("pull_interval", s.PullInterval).
		Dur("push_interval", s.PushInterval).
		Dur("push_offset", s.PushOffset).
		Int("workers", ws.Len()).
		Msg("scheduled sync started")

	return models.OperationResult{Success: true}
}

func (o *Orchestrator) effectiveSchedule(s models.Schedule) models.Schedule {
	d := o.cfg.Defaults
	pick := func(v, def time.Duration) time.Duration {
		if v == 0 {
			return def
		}
		return v
	}

	return models.Schedule{
		PullInterval:       pick(s.PullInterval, d.PullInterval),
		PushInterval:       pick(s.PushInterval, d.PushInterval),
		PushOffset:         pick(s.PushOffset, d.PushOffset),
		ProtectionInterval: pick(s.ProtectionInterval, d.ProtectionInterval),
		RefreshInterval:    pick(s.RefreshInterval, d.RefreshInterval),
		HeartbeatInterval:  pick(s.HeartbeatInterval, d.HeartbeatInterval),
	}
}

func (o *Orchestrator) heartbeat(ctx context.Context, st *connectionState, connectionID string) {
	health, err := o.bridge.Health(ctx, connectionID)

	st.mu.Lock()
	defer st.mu.Unlock()

	st.lastHeartbeat = o.now()
	switch {
	case err != nil:
		st.lastError = fmt.Errorf("heartbeat: %w", err).Error()
		st.lastErrorCode = errorCode(err)
		st.heartbeatErr = true
	case !health.ServerReachable:
		st.lastError = fmt.Errorf("heartbeat: %w", adapter.ErrServerUnavailable).Error()
		st.lastErrorCode = models.ErrorCodeServerUnavailable
		st.heartbeatErr = true
	case st.heartbeatErr:
		// a cycle error stays until the next cycle
		st.lastError, st.lastErrorCode = "", ""
		st.heartbeatErr = false
	}
}

// StopScheduledSync implements [SyncService]. Timers are cancelled and
// queued cycles resolve with [ErrSyncCancelled]; the running cycle
// completes.
func (o *Orchestrator) StopScheduledSync(ctx context.Context, connectionID string) (result models.OperationResult) {
	defer o.recoverPanic("Orchestrator.StopScheduledSync", func(err error) {
		result = models.OperationResult{Error: err.Error(), Code: errorCode(err)}
	})

	st, err := o.state(connectionID)
	if err != nil {
		return models.OperationResult{Error: err.Error(), Code: errorCode(err)}
	}

	st.stopSchedule()
	dropped := st.lane.drain()

	logger.FromContext(ctx).Info().
		Str("func", "Orchestrator.StopScheduledSync").
		Str("connection_id", connectionID).
		Int("dropped", dropped).
		Msg("scheduled sync stopped")

	return models.OperationResult{Success: true}
}

// GetStatus implements [SyncService].
func (o *Orchestrator) GetStatus(_ context.Context, connectionID string) (status models.ConnectionStatus) {
	defer o.recoverPanic("Orchestrator.GetStatus", func(err error) {
		status = models.ConnectionStatus{ConnectionID: connectionID, LastError: err.Error(), LastErrorCode: errorCode(err)}
	})

	status.ConnectionID = connectionID

	st, err := o.state(connectionID)
	if err != nil {
		status.LastError = err.Error()
		status.LastErrorCode = errorCode(err)
		return status
	}
	conn, err := o.registry.Get(connectionID)
	if err != nil {
		status.LastError = err.Error()
		status.LastErrorCode = errorCode(err)
		return status
	}

	status.Connected = true
	status.Capabilities = &conn.Capabilities
	status.Current = st.lane.Current()
	status.QueueLength = st.lane.QueueLength()

	st.mu.Lock()
	defer st.mu.Unlock()

	status.Scheduled = st.schedule != nil
	status.LastHeartbeat = st.lastHeartbeat
	status.LastError = st.lastError
	status.LastErrorCode = st.lastErrorCode
	if st.lastPull != nil {
		pull := *st.lastPull
		status.LastPull = &pull
	}
	if st.lastPush != nil {
		push := *st.lastPush
		status.LastPush = &push
	}

	return status
}

// Subscribe implements [SyncService].
func (o *Orchestrator) Subscribe(buffer int) (<-chan models.Event, func()) {
	return o.events.Subscribe(buffer)
}

// Close stops every schedule, cancels running cycles and forgets all
// connections.
func (o *Orchestrator) Close() {
	o.cancel()

	o.mu.Lock()
	states := o.states
	o.states = make(map[string]*connectionState)
	o.mu.Unlock()

	for id, st := range states {
		st.stopSchedule()
		st.lane.close()
		o.registry.Remove(id)
	}
}

func (o *Orchestrator) state(connectionID string) (*connectionState, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	st, ok := o.states[connectionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrConnectionNotFound, connectionID)
	}
	return st, nil
}

func (o *Orchestrator) publish(e models.Event) {
	if e.At.IsZero() {
		e.At = o.now()
	}
	o.events.Publish(e)
}

func (st *connectionState) stopSchedule() {
	st.mu.Lock()
	ws := st.schedule
	st.schedule = nil
	st.mu.Unlock()

	if ws != nil {
		ws.Stop()
	}
}
