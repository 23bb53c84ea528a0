package service

import (
	"fmt"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/adapter"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/store"
)

var _ SyncService = (*Orchestrator)(nil)

type Services struct {
	SyncService    SyncService
	AppInfoService AppInfoService

	orchestrator *Orchestrator
}

// NewServices wires the sync engine on top of storages and bridge.
// profiles are consulted before the built-in capability profiles.
func NewServices(
	cfg config.DaemonConfig,
	storages *store.Storages,
	bridge adapter.BridgeAdapter,
	profiles []config.CapabilityProfile,
	ids IDGenerator,
	log *logger.Logger,
) (*Services, error) {
	capabilities, err := NewCapabilityRegistry(profiles)
	if err != nil {
		return nil, fmt.Errorf("error creating capability registry: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	registry := NewConnectionRegistry()
	events := NewEventBus()

	pusher := NewPushEngine(registry, bridge, storages.Contacts, storages.SharedCopies, ids, NewPushPolicy(cfg.Sync, cfg.Workers))
	engines := Engines{
		Puller:    NewPullReconciler(registry, bridge, storages.Contacts, storages.SharedCopies),
		Pusher:    pusher,
		Protector: NewSharedProtection(registry, bridge, storages.Contacts, storages.SharedCopies, pusher, events),
	}

	orchestrator := NewOrchestrator(
		registry,
		capabilities,
		bridge,
		engines,
		storages.Notifier,
		events,
		ids,
		NewOrchestratorConfig(cfg.Workers),
		log,
	)

	return &Services{
		SyncService:    orchestrator,
		AppInfoService: appInfo,
		orchestrator:   orchestrator,
	}, nil
}

// Close stops every schedule and running cycle.
func (s *Services) Close() {
	s.orchestrator.Close()
}
