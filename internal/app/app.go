package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/adapter"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/crypto"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/handler"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/server"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/service"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/store"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/utils"
)

type App struct {
	storages *store.Storages
	services *service.Services
	server   server.Server

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.DaemonConfig, log *logger.Logger) (*App, error) {
	// loggers looked up from a context without one fall back to the daemon logger
	zerolog.DefaultContextLogger = &log.Logger

	profiles, err := config.LoadCapabilityProfiles(cfg.ProfilesFile)
	if err != nil {
		return nil, fmt.Errorf("load capability profiles: %w", err)
	}

	ids := utils.NewUUIDGenerator()

	storages, err := store.NewStorages(ctx, *cfg, crypto.NewKeyChainService(), ids, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	app, err := wire(cfg, storages, profiles, ids, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}

	return app, nil
}

func wire(cfg *config.DaemonConfig, storages *store.Storages, profiles []config.CapabilityProfile, ids *utils.UUIDGenerator, log *logger.Logger) (*App, error) {
	bridge, err := adapter.NewHTTPBridgeAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create bridge adapter: %w", err)
	}

	services, err := service.NewServices(*cfg, storages, bridge, profiles, ids, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		services.Close()
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		services.Close()
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		server:   srv,
		logger:   log,
	}, nil
}

// Run serves the control API until ctx is cancelled or a stop signal
// arrives, then stops every sync cycle and closes the store.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if err := a.server.RunServer(ctx); err != nil {
		return fmt.Errorf("run server: %w", err)
	}
	return nil
}

func (a *App) close() {
	a.services.Close()
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.close").Msg("error closing storages")
	}
	a.logger.Info().Msg("daemon stopped")
}
