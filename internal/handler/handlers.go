package handler

import (
	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/handler/http"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.DaemonConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	auth := http.AuthConfig{
		SignKey: cfg.App.TokenSignKey,
		Issuer:  cfg.App.TokenIssuer,
	}

	return &Handlers{HTTP: http.NewHandler(services, auth, logger)}, nil
}
