package http

import (
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/service"
)

// AuthConfig enables bearer-token authentication of the control API. An
// empty SignKey leaves the API open.
type AuthConfig struct {
	SignKey string
	Issuer  string
}

func (c AuthConfig) enabled() bool {
	return c.SignKey != ""
}

type Handler struct {
	services *service.Services
	auth     AuthConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, auth AuthConfig, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", auth.enabled()).Msg("http handler created")
	return &Handler{
		services: services,
		auth:     auth,
		logger:   logger,
	}
}
