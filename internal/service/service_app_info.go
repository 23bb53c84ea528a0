package service

import (
	"context"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService reports the daemon build version. The version must be
// set either at build time or through APP_VERSION.
func NewAppInfoService(cfg config.DaemonApp, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		log.Error().Str("func", "NewAppInfoService").Msg("daemon version is empty")
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("func", "NewAppInfoService").Str("version", cfg.Version).Msg("app info ready")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
