package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment following the `env` and
// `envPrefix` tags of [StructuredConfig]. SYNC_CHANGE_SKIP is matched
// case-insensitively.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	cfg.Sync.ChangeSkip = strings.ToLower(strings.TrimSpace(cfg.Sync.ChangeSkip))

	return nil
}
