package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultControlAPI is the control API address assumed by contactsyncctl.
const DefaultControlAPI = "http://" + DefaultServerAddress

// CtlConfig holds the environment defaults of the control CLI. Flags
// given on the command line take precedence.
type CtlConfig struct {
	// API is the base URL of the daemon's control API.
	// Env: CONTACTSYNC_API
	API string `env:"CONTACTSYNC_API"`

	// Token is sent as a bearer token when set.
	// Env: CONTACTSYNC_TOKEN
	Token string `env:"CONTACTSYNC_TOKEN"`

	// Timeout bounds a single control API call.
	// Env: CONTACTSYNC_TIMEOUT
	Timeout time.Duration `env:"CONTACTSYNC_TIMEOUT"`

	// TokenSignKey, TokenIssuer and TokenDuration are shared with the
	// daemon so that the CLI can mint tokens it accepts.
	TokenSignKey  string        `env:"APP_TOKEN_SIGN_KEY"`
	TokenIssuer   string        `env:"APP_TOKEN_ISSUER"`
	TokenDuration time.Duration `env:"APP_TOKEN_DURATION"`
}

// GetCtlConfig reads the control CLI defaults from the environment.
func GetCtlConfig() (*CtlConfig, error) {
	cfg, err := env.ParseAs[CtlConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.API = orString(cfg.API, DefaultControlAPI)
	cfg.Timeout = orDuration(cfg.Timeout, DefaultServerTimeout)
	cfg.TokenDuration = orDuration(cfg.TokenDuration, DefaultTokenDuration)

	return &cfg, nil
}
