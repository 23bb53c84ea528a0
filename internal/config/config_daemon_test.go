package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDaemonConfig_Defaults(t *testing.T) {
	cfg := NewDaemonConfig(&StructuredConfig{App: App{StorePassphrase: "p"}})

	assert.Equal(t, DefaultDSN, cfg.Storage.DSN)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultBridgeAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultPullInterval, cfg.Workers.PullInterval)
	assert.Equal(t, DefaultPushInterval, cfg.Workers.PushInterval)
	assert.Equal(t, DefaultPushOffset, cfg.Workers.PushOffset)
	assert.Equal(t, DefaultHeartbeatInterval, cfg.Workers.HeartbeatInterval)
	assert.Equal(t, DefaultPushConcurrency, cfg.Workers.PushConcurrency)
	assert.Equal(t, DefaultQueueSize, cfg.Workers.QueueSize)
	assert.Equal(t, ChangeSkipTimestamp, cfg.Sync.ChangeSkip)
	assert.Zero(t, cfg.Sync.ClockSkewTolerance)

	assert.NoError(t, cfg.validate())
}

func TestNewDaemonConfig_KeepsExplicitValues(t *testing.T) {
	cfg := NewDaemonConfig(&StructuredConfig{
		App:     App{StorePassphrase: "p", TokenSignKey: "k"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/contacts"}},
		Adapter: Adapter{HTTPAddress: "http://bridge:9000"},
		Workers: Workers{PullInterval: time.Minute, PushConcurrency: 3},
		Sync:    Sync{ChangeSkip: ChangeSkipNever, ClockSkewTolerance: time.Second},
	})

	assert.Equal(t, "postgres://localhost/contacts", cfg.Storage.DSN)
	assert.Equal(t, "http://bridge:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, time.Minute, cfg.Workers.PullInterval)
	assert.Equal(t, 3, cfg.Workers.PushConcurrency)
	assert.Equal(t, ChangeSkipNever, cfg.Sync.ChangeSkip)
	assert.Equal(t, time.Second, cfg.Sync.ClockSkewTolerance)
}

func TestDaemonConfig_Validate(t *testing.T) {
	valid := func() *DaemonConfig {
		return NewDaemonConfig(&StructuredConfig{App: App{StorePassphrase: "p"}})
	}

	tests := []struct {
		name    string
		mutate  func(c *DaemonConfig)
		wantErr error
	}{
		{"valid", func(c *DaemonConfig) {}, nil},
		{"missing passphrase", func(c *DaemonConfig) { c.App.StorePassphrase = "" }, ErrInvalidAppConfigs},
		{"missing dsn", func(c *DaemonConfig) { c.Storage.DSN = "" }, ErrInvalidStorageConfigs},
		{"bridge without scheme", func(c *DaemonConfig) { c.Adapter.HTTPAddress = "localhost:3001" }, ErrInvalidAdapterConfigs},
		{"negative adapter timeout", func(c *DaemonConfig) { c.Adapter.RequestTimeout = -time.Second }, ErrInvalidAdapterConfigs},
		{"zero concurrency", func(c *DaemonConfig) { c.Workers.PushConcurrency = 0 }, ErrInvalidWorkerConfigs},
		{"negative offset", func(c *DaemonConfig) { c.Workers.PushOffset = -time.Second }, ErrInvalidWorkerConfigs},
		{"negative skew", func(c *DaemonConfig) { c.Sync.ClockSkewTolerance = -time.Second }, ErrInvalidSyncConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)

			err := c.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetDaemonConfig_FromEnvAndFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_STORE_PASSPHRASE":  "from-env",
		"WORKERS_PULL_INTERVAL": "90s",
	})

	cfg, err := GetDaemonConfig([]string{"-d", "flags.db", "-pull-interval", "10s"})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.StorePassphrase)
	assert.Equal(t, "flags.db", cfg.Storage.DSN)
	assert.Equal(t, 90*time.Second, cfg.Workers.PullInterval)
}

func TestGetDaemonConfig_MissingPassphrase(t *testing.T) {
	clearEnvVars(t)

	_, err := GetDaemonConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
