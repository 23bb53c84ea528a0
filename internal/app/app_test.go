package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
)

func testConfig(t *testing.T) *config.DaemonConfig {
	t.Helper()
	return &config.DaemonConfig{
		App: config.DaemonApp{
			StorePassphrase: "correct horse battery staple",
			Version:         "1.0.0-test",
		},
		Storage: config.DaemonStorage{DSN: filepath.Join(t.TempDir(), "contacts.db")},
		Server:  config.DaemonServer{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second},
		Adapter: config.DaemonAdapter{HTTPAddress: "http://127.0.0.1:3001", RequestTimeout: time.Second},
		Workers: config.DaemonWorkers{
			PullInterval:      time.Minute,
			PushInterval:      time.Minute,
			HeartbeatInterval: time.Minute,
			PushConcurrency:   2,
			QueueSize:         4,
		},
		Sync: config.DaemonSync{ChangeSkip: config.ChangeSkipTimestamp},
	}
}

func newTestApp(t *testing.T, cfg *config.DaemonConfig) (*App, error) {
	t.Helper()

	prev := zerolog.DefaultContextLogger
	t.Cleanup(func() { zerolog.DefaultContextLogger = prev })

	a, err := NewApp(context.Background(), cfg, logger.Nop())
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED=0") {
		t.Skip("sqlite driver requires cgo")
	}
	return a, err
}

func TestNewApp_RunAndStop(t *testing.T) {
	a, err := newTestApp(t, testConfig(t))
	require.NoError(t, err)
	require.NotNil(t, a)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestNewApp_InvalidProfilesFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.ProfilesFile = filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(cfg.ProfilesFile, []byte("profiles: [::"), 0o600))

	a, err := newTestApp(t, cfg)
	assert.Nil(t, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load capability profiles")
}

func TestNewApp_MissingVersion(t *testing.T) {
	cfg := testConfig(t)
	cfg.App.Version = ""

	a, err := newTestApp(t, cfg)
	assert.Nil(t, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create services")
}

func TestNewApp_InvalidBridgeAddress(t *testing.T) {
	cfg := testConfig(t)
	cfg.Adapter.HTTPAddress = ""

	a, err := newTestApp(t, cfg)
	assert.Nil(t, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create bridge adapter")
}

func TestNewApp_NoServerAddress(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.HTTPAddress = ""

	a, err := newTestApp(t, cfg)
	assert.Nil(t, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create handlers")
}
