package config

import (
	"fmt"
	"time"
)

// Change-skip policies of the push engine.
const (
	ChangeSkipTimestamp = "timestamp"
	ChangeSkipNever     = "never"
)

// Defaults applied to fields no source has set.
const (
	DefaultDSN                = "contactsync.db"
	DefaultServerAddress      = "localhost:8080"
	DefaultBridgeAddress      = "http://localhost:3001"
	DefaultAdapterTimeout     = 30 * time.Second
	DefaultServerTimeout      = 60 * time.Second
	DefaultPullInterval       = 5 * time.Minute
	DefaultPushInterval       = 5 * time.Minute
	DefaultPushOffset         = 30 * time.Second
	DefaultProtectionInterval = 2 * time.Minute
	DefaultRefreshInterval    = 30 * time.Minute
	DefaultHeartbeatInterval  = time.Minute
	DefaultPushConcurrency    = 10
	DefaultQueueSize          = 16
	DefaultTokenDuration      = 24 * time.Hour
)

// DaemonApp holds the application settings of the daemon.
type DaemonApp struct {
	StorePassphrase string
	TokenSignKey    string
	TokenIssuer     string
	TokenDuration   time.Duration
	Version         string
}

// DaemonStorage holds the local store settings.
type DaemonStorage struct {
	DSN string
}

// DaemonServer holds the control API listener settings.
type DaemonServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// DaemonAdapter holds the bridge client settings.
type DaemonAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// DaemonWorkers holds the effective scheduling settings.
type DaemonWorkers struct {
	PullInterval       time.Duration
	PushInterval       time.Duration
	PushOffset         time.Duration
	ProtectionInterval time.Duration
	RefreshInterval    time.Duration
	HeartbeatInterval  time.Duration
	PushConcurrency    int
	QueueSize          int
}

// DaemonSync holds the reconciliation tuning.
type DaemonSync struct {
	ChangeSkip         string
	ClockSkewTolerance time.Duration
}

// DaemonConfig is the configuration view consumed by the contactsync
// daemon, assembled from [StructuredConfig] with defaults applied.
type DaemonConfig struct {
	App          DaemonApp
	Storage      DaemonStorage
	Server       DaemonServer
	Adapter      DaemonAdapter
	Workers      DaemonWorkers
	Sync         DaemonSync
	ProfilesFile string
}

// GetDaemonConfig builds and validates the daemon configuration view from
// the merged structured configuration.
func GetDaemonConfig(args []string) (*DaemonConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	daemonCfg := NewDaemonConfig(cfg)

	return daemonCfg, daemonCfg.validate()
}

// NewDaemonConfig maps cfg onto a [DaemonConfig] and fills in defaults. It
// does not validate the result.
func NewDaemonConfig(cfg *StructuredConfig) *DaemonConfig {
	d := &DaemonConfig{
		App: DaemonApp{
			StorePassphrase: cfg.App.StorePassphrase,
			TokenSignKey:    cfg.App.TokenSignKey,
			TokenIssuer:     cfg.App.TokenIssuer,
			TokenDuration:   orDuration(cfg.App.TokenDuration, DefaultTokenDuration),
			Version:         cfg.App.Version,
		},
		Storage: DaemonStorage{
			DSN: orString(cfg.Storage.DB.DSN, DefaultDSN),
		},
		Server: DaemonServer{
			HTTPAddress:    orString(cfg.Server.HTTPAddress, DefaultServerAddress),
			RequestTimeout: orDuration(cfg.Server.RequestTimeout, DefaultServerTimeout),
		},
		Adapter: DaemonAdapter{
			HTTPAddress:    orString(cfg.Adapter.HTTPAddress, DefaultBridgeAddress),
			RequestTimeout: orDuration(cfg.Adapter.RequestTimeout, DefaultAdapterTimeout),
		},
		Workers: DaemonWorkers{
			PullInterval:       orDuration(cfg.Workers.PullInterval, DefaultPullInterval),
			PushInterval:       orDuration(cfg.Workers.PushInterval, DefaultPushInterval),
			PushOffset:         orDuration(cfg.Workers.PushOffset, DefaultPushOffset),
			ProtectionInterval: orDuration(cfg.Workers.ProtectionInterval, DefaultProtectionInterval),
			RefreshInterval:    orDuration(cfg.Workers.RefreshInterval, DefaultRefreshInterval),
			HeartbeatInterval:  orDuration(cfg.Workers.HeartbeatInterval, DefaultHeartbeatInterval),
			PushConcurrency:    orInt(cfg.Workers.PushConcurrency, DefaultPushConcurrency),
			QueueSize:          orInt(cfg.Workers.QueueSize, DefaultQueueSize),
		},
		Sync: DaemonSync{
			ChangeSkip:         orString(cfg.Sync.ChangeSkip, ChangeSkipTimestamp),
			ClockSkewTolerance: cfg.Sync.ClockSkewTolerance,
		},
		ProfilesFile: cfg.Capabilities.ProfilesFile,
	}

	return d
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDuration(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
