package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		StorePassphrase string   `json:"store_passphrase"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		Version         string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PullInterval       Duration `json:"pull_interval"`
		PushInterval       Duration `json:"push_interval"`
		PushOffset         Duration `json:"push_offset"`
		ProtectionInterval Duration `json:"protection_interval"`
		RefreshInterval    Duration `json:"refresh_interval"`
		HeartbeatInterval  Duration `json:"heartbeat_interval"`
		PushConcurrency    int      `json:"push_concurrency"`
		QueueSize          int      `json:"queue_size"`
	} `json:"workers,omitempty"`

	Sync struct {
		ChangeSkip         string   `json:"change_skip"`
		ClockSkewTolerance Duration `json:"clock_skew_tolerance"`
	} `json:"sync,omitempty"`

	Capabilities struct {
		ProfilesFile string `json:"profiles_file"`
	} `json:"capabilities,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			StorePassphrase: jsonCfg.App.StorePassphrase,
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PullInterval:       time.Duration(jsonCfg.Workers.PullInterval),
			PushInterval:       time.Duration(jsonCfg.Workers.PushInterval),
			PushOffset:         time.Duration(jsonCfg.Workers.PushOffset),
			ProtectionInterval: time.Duration(jsonCfg.Workers.ProtectionInterval),
			RefreshInterval:    time.Duration(jsonCfg.Workers.RefreshInterval),
			HeartbeatInterval:  time.Duration(jsonCfg.Workers.HeartbeatInterval),
			PushConcurrency:    jsonCfg.Workers.PushConcurrency,
			QueueSize:          jsonCfg.Workers.QueueSize,
		},
		Sync: Sync{
			ChangeSkip:         jsonCfg.Sync.ChangeSkip,
			ClockSkewTolerance: time.Duration(jsonCfg.Sync.ClockSkewTolerance),
		},
		Capabilities: Capabilities{ProfilesFile: jsonCfg.Capabilities.ProfilesFile},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
