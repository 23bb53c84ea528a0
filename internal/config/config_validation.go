// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks invariants of the merged [StructuredConfig] that hold
// regardless of defaults. Missing values are filled in later by the
// daemon view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.ChangeSkip != "" &&
		cfg.Sync.ChangeSkip != ChangeSkipTimestamp &&
		cfg.Sync.ChangeSkip != ChangeSkipNever {
		return fmt.Errorf("%w: unknown change-skip policy %q", ErrInvalidSyncConfigs, cfg.Sync.ChangeSkip)
	}

	return nil
}

func (cfg *DaemonConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.StorePassphrase == "" {
		return ErrInvalidAppConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.PullInterval <= 0 || w.PushInterval <= 0 || w.PushOffset < 0 ||
		w.ProtectionInterval < 0 || w.RefreshInterval < 0 || w.HeartbeatInterval <= 0 ||
		w.PushConcurrency <= 0 || w.QueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Sync.ClockSkewTolerance < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
