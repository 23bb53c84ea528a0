package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing or malformed bridge URL
	// or a negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing store passphrase.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates negative intervals or a
	// non-positive push concurrency.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSyncConfigs indicates an unknown change-skip policy.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidProfiles indicates a malformed capability profiles file.
	ErrInvalidProfiles = errors.New("invalid capability profiles")
)
