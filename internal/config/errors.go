package config

import "errors"

// Validation errors returned by [GateConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a sealing passphrase without a salt).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidGateConfigs indicates an inconsistent gate request
	// (for example, nothing to do, or a dataset name without a structure).
	ErrInvalidGateConfigs = errors.New("invalid gate configuration")
)
