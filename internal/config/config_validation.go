// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const minStorageSaltLen = 8

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Section-level rules live on the per-command views (see [GateConfig]); this
// stays a no-op so that partial configs can still be merged.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *GateConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.StoragePassphrase != "" && len(cfg.App.StorageSalt) < minStorageSaltLen {
		return fmt.Errorf("%w: storage salt must be at least %d bytes", ErrInvalidAppConfigs, minStorageSaltLen)
	}

	req := cfg.Request
	if req.StructurePath == "" && req.ImportPath == "" && cfg.App.MasterPassword == "" {
		return fmt.Errorf("%w: nothing to do", ErrInvalidGateConfigs)
	}
	if req.DatasetName != "" && req.StructurePath == "" {
		return fmt.Errorf("%w: dataset name given without a structure", ErrInvalidGateConfigs)
	}
	if req.CopyToClipboard && req.DatasetName == "" {
		return fmt.Errorf("%w: clipboard copy needs a dataset name", ErrInvalidGateConfigs)
	}

	return nil
}
