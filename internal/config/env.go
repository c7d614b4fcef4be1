// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment with caarlos0/env. Variables are
// grouped by the `envPrefix` tags on [StructuredConfig]: APP_ for secrets and
// the log file, STORAGE_DB_ for the connection string, GATE_ for the request
// the command runs.
//
// A value that cannot be converted to its field type yields a wrapped error.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("parse gate env config: %w", err)
	}

	return nil
}
