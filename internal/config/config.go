// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-autofill-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the master credential
	// seed and the storage sealing passphrase.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the field data and credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Gate describes the authentication request to run.
	Gate Gate `envPrefix:"GATE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// MasterPassword, when set, replaces the stored master credential on
	// startup.
	// Env: APP_MASTER_PASSWORD
	MasterPassword string `env:"MASTER_PASSWORD"`

	// StoragePassphrase is the passphrase the field-sealing key is derived
	// from. When empty, field values are stored unsealed.
	// Env: APP_STORAGE_PASSPHRASE
	StoragePassphrase string `env:"STORAGE_PASSPHRASE"`

	// StorageSalt is the base64-encoded Argon2id salt used together with
	// StoragePassphrase.
	// Env: APP_STORAGE_SALT
	StorageSalt string `env:"STORAGE_SALT"`

	// LogFile is the path log entries are appended to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" URL opens PostgreSQL, anything
	// else is treated as an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// ConnectTimeout bounds the initial ping (e.g. "5s").
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Gate describes the authentication request run by the command.
type Gate struct {
	// StructurePath is the path to the JSON-encoded form structure.
	// Env: GATE_STRUCTURE_PATH
	StructurePath string `env:"STRUCTURE_PATH"`

	// DatasetName selects single-dataset mode when set.
	// Env: GATE_DATASET_NAME
	DatasetName string `env:"DATASET_NAME"`

	// ImportPath is the path to a JSON array of field records saved before
	// the gate opens.
	// Env: GATE_IMPORT_PATH
	ImportPath string `env:"IMPORT_PATH"`

	// CopyToClipboard copies the unlocked password to the clipboard after a
	// successful single-dataset request.
	// Env: GATE_COPY_TO_CLIPBOARD
	CopyToClipboard bool `env:"COPY_TO_CLIPBOARD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
