// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_MASTER_PASSWORD":    "secret",
		"APP_STORAGE_PASSPHRASE": "passphrase",
		"APP_STORAGE_SALT":       "c2FsdHNhbHQ=",
		"APP_LOG_FILE":           "/var/log/gate.log",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI":    "/var/lib/autofill.db",
		"STORAGE_DB_CONNECT_TIMEOUT": "3s",

		"GATE_STRUCTURE_PATH":    "/tmp/structure.json",
		"GATE_DATASET_NAME":      "work-login",
		"GATE_IMPORT_PATH":       "/tmp/records.json",
		"GATE_COPY_TO_CLIPBOARD": "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "secret", cfg.App.MasterPassword)
	assert.Equal(t, "passphrase", cfg.App.StoragePassphrase)
	assert.Equal(t, "c2FsdHNhbHQ=", cfg.App.StorageSalt)
	assert.Equal(t, "/var/log/gate.log", cfg.App.LogFile)

	assert.Equal(t, "/var/lib/autofill.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.ConnectTimeout)

	assert.Equal(t, "/tmp/structure.json", cfg.Gate.StructurePath)
	assert.Equal(t, "work-login", cfg.Gate.DatasetName)
	assert.Equal(t, "/tmp/records.json", cfg.Gate.ImportPath)
	assert.True(t, cfg.Gate.CopyToClipboard)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/autofill",
		"GATE_DATASET_NAME":       "home-login",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/autofill", cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Storage.DB.ConnectTimeout)
	assert.Equal(t, "home-login", cfg.Gate.DatasetName)
	assert.Empty(t, cfg.Gate.StructurePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_DB_CONNECT_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse gate env config")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_MASTER_PASSWORD",
		"APP_STORAGE_PASSPHRASE",
		"APP_STORAGE_SALT",
		"APP_LOG_FILE",

		"STORAGE_DB_DATABASE_URI",
		"STORAGE_DB_CONNECT_TIMEOUT",

		"GATE_STRUCTURE_PATH",
		"GATE_DATASET_NAME",
		"GATE_IMPORT_PATH",
		"GATE_COPY_TO_CLIPBOARD",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
	}
}
