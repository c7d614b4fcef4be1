package config

import (
	"encoding/base64"
	"fmt"
	"time"
)

// GateApp holds the application settings used by the gate command.
type GateApp struct {
	// MasterPassword is the optional credential seed.
	MasterPassword string
	// StoragePassphrase is the optional field-sealing passphrase.
	StoragePassphrase string
	// StorageSalt is the decoded sealing salt.
	StorageSalt []byte
	// LogFile is where log entries are appended.
	LogFile string
}

// GateStorage contains storage settings for the gate command.
type GateStorage struct {
	// DSN is the SQLite path or PostgreSQL URL.
	DSN string
	// ConnectTimeout bounds the initial ping.
	ConnectTimeout time.Duration
}

// GateRequest describes the request the command opens the gate with.
type GateRequest struct {
	StructurePath   string
	DatasetName     string
	ImportPath      string
	CopyToClipboard bool
}

// GateConfig is the configuration view consumed by cmd/autofill-auth,
// assembled from [StructuredConfig].
type GateConfig struct {
	App     GateApp
	Storage GateStorage
	Request GateRequest
}

const defaultConnectTimeout = 5 * time.Second

// GetGateConfig builds and validates the gate command's config view from the
// merged structured configuration.
func GetGateConfig() (*GateConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newGateConfig(cfg)
}

func newGateConfig(cfg *StructuredConfig) (*GateConfig, error) {
	salt, err := base64.StdEncoding.DecodeString(cfg.App.StorageSalt)
	if err != nil {
		return nil, fmt.Errorf("%w: storage salt is not valid base64: %v", ErrInvalidAppConfigs, err)
	}

	gateCfg := &GateConfig{
		App: GateApp{
			MasterPassword:    cfg.App.MasterPassword,
			StoragePassphrase: cfg.App.StoragePassphrase,
			StorageSalt:       salt,
			LogFile:           cfg.App.LogFile,
		},
		Storage: GateStorage{
			DSN:            cfg.Storage.DB.DSN,
			ConnectTimeout: cfg.Storage.DB.ConnectTimeout,
		},
		Request: GateRequest{
			StructurePath:   cfg.Gate.StructurePath,
			DatasetName:     cfg.Gate.DatasetName,
			ImportPath:      cfg.Gate.ImportPath,
			CopyToClipboard: cfg.Gate.CopyToClipboard,
		},
	}
	if gateCfg.Storage.ConnectTimeout == 0 {
		gateCfg.Storage.ConnectTimeout = defaultConnectTimeout
	}

	return gateCfg, gateCfg.validate()
}
