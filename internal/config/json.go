package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		MasterPassword    string `json:"master_password"`
		StoragePassphrase string `json:"storage_passphrase"`
		StorageSalt       string `json:"storage_salt"`
		LogFile           string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string   `json:"dsn"`
			ConnectTimeout Duration `json:"connect_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Gate struct {
		StructurePath   string `json:"structure_path"`
		DatasetName     string `json:"dataset_name"`
		ImportPath      string `json:"import_path"`
		CopyToClipboard bool   `json:"copy_to_clipboard"`
	} `json:"gate,omitempty"`
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
			MasterPassword:    jsonCfg.App.MasterPassword,
			StoragePassphrase: jsonCfg.App.StoragePassphrase,
			StorageSalt:       jsonCfg.App.StorageSalt,
			LogFile:           jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN:            jsonCfg.Storage.DB.DSN,
				ConnectTimeout: time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
			},
		},
		Gate: Gate{
			StructurePath:   jsonCfg.Gate.StructurePath,
			DatasetName:     jsonCfg.Gate.DatasetName,
			ImportPath:      jsonCfg.Gate.ImportPath,
			CopyToClipboard: jsonCfg.Gate.CopyToClipboard,
		},
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
