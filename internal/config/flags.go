package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-d database DSN (SQLite path or postgres:// URL)
//	-connect-timeout database ping timeout (e.g., "5s")
//	-c/-config json file path with configs
//	-master-password master credential to store before opening the gate
//	-storage-passphrase passphrase the field-sealing key is derived from
//	-storage-salt base64 salt for the field-sealing key
//	-log-file log file path
//	-structure path to the JSON form structure
//	-dataset dataset name (selects single dataset mode)
//	-import path to a JSON array of field records to save
//	-copy copy the unlocked password to the clipboard
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		databaseDSN       string
		connectTimeout    time.Duration
		jsonConfigPath    string
		masterPassword    string
		storagePassphrase string
		storageSalt       string
		logFile           string
		structurePath     string
		datasetName       string
		importPath        string
		copyToClipboard   bool
	)

	fs := flag.NewFlagSet("autofill-auth", flag.ContinueOnError)
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Database ping timeout (e.g., 5s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&masterPassword, "master-password", "", "Master password to store")
	fs.StringVar(&storagePassphrase, "storage-passphrase", "", "Field sealing passphrase")
	fs.StringVar(&storageSalt, "storage-salt", "", "Field sealing salt (base64)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&structurePath, "structure", "", "Form structure JSON path")
	fs.StringVar(&datasetName, "dataset", "", "Dataset name to unlock")
	fs.StringVar(&importPath, "import", "", "Field records JSON path")
	fs.BoolVar(&copyToClipboard, "copy", false, "Copy the unlocked password to the clipboard")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MasterPassword:    masterPassword,
			StoragePassphrase: storagePassphrase,
			StorageSalt:       storageSalt,
			LogFile:           logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				ConnectTimeout: connectTimeout,
			},
		},
		Gate: Gate{
			StructurePath:   structurePath,
			DatasetName:     datasetName,
			ImportPath:      importPath,
			CopyToClipboard: copyToClipboard,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
