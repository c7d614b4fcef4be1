package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-autofill-keeper/internal/config"
	"github.com/MKhiriev/go-autofill-keeper/internal/crypto"
	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
)

// Storages groups the repositories the gate command needs.
type Storages struct {
	// FieldData holds captured form values.
	FieldData FieldDataRepository

	// Credentials holds the master credential.
	Credentials CredentialRepository

	db *DB
}

// NewStorages initialises the storage layer. It performs the following steps:
//  1. Opens the database named by cfg.DSN (SQLite file or PostgreSQL URL).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the field data and credential repositories to the connection.
func NewStorages(ctx context.Context, cfg config.GateStorage, codec crypto.FieldCodec, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, codec, logger), nil
}

func newStorages(db *DB, codec crypto.FieldCodec, logger *logger.Logger) *Storages {
	return &Storages{
		FieldData:   NewFieldDataRepository(db, codec, logger),
		Credentials: NewCredentialRepository(db, logger),
		db:          db,
	}
}

// Close releases the underlying connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
