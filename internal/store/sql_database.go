// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-autofill-keeper/internal/config"
	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
	"github.com/MKhiriev/go-autofill-keeper/migrations"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB together with the dialect-specific pieces repositories
// need: a squirrel builder with the right placeholder format, the goose
// dialect for migrations, and an error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN. URLs starting with
// "postgres://" or "postgresql://" open PostgreSQL through pgx; any other
// non-empty value is an SQLite file path.
func NewConnect(ctx context.Context, cfg config.GateStorage, log *logger.Logger) (*DB, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg.DSN, log)
	case cfg.DSN != "" && !strings.Contains(cfg.DSN, "://"):
		return NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
	}
}

// Migrate applies the embedded schema migrations for the connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify wraps err with [ErrTransient] when the classifier marks it as
// retryable, so callers can tell a busy database from a broken query.
func (db *DB) classify(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
	return err
}
