package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
	"github.com/MKhiriev/go-autofill-keeper/models"
)

type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository returns a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{db: db, logger: logger}
}

func (r *credentialRepository) Get(ctx context.Context) (models.Credential, error) {
	query, args, err := buildGetCredentialQuery(r.db.builder)
	if err != nil {
		return "", err
	}

	var secret string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&secret)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrCredentialNotSet
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialRepository.Get").
			Msg("failed to read master credential")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	return models.Credential(secret), nil
}

func (r *credentialRepository) Set(ctx context.Context, credential models.Credential) error {
	if credential == "" {
		return ErrEmptyCredential
	}

	query, args, err := buildSetCredentialQuery(r.db.builder, string(credential))
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialRepository.Set").
			Msg("failed to store master credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	r.logger.Info().Msg("master credential updated")
	return nil
}
