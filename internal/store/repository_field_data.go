package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-autofill-keeper/internal/crypto"
	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
	"github.com/MKhiriev/go-autofill-keeper/models"
)

type fieldDataRepository struct {
	db     *DB
	codec  crypto.FieldCodec
	logger *logger.Logger
}

// NewFieldDataRepository returns a [FieldDataRepository] storing values in db,
// each value passed through codec.
func NewFieldDataRepository(db *DB, codec crypto.FieldCodec, logger *logger.Logger) FieldDataRepository {
	return &fieldDataRepository{
		db:     db,
		codec:  codec,
		logger: logger,
	}
}

func (r *fieldDataRepository) Lookup(ctx context.Context, focusedHints, allHints []string) (models.FieldDataset, error) {
	log := logger.FromContext(ctx)
	dataset := make(models.FieldDataset)

	if len(allHints) == 0 || len(focusedHints) == 0 {
		return dataset, nil
	}

	query, args, err := buildLookupQuery(r.db.builder, allHints)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fieldDataRepository.Lookup").
			Strs("hints", allHints).
			Msg("failed to execute lookup query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	for rows.Next() {
		var name, hint, blob string
		if err = rows.Scan(&name, &hint, &blob); err != nil {
			log.Err(err).
				Str("func", "fieldDataRepository.Lookup").
				Msg("failed to scan form field row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var value models.FieldValue
		if err = r.codec.Open(blob, &value); err != nil {
			log.Err(err).
				Str("func", "fieldDataRepository.Lookup").
				Str("dataset_name", name).
				Str("hint", hint).
				Msg("failed to open stored value")
			return nil, fmt.Errorf("%w (dataset=%s, hint=%s): %w", ErrDecodingValue, name, hint, err)
		}

		record, ok := dataset[name]
		if !ok {
			record = models.FieldRecord{DatasetName: name, Values: make(map[string]models.FieldValue)}
			dataset[name] = record
		}
		record.Values[hint] = value
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "fieldDataRepository.Lookup").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	helpsFocused := false
	for name, record := range dataset {
		if !record.HelpsWithHints(allHints) {
			delete(dataset, name)
			continue
		}
		if record.HelpsWithHints(focusedHints) {
			helpsFocused = true
		}
	}
	if !helpsFocused {
		log.Debug().
			Str("func", "fieldDataRepository.Lookup").
			Strs("focused_hints", focusedHints).
			Msg("no stored data for focused hints")
		return make(models.FieldDataset), nil
	}

	return dataset, nil
}

func (r *fieldDataRepository) Save(ctx context.Context, record models.FieldRecord) error {
	log := logger.FromContext(ctx)

	if record.DatasetName == "" {
		return ErrEmptyDatasetName
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "fieldDataRepository.Save").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.classify(err))
	}
	defer tx.Rollback()

	query, args, err := buildDeleteDatasetQuery(r.db.builder, record.DatasetName)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "fieldDataRepository.Save").
			Str("dataset_name", record.DatasetName).
			Msg("failed to delete previous values")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	for hint, value := range record.Values {
		if value.IsEmpty() {
			continue
		}

		blob, err := r.codec.Seal(value)
		if err != nil {
			return fmt.Errorf("failed to seal value (dataset=%s, hint=%s): %w", record.DatasetName, hint, err)
		}

		query, args, err := buildUpsertFieldQuery(r.db.builder, record.DatasetName, hint, blob)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "fieldDataRepository.Save").
				Str("dataset_name", record.DatasetName).
				Str("hint", hint).
				Msg("failed to upsert field value")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "fieldDataRepository.Save").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, r.db.classify(err))
	}

	return nil
}

func (r *fieldDataRepository) Clear(ctx context.Context) error {
	query, args, err := buildClearQuery(r.db.builder)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fieldDataRepository.Clear").
			Msg("failed to clear form fields")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return nil
}
