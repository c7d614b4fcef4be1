// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	formFieldsTable       = "form_fields"
	masterCredentialTable = "master_credential"

	// masterCredentialRowID is the only row of master_credential.
	masterCredentialRowID = 1
)

// buildLookupQuery selects every stored value whose hint is one of hints,
// ordered so rows of the same dataset are adjacent.
func buildLookupQuery(b sq.StatementBuilderType, hints []string) (string, []any, error) {
	query, args, err := b.
		Select("dataset_name", "hint", "value").
		From(formFieldsTable).
		Where(sq.Eq{"hint": hints}).
		OrderBy("dataset_name", "hint").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertFieldQuery inserts one value or replaces the value already
// stored for the same dataset and hint. ON CONFLICT ... DO UPDATE is
// understood by both SQLite and PostgreSQL.
func buildUpsertFieldQuery(b sq.StatementBuilderType, datasetName, hint, value string) (string, []any, error) {
	query, args, err := b.
		Insert(formFieldsTable).
		Columns("dataset_name", "hint", "value").
		Values(datasetName, hint, value).
		Suffix("ON CONFLICT (dataset_name, hint) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteDatasetQuery removes every value stored under datasetName.
func buildDeleteDatasetQuery(b sq.StatementBuilderType, datasetName string) (string, []any, error) {
	query, args, err := b.
		Delete(formFieldsTable).
		Where(sq.Eq{"dataset_name": datasetName}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildClearQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Delete(formFieldsTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetCredentialQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select("secret").
		From(masterCredentialTable).
		Where(sq.Eq{"id": masterCredentialRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSetCredentialQuery(b sq.StatementBuilderType, secret string) (string, []any, error) {
	query, args, err := b.
		Insert(masterCredentialTable).
		Columns("id", "secret").
		Values(masterCredentialRowID, secret).
		Suffix("ON CONFLICT (id) DO UPDATE SET secret = excluded.secret").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
