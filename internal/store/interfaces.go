package store

import (
	"context"

	"github.com/MKhiriev/go-autofill-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FieldDataRepository persists captured form field values grouped by dataset.
type FieldDataRepository interface {
	// Lookup returns every record that has a value for any of allHints,
	// keyed by dataset name. When no record has a value for any of
	// focusedHints the result is empty: the focused field cannot be filled,
	// so nothing is offered.
	Lookup(ctx context.Context, focusedHints, allHints []string) (models.FieldDataset, error)

	// Save upserts the values of record under its dataset name.
	Save(ctx context.Context, record models.FieldRecord) error

	// Clear removes every stored record.
	Clear(ctx context.Context) error
}

// CredentialRepository holds the single master credential. Get is safe for
// concurrent use.
type CredentialRepository interface {
	Get(ctx context.Context) (models.Credential, error)
	Set(ctx context.Context, credential models.Credential) error
}
