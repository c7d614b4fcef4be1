package gate

import (
	"context"

	"github.com/MKhiriev/go-autofill-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gate_mock.go -package=mock

// CredentialStore returns the stored master credential.
type CredentialStore interface {
	Get(ctx context.Context) (models.Credential, error)
}

// StructureParser extracts the autofill fields of a structure. The returned
// collection carries the focused hints, every hint and the save-type mask.
type StructureParser interface {
	Parse(structure *models.Structure) (*models.FieldsCollection, error)
}

// FieldDataSource looks up stored field data for a parsed structure.
type FieldDataSource interface {
	Lookup(ctx context.Context, focusedHints, allHints []string) (models.FieldDataset, error)
}

// PayloadBuilder turns stored field data into the payload of a successful
// reply.
type PayloadBuilder interface {
	BuildFullResponse(fields *models.FieldsCollection, saveTypes models.SaveType, dataset models.FieldDataset) (models.FullResponsePayload, error)
	BuildSingleDataset(fields *models.FieldsCollection, record models.FieldRecord) (models.SingleDatasetPayload, error)
}
