package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-autofill-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldDatasetName targets the name of a field record.
	FieldDatasetName = "dataset_name"

	// FieldValues targets the presence of at least one value in a record.
	FieldValues = "values"

	// FieldHints targets the hint keys of a record's values.
	FieldHints = "hints"

	// FieldValueKind targets the one-member-set rule of every value.
	FieldValueKind = "value_kind"

	// FieldRecords targets every record of an import batch.
	FieldRecords = "records"

	// FieldWindows targets the root nodes of a structure.
	FieldWindows = "windows"

	// FieldAutofillIDs targets the uniqueness of autofill ids in a structure.
	FieldAutofillIDs = "autofill_ids"
)

// FieldDataValidator validates [models.FieldRecord], batches of records and
// [models.Structure].
type FieldDataValidator struct {
}

// NewFieldDataValidator returns a [Validator] for field data.
func NewFieldDataValidator() Validator {
	return &FieldDataValidator{}
}

func (v *FieldDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FieldRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.FieldRecord:
		return v.validateRecord(ctx, *value, fields...)

	case []models.FieldRecord:
		return v.validateRecords(ctx, value, fields...)

	case models.Structure:
		return v.validateStructure(ctx, value, fields...)
	case *models.Structure:
		return v.validateStructure(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FieldDataValidator) validateRecord(ctx context.Context, record models.FieldRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDatasetName, FieldValues, FieldHints, FieldValueKind}
	}

	for _, f := range fields {
		switch f {
		case FieldDatasetName:
			if record.DatasetName == "" {
				return ErrEmptyDatasetName
			}
		case FieldValues:
			if len(record.Values) == 0 {
				return ErrEmptyValues
			}
		case FieldHints:
			for hint := range record.Values {
				if !models.IsSupportedHint(hint) {
					return fmt.Errorf("%w: %q", ErrUnsupportedHint, hint)
				}
			}
		case FieldValueKind:
			for hint, value := range record.Values {
				if !hasExactlyOneMember(value) {
					return fmt.Errorf("%w (hint=%s)", ErrInvalidValue, hint)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FieldDataValidator) validateRecords(ctx context.Context, records []models.FieldRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecords}
	}

	for _, f := range fields {
		switch f {
		case FieldRecords:
			if len(records) == 0 {
				return ErrEmptyRecords
			}
			seen := make(map[string]struct{}, len(records))
			for i, record := range records {
				if err := v.validateRecord(ctx, record); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if _, dup := seen[record.DatasetName]; dup {
					return fmt.Errorf("validation error at index %d: %w: %q", i, ErrDuplicateDataset, record.DatasetName)
				}
				seen[record.DatasetName] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FieldDataValidator) validateStructure(ctx context.Context, structure models.Structure, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWindows, FieldAutofillIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldWindows:
			if len(structure.Windows) == 0 {
				return ErrNoWindows
			}
		case FieldAutofillIDs:
			seen := make(map[models.AutofillID]struct{})
			if id, dup := findDuplicateID(structure.Windows, seen); dup {
				return fmt.Errorf("%w: %d", ErrDuplicateAutofillID, id)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func findDuplicateID(nodes []models.ViewNode, seen map[models.AutofillID]struct{}) (models.AutofillID, bool) {
	for _, node := range nodes {
		if _, dup := seen[node.ID]; dup {
			return node.ID, true
		}
		seen[node.ID] = struct{}{}

		if id, dup := findDuplicateID(node.Children, seen); dup {
			return id, true
		}
	}
	return 0, false
}

func hasExactlyOneMember(v models.FieldValue) bool {
	n := 0
	if v.Text != nil {
		n++
	}
	if v.Toggle != nil {
		n++
	}
	if v.Date != nil {
		n++
	}
	return n == 1
}
