package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDatasetName    = errors.New("dataset name is required")
	ErrEmptyValues         = errors.New("record has no values")
	ErrUnsupportedHint     = errors.New("unsupported autofill hint")
	ErrInvalidValue        = errors.New("value must set exactly one of text, toggle, date")
	ErrEmptyRecords        = errors.New("records list cannot be empty")
	ErrDuplicateDataset    = errors.New("duplicate dataset name")
	ErrNoWindows           = errors.New("structure has no windows")
	ErrDuplicateAutofillID = errors.New("duplicate autofill id")
)
