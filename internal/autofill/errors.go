package autofill

import "errors"

var (
	// ErrEmptyResponse is returned when a full response would carry neither
	// a dataset nor save info.
	ErrEmptyResponse = errors.New("response has no datasets and nothing to save")

	// ErrNothingToFill is returned when a record has no value for any field
	// of the structure.
	ErrNothingToFill = errors.New("dataset has no value for any field")

	// ErrNilFields is returned when the builder is called without parsed
	// fields.
	ErrNilFields = errors.New("fields collection is nil")
)
