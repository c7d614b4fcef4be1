package models

import "errors"

// Request validation errors returned by [RequestDescriptor.Validate].
var (
	// ErrUnknownResponseMode is returned when Mode is neither FullResponse nor
	// SingleDataset.
	ErrUnknownResponseMode = errors.New("unknown response mode")

	// ErrDatasetNameMissing is returned for a SingleDataset request without a
	// dataset name.
	ErrDatasetNameMissing = errors.New("dataset name is required for single dataset mode")

	// ErrUnexpectedDatasetName is returned for a FullResponse request that
	// carries a dataset name.
	ErrUnexpectedDatasetName = errors.New("dataset name is not allowed for full response mode")

	// ErrNoStructure is returned when the request has no structure attached.
	ErrNoStructure = errors.New("request has no structure")
)

// ErrPayloadRequired is returned by [NewSuccessReply] when called with a nil
// payload.
var ErrPayloadRequired = errors.New("success reply requires a payload")
