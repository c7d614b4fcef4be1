// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ResponseMode selects what an authenticated request unlocks: the whole
// autofill response or one named dataset inside it.
type ResponseMode int

const (
	// FullResponse unlocks every dataset matching the parsed structure.
	FullResponse ResponseMode = iota + 1

	// SingleDataset unlocks exactly one dataset identified by name.
	SingleDataset
)

// String returns the lower-case wire name of the mode.
func (m ResponseMode) String() string {
	switch m {
	case FullResponse:
		return "full_response"
	case SingleDataset:
		return "single_dataset"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// RequestDescriptor describes what the caller wants authenticated access to.
// It is created by the caller and consumed exactly once by the gate; the gate
// keeps its own copy so later mutation by the caller has no effect.
type RequestDescriptor struct {
	// Mode is the requested reply shape.
	Mode ResponseMode `json:"mode"`

	// DatasetName names the dataset to unlock. It must be set when Mode is
	// SingleDataset and must be nil otherwise.
	DatasetName *string `json:"dataset_name,omitempty"`

	// Structure is the opaque form structure the request was raised for.
	Structure *Structure `json:"structure"`
}

// NewFullResponseRequest builds a request that unlocks the whole response for
// structure.
func NewFullResponseRequest(structure *Structure) RequestDescriptor {
	return RequestDescriptor{Mode: FullResponse, Structure: structure}
}

// NewSingleDatasetRequest builds a request that unlocks the dataset called
// name for structure.
func NewSingleDatasetRequest(name string, structure *Structure) RequestDescriptor {
	return RequestDescriptor{Mode: SingleDataset, DatasetName: &name, Structure: structure}
}

// Validate checks the mode/dataset-name consistency of r. It returns
// [ErrUnknownResponseMode], [ErrDatasetNameMissing], [ErrUnexpectedDatasetName]
// or [ErrNoStructure].
func (r RequestDescriptor) Validate() error {
	switch r.Mode {
	case FullResponse:
		if r.DatasetName != nil {
			return ErrUnexpectedDatasetName
		}
	case SingleDataset:
		if r.DatasetName == nil || *r.DatasetName == "" {
			return ErrDatasetNameMissing
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownResponseMode, int(r.Mode))
	}

	if r.Structure == nil {
		return ErrNoStructure
	}

	return nil
}

// Clone returns a copy of r that shares no mutable memory with it except the
// structure, which the gate treats as read-only.
func (r RequestDescriptor) Clone() RequestDescriptor {
	c := r
	if r.DatasetName != nil {
		name := *r.DatasetName
		c.DatasetName = &name
	}
	return c
}
