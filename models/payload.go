// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Payload is the authenticated content of a successful reply. It is
// implemented only by [FullResponsePayload] and [SingleDatasetPayload]; the
// value returned by Mode always matches the request that produced it.
type Payload interface {
	Mode() ResponseMode
	isPayload()
}

// Dataset is one fillable set of values, ready to be applied to a form.
type Dataset struct {
	// Name is the dataset name the values were captured under.
	Name string `json:"name"`

	// Presentation is the label shown to the user when picking the dataset.
	Presentation string `json:"presentation"`

	// Values maps each target field to the value it receives.
	Values map[AutofillID]FieldValue `json:"values"`
}

// SaveInfo tells the caller which kinds of data the form can save and which
// fields must be filled before saving is offered.
type SaveInfo struct {
	SaveTypes   SaveType     `json:"save_types"`
	RequiredIDs []AutofillID `json:"required_ids"`
}

// FullResponsePayload unlocks every dataset that matched the structure.
type FullResponsePayload struct {
	Datasets []Dataset `json:"datasets"`
	SaveInfo *SaveInfo `json:"save_info,omitempty"`
}

// Mode implements [Payload].
func (FullResponsePayload) Mode() ResponseMode { return FullResponse }

func (FullResponsePayload) isPayload() {}

// SingleDatasetPayload unlocks exactly one dataset.
type SingleDatasetPayload struct {
	Dataset Dataset `json:"dataset"`
}

// Mode implements [Payload].
func (SingleDatasetPayload) Mode() ResponseMode { return SingleDataset }

func (SingleDatasetPayload) isPayload() {}
