// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package autofill rebuilds fillable datasets from stored field data once the
// master credential has been accepted.
package autofill

import (
	"fmt"

	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
	"github.com/MKhiriev/go-autofill-keeper/models"
)

// PayloadBuilder maps stored records onto the fields of a parsed structure.
type PayloadBuilder struct {
	logger *logger.Logger
}

// NewPayloadBuilder returns a PayloadBuilder.
func NewPayloadBuilder(log *logger.Logger) *PayloadBuilder {
	return &PayloadBuilder{logger: log}
}

// BuildFullResponse builds one dataset per record of dataset, in ascending
// name order, skipping records that fill nothing. Save info listing every
// field id is attached when saveTypes is not zero. A response with neither
// datasets nor save info returns [ErrEmptyResponse].
func (b *PayloadBuilder) BuildFullResponse(fields *models.FieldsCollection, saveTypes models.SaveType, dataset models.FieldDataset) (models.FullResponsePayload, error) {
	if fields == nil {
		return models.FullResponsePayload{}, ErrNilFields
	}

	var payload models.FullResponsePayload
	for _, name := range dataset.Names() {
		ds, ok := newDataset(fields, dataset[name])
		if !ok {
			b.logger.Debug().
				Str("func", "PayloadBuilder.BuildFullResponse").
				Str("dataset_name", name).
				Msg("skipping dataset with no matching values")
			continue
		}
		payload.Datasets = append(payload.Datasets, ds)
	}

	if saveTypes != models.SaveTypeGeneric {
		payload.SaveInfo = &models.SaveInfo{
			SaveTypes:   saveTypes,
			RequiredIDs: append([]models.AutofillID(nil), fields.AutofillIDs()...),
		}
	}

	if len(payload.Datasets) == 0 && payload.SaveInfo == nil {
		return models.FullResponsePayload{}, ErrEmptyResponse
	}

	return payload, nil
}

// BuildSingleDataset builds the dataset for record alone. It returns
// [ErrNothingToFill] when record has no value for any field.
func (b *PayloadBuilder) BuildSingleDataset(fields *models.FieldsCollection, record models.FieldRecord) (models.SingleDatasetPayload, error) {
	if fields == nil {
		return models.SingleDatasetPayload{}, ErrNilFields
	}

	ds, ok := newDataset(fields, record)
	if !ok {
		return models.SingleDatasetPayload{}, fmt.Errorf("%w: %q", ErrNothingToFill, record.DatasetName)
	}

	return models.SingleDatasetPayload{Dataset: ds}, nil
}

// newDataset applies record to fields. The dataset's presentation is its
// name. It reports false when no field received a value.
func newDataset(fields *models.FieldsCollection, record models.FieldRecord) (models.Dataset, bool) {
	values := record.ApplyToFields(fields)
	if len(values) == 0 {
		return models.Dataset{}, false
	}

	return models.Dataset{
		Name:         record.DatasetName,
		Presentation: record.DatasetName,
		Values:       values,
	}, true
}
