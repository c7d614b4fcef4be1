package autofill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
	"github.com/MKhiriev/go-autofill-keeper/models"
)

func loginFields() *models.FieldsCollection {
	c := models.NewFieldsCollection()
	c.Add(models.AutofillField{ID: 2, Hints: []string{models.HintUsername}, SaveType: models.SaveTypeUsername, Focused: true})
	c.Add(models.AutofillField{ID: 3, Hints: []string{models.HintPassword}, SaveType: models.SaveTypePassword})
	return c
}

func record(name string, values map[string]string) models.FieldRecord {
	r := models.FieldRecord{DatasetName: name, Values: make(map[string]models.FieldValue)}
	for hint, v := range values {
		r.Values[hint] = models.TextValue(v)
	}
	return r
}

func TestPayloadBuilder_BuildFullResponse(t *testing.T) {
	b := NewPayloadBuilder(logger.Nop())
	fields := loginFields()

	dataset := models.FieldDataset{
		"work": record("work", map[string]string{models.HintUsername: "alice", models.HintPassword: "s3cret"}),
		"home": record("home", map[string]string{models.HintUsername: "bob"}),
		"card": record("card", map[string]string{models.HintCreditCardNumber: "4111111111111111"}),
	}

	payload, err := b.BuildFullResponse(fields, models.SaveTypePassword, dataset)
	require.NoError(t, err)

	assert.Equal(t, models.FullResponse, payload.Mode())
	assert.Equal(t, []models.Dataset{
		{
			Name:         "home",
			Presentation: "home",
			Values:       map[models.AutofillID]models.FieldValue{2: models.TextValue("bob")},
		},
		{
			Name:         "work",
			Presentation: "work",
			Values: map[models.AutofillID]models.FieldValue{
				2: models.TextValue("alice"),
				3: models.TextValue("s3cret"),
			},
		},
	}, payload.Datasets)
	require.NotNil(t, payload.SaveInfo)
	assert.Equal(t, models.SaveTypePassword, payload.SaveInfo.SaveTypes)
	assert.Equal(t, []models.AutofillID{2, 3}, payload.SaveInfo.RequiredIDs)
}

// TestPayloadBuilder_BuildFullResponse_SaveOnly verifies that a response
// with nothing to fill is still built when the form can be saved.
func TestPayloadBuilder_BuildFullResponse_SaveOnly(t *testing.T) {
	b := NewPayloadBuilder(logger.Nop())

	payload, err := b.BuildFullResponse(loginFields(), models.SaveTypePassword, models.FieldDataset{})
	require.NoError(t, err)

	assert.Empty(t, payload.Datasets)
	require.NotNil(t, payload.SaveInfo)
}

func TestPayloadBuilder_BuildFullResponse_NoSaveInfoForGeneric(t *testing.T) {
	b := NewPayloadBuilder(logger.Nop())

	payload, err := b.BuildFullResponse(loginFields(), models.SaveTypeGeneric, models.FieldDataset{
		"work": record("work", map[string]string{models.HintUsername: "alice"}),
	})
	require.NoError(t, err)

	assert.Len(t, payload.Datasets, 1)
	assert.Nil(t, payload.SaveInfo)
}

func TestPayloadBuilder_BuildFullResponse_Empty(t *testing.T) {
	b := NewPayloadBuilder(logger.Nop())

	_, err := b.BuildFullResponse(loginFields(), models.SaveTypeGeneric, nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = b.BuildFullResponse(nil, models.SaveTypePassword, nil)
	assert.ErrorIs(t, err, ErrNilFields)
}

func TestPayloadBuilder_BuildSingleDataset(t *testing.T) {
	b := NewPayloadBuilder(logger.Nop())

	payload, err := b.BuildSingleDataset(loginFields(),
		record("work", map[string]string{models.HintUsername: "alice", models.HintPassword: "s3cret"}))
	require.NoError(t, err)

	assert.Equal(t, models.SingleDataset, payload.Mode())
	assert.Equal(t, "work", payload.Dataset.Name)
	assert.Equal(t, "work", payload.Dataset.Presentation)
	assert.Equal(t, map[models.AutofillID]models.FieldValue{
		2: models.TextValue("alice"),
		3: models.TextValue("s3cret"),
	}, payload.Dataset.Values)
}

func TestPayloadBuilder_BuildSingleDataset_NothingToFill(t *testing.T) {
	b := NewPayloadBuilder(logger.Nop())

	_, err := b.BuildSingleDataset(loginFields(),
		record("card", map[string]string{models.HintCreditCardNumber: "4111111111111111"}))
	assert.ErrorIs(t, err, ErrNothingToFill)

	_, err = b.BuildSingleDataset(loginFields(), record("blank", map[string]string{models.HintUsername: ""}))
	assert.ErrorIs(t, err, ErrNothingToFill)

	_, err = b.BuildSingleDataset(nil, record("work", nil))
	assert.ErrorIs(t, err, ErrNilFields)
}
