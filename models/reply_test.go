package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSuccessReply_RequiresPayload verifies that a success reply can never
// be built without a payload.
func TestNewSuccessReply_RequiresPayload(t *testing.T) {
	_, err := NewSuccessReply(nil)
	assert.ErrorIs(t, err, ErrPayloadRequired)
}

func TestNewSuccessReply(t *testing.T) {
	payload := SingleDatasetPayload{Dataset: Dataset{Name: "work-login"}}

	reply, err := NewSuccessReply(payload)
	require.NoError(t, err)

	assert.True(t, reply.OK())
	assert.Equal(t, Success, reply.Outcome())
	assert.Equal(t, payload, reply.Payload())
}

// TestFailureReply_HasNoPayload verifies the failure side of the
// payload-iff-success invariant.
func TestFailureReply_HasNoPayload(t *testing.T) {
	reply := FailureReply()

	assert.False(t, reply.OK())
	assert.Equal(t, Failure, reply.Outcome())
	assert.Nil(t, reply.Payload())
}

func TestReplyDescriptor_MarshalJSON(t *testing.T) {
	t.Run("failure", func(t *testing.T) {
		data, err := json.Marshal(FailureReply())
		require.NoError(t, err)
		assert.JSONEq(t, `{"outcome":"failure"}`, string(data))
	})

	t.Run("single dataset", func(t *testing.T) {
		reply, err := NewSuccessReply(SingleDatasetPayload{Dataset: Dataset{
			Name:         "work-login",
			Presentation: "work-login",
			Values:       map[AutofillID]FieldValue{7: TextValue("alice")},
		}})
		require.NoError(t, err)

		data, err := json.Marshal(reply)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"outcome": "success",
			"mode": "single_dataset",
			"payload": {"dataset": {"name": "work-login", "presentation": "work-login", "values": {"7": {"text": "alice"}}}}
		}`, string(data))
	})
}
