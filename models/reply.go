// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Outcome is the terminal result of an authentication gate.
type Outcome int

const (
	// Failure means no payload is handed back: the user cancelled, the
	// request was malformed, or a collaborator failed.
	Failure Outcome = iota

	// Success means the credential matched and the payload was built.
	Success
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// ReplyDescriptor is the single result handed back to the caller of a gate.
// A payload is present if and only if the outcome is [Success]; the type has
// no exported fields so the invariant cannot be broken after construction.
type ReplyDescriptor struct {
	outcome Outcome
	payload Payload
}

// NewSuccessReply returns a successful reply carrying payload.
func NewSuccessReply(payload Payload) (ReplyDescriptor, error) {
	if payload == nil {
		return ReplyDescriptor{}, ErrPayloadRequired
	}
	return ReplyDescriptor{outcome: Success, payload: payload}, nil
}

// FailureReply returns the reply used for every unsuccessful outcome.
func FailureReply() ReplyDescriptor {
	return ReplyDescriptor{outcome: Failure}
}

// Outcome returns the outcome of the reply.
func (r ReplyDescriptor) Outcome() Outcome { return r.outcome }

// Payload returns the payload, or nil for a failed reply.
func (r ReplyDescriptor) Payload() Payload { return r.payload }

// OK reports whether the reply is a success.
func (r ReplyDescriptor) OK() bool { return r.outcome == Success }

type replyJSON struct {
	Outcome string  `json:"outcome"`
	Mode    string  `json:"mode,omitempty"`
	Payload Payload `json:"payload,omitempty"`
}

// MarshalJSON renders the reply for the caller boundary.
func (r ReplyDescriptor) MarshalJSON() ([]byte, error) {
	out := replyJSON{Outcome: r.outcome.String()}
	if r.payload != nil {
		out.Mode = r.payload.Mode().String()
		out.Payload = r.payload
	}
	return json.Marshal(out)
}
