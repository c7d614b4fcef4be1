// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate guards stored form-fill data behind the master credential.
//
// A caller opens a [Handle] for one request, feeds it the candidates typed by
// the user and finally collects exactly one [models.ReplyDescriptor] from
// [Handle.Result]. The payload is rebuilt only after the credential matched;
// a cancelled or failed handle replies with no payload at all.
package gate

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
	"github.com/MKhiriev/go-autofill-keeper/models"
)

// requestCounter hands out request ids to dataset-mode opens. It is shared by
// every Gate in the process and never reset.
var requestCounter atomic.Uint64

// NextRequestID returns the next process-wide request id. The first call
// returns 1.
func NextRequestID() uint64 {
	return requestCounter.Add(1)
}

// Gate opens authentication handles. It holds no per-request state; every
// Handle is independent.
type Gate struct {
	credentials CredentialStore
	parser      StructureParser
	fieldData   FieldDataSource
	builder     PayloadBuilder
	logger      *logger.Logger
}

// NewGate returns a Gate wired to its collaborators.
func NewGate(credentials CredentialStore, parser StructureParser, fieldData FieldDataSource, builder PayloadBuilder, log *logger.Logger) *Gate {
	return &Gate{
		credentials: credentials,
		parser:      parser,
		fieldData:   fieldData,
		builder:     builder,
		logger:      log,
	}
}

// Open starts authentication for req. The request is copied, so later
// changes by the caller are not seen by the handle.
//
// An invalid request yields a handle that is already Cancelled with a
// failure reply; no collaborator is called and no prompt should be shown.
func (g *Gate) Open(ctx context.Context, req models.RequestDescriptor) *Handle {
	id := newHandleID()

	if err := req.Validate(); err != nil {
		g.logger.Warn().Err(err).
			Str("func", "Gate.Open").
			Str("handle_id", id).
			Msg("rejecting invalid request")

		h := newHandle(g, id, 0, req.Clone(), g.logger)
		h.finish(models.FailureReply(), Cancelled)
		return h
	}

	var requestID uint64
	if req.Mode == models.SingleDataset {
		requestID = NextRequestID()
	}

	log := &logger.Logger{Logger: g.logger.With().
		Str("handle_id", id).
		Uint64("request_id", requestID).
		Str("mode", req.Mode.String()).
		Logger()}
	log.Debug().Str("func", "Gate.Open").Msg("awaiting credential")

	return newHandle(g, id, requestID, req.Clone(), log)
}

// newHandleID returns a time-ordered id so handles sort by creation in logs.
func newHandleID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
