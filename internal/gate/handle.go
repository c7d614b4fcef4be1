package gate

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
	"github.com/MKhiriev/go-autofill-keeper/models"
)

// Handle is one authentication attempt. Its methods are safe for concurrent
// use; the reply is decided once and never changes afterwards.
type Handle struct {
	gate      *Gate
	id        string
	requestID uint64
	request   models.RequestDescriptor
	logger    *logger.Logger

	mu    sync.Mutex
	state State
	reply models.ReplyDescriptor
	done  chan struct{}
}

func newHandle(g *Gate, id string, requestID uint64, req models.RequestDescriptor, log *logger.Logger) *Handle {
	return &Handle{
		gate:      g,
		id:        id,
		requestID: requestID,
		request:   req,
		logger:    log,
		state:     AwaitingInput,
		reply:     models.FailureReply(),
		done:      make(chan struct{}),
	}
}

// ID returns the unique id of the handle.
func (h *Handle) ID() string { return h.id }

// RequestID returns the process-wide request id of a dataset-mode handle,
// or 0 for a full-response handle.
func (h *Handle) RequestID() uint64 { return h.requestID }

// State returns the current state.
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Done returns a channel that is closed once the handle is terminal.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Submit checks candidate against the stored credential.
//
// A mismatch returns Retry with [ErrIncorrectCredential] and the handle waits
// for the next candidate. A match builds the reply and returns Terminal; if
// building fails the reply is a failure. Once terminal, Submit returns
// Terminal with [ErrGateClosed] and changes nothing.
func (h *Handle) Submit(ctx context.Context, candidate models.Credential) (Step, error) {
	h.mu.Lock()
	switch {
	case h.state.Terminal():
		h.mu.Unlock()
		return Terminal, ErrGateClosed
	case h.state == Authenticating:
		h.mu.Unlock()
		return Retry, ErrAuthenticationInProgress
	}
	h.state = Authenticating
	h.mu.Unlock()

	stored, err := h.gate.credentials.Get(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "Handle.Submit").Msg("failed to read master credential")
		h.finish(models.FailureReply(), Cancelled)
		return Terminal, nil
	}

	if !Check(candidate, stored) {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.state.Terminal() {
			return Terminal, ErrGateClosed
		}
		h.state = AwaitingInput
		h.logger.Info().Str("func", "Handle.Submit").Msg("credential mismatch")
		return Retry, ErrIncorrectCredential
	}

	if h.State().Terminal() {
		return Terminal, ErrGateClosed
	}

	reply, err := h.buildReply(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "Handle.Submit").Msg("failed to build reply")
		h.finish(models.FailureReply(), Cancelled)
		return Terminal, nil
	}

	if h.finish(reply, Succeeded) {
		h.logger.Info().Str("func", "Handle.Submit").Msg("authenticated")
	}
	return Terminal, nil
}

// Cancel ends the handle with a failure reply. It is a no-op once the handle
// is terminal. A cancel that arrives while a candidate is being checked wins:
// the reply being built is dropped.
func (h *Handle) Cancel(ctx context.Context) Step {
	if h.finish(models.FailureReply(), Cancelled) {
		h.logger.Info().Str("func", "Handle.Cancel").Msg("cancelled")
	}
	return Terminal
}

// Result blocks until the handle is terminal and returns its reply. If ctx
// ends first, Result returns a failure reply and the context error; the
// handle itself is left untouched. A terminal handle always returns its reply.
func (h *Handle) Result(ctx context.Context) (models.ReplyDescriptor, error) {
	select {
	case <-h.done:
		return h.finalReply(), nil
	default:
	}

	select {
	case <-h.done:
		return h.finalReply(), nil
	case <-ctx.Done():
		return models.FailureReply(), ctx.Err()
	}
}

func (h *Handle) finalReply() models.ReplyDescriptor {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.reply
}

// finish moves the handle to state with reply unless it is already terminal.
// It reports whether this call decided the reply.
func (h *Handle) finish(reply models.ReplyDescriptor, state State) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state.Terminal() {
		return false
	}

	h.state = state
	h.reply = reply
	close(h.done)
	return true
}

// buildReply runs the success path for the request captured at Open.
func (h *Handle) buildReply(ctx context.Context) (models.ReplyDescriptor, error) {
	fields, err := h.gate.parser.Parse(h.request.Structure)
	if err != nil {
		return models.ReplyDescriptor{}, fmt.Errorf("parse structure: %w", err)
	}

	dataset, err := h.gate.fieldData.Lookup(ctx, fields.FocusedHints(), fields.AllHints())
	if err != nil {
		return models.ReplyDescriptor{}, fmt.Errorf("lookup field data: %w", err)
	}

	var payload models.Payload
	switch h.request.Mode {
	case models.FullResponse:
		full, err := h.gate.builder.BuildFullResponse(fields, fields.SaveType(), dataset)
		if err != nil {
			return models.ReplyDescriptor{}, fmt.Errorf("build full response: %w", err)
		}
		payload = full
	case models.SingleDataset:
		name := *h.request.DatasetName
		record, ok := dataset[name]
		if !ok {
			return models.ReplyDescriptor{}, fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
		}
		single, err := h.gate.builder.BuildSingleDataset(fields, record)
		if err != nil {
			return models.ReplyDescriptor{}, fmt.Errorf("build dataset %q: %w", name, err)
		}
		payload = single
	}

	return models.NewSuccessReply(payload)
}
