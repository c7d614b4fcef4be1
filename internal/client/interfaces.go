// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-autofill-keeper/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the configured work and blocks until it is done.
	Run(ctx context.Context) error
}

// Prompter collects password candidates for an open handle until the handle
// is terminal.
type Prompter interface {
	Run(ctx context.Context, auth tui.Authenticator, title string) error
}
