// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the autofill-auth command.
//
// It seeds the stores from configuration, opens an authentication handle for
// a captured form structure, drives the password prompt and writes the single
// reply to the caller.
package client
