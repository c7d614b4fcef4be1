// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AutofillID identifies a single input view inside a [Structure].
type AutofillID int

// ViewNode is one node of the captured view hierarchy.
type ViewNode struct {
	// ID is the autofill identifier of the view.
	ID AutofillID `json:"id"`

	// Hints are the autofill hints declared by the view (e.g. "username").
	Hints []string `json:"hints,omitempty"`

	// Focused reports whether the view held input focus when the structure
	// was captured.
	Focused bool `json:"focused,omitempty"`

	// Children are the nested views.
	Children []ViewNode `json:"children,omitempty"`
}

// Structure is the captured form the autofill request was raised for. The
// gate never inspects it; only the structure parser does.
type Structure struct {
	// Package is the name of the application that owns the form.
	Package string `json:"package"`

	// Windows are the root nodes of every window on screen.
	Windows []ViewNode `json:"windows"`
}
