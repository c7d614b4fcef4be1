package tui

import "github.com/MKhiriev/go-autofill-keeper/internal/gate"

// submitResultMsg carries the outcome of one Submit call back to the model.
type submitResultMsg struct {
	step gate.Step
	err  error
}
