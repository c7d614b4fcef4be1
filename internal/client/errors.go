package client

import "errors"

var (
	// ErrNoResult is returned by [App.Run] when the reply carries no payload.
	ErrNoResult = errors.New("no result: authentication cancelled or failed")

	// ErrNothingToCopy is returned when the unlocked dataset has no password
	// field to copy.
	ErrNothingToCopy = errors.New("dataset has no password value to copy")
)
