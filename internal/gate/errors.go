package gate

import "errors"

var (
	// ErrIncorrectCredential is the only signal given for a mismatch. It
	// carries no attempt count and nothing about the stored credential.
	ErrIncorrectCredential = errors.New("password incorrect")

	// ErrGateClosed is returned by Submit once the handle reached a
	// terminal state.
	ErrGateClosed = errors.New("gate is closed")

	// ErrAuthenticationInProgress is returned by Submit while another
	// candidate is being checked on the same handle.
	ErrAuthenticationInProgress = errors.New("authentication in progress")

	// ErrDatasetNotFound is logged when the requested dataset is absent
	// from the lookup result.
	ErrDatasetNotFound = errors.New("dataset not found")
)
