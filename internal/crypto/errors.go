package crypto

import "errors"

// ErrCiphertextTooShort is returned by the sealed codec when a stored blob is
// shorter than the GCM nonce.
var ErrCiphertextTooShort = errors.New("ciphertext too short")
