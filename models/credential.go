package models

// Credential is the master secret guarding stored form data. Values are
// compared byte for byte; no normalization is applied.
type Credential string
