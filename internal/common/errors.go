// Package common defines sentinel errors and small helpers shared by the
// GophGate packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// User store errors.
	ErrorAlreadyExists = errors.New("already exists")

	// Configuration errors.
	ErrorUnknownBackend = errors.New("unknown store backend")
)
