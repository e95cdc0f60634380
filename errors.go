package scribe

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request or configuration failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNoResult indicates an export was attempted without generated text.
	ErrNoResult = errors.New("no generated text")
)
