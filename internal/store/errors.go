package store

import "errors"

// Sentinel errors returned by the key=value file store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyPath is returned when a load or write is attempted without a
	// file path.
	ErrEmptyPath = errors.New("config file path is empty")

	// ErrInvalidKey is returned by WriteKV when a key is empty or contains
	// '=' or a line break, which would not survive a round trip.
	ErrInvalidKey = errors.New("invalid config key")
)
