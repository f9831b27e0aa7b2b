package random

import "errors"

// Sentinel errors returned by source constructors.
var (
	// ErrEmptySeed is returned when NewSeeded receives a nil or zero-length seed.
	ErrEmptySeed = errors.New("random: seed must not be empty")
)
