package domain

import "errors"

// Domain errors represent error conditions in the oledanim domain.
// These errors can be checked with errors.Is.
var (
	// ErrNoFrames is returned when an animation is built from an empty frame list.
	ErrNoFrames = errors.New("oledanim: animation has no frames")

	// ErrAddressNotFound is returned when the GameSense address cannot be discovered.
	ErrAddressNotFound = errors.New("oledanim: gamesense address not found")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("oledanim: invalid configuration")
)
