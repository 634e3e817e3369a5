package model

import "errors"

// Error taxonomy for the optimizer. Failures are never transient: every error
// is either a data problem or a parameter problem, so nothing is retried.
var (
	// ErrInvalidGeometry marks an input polygon that is empty, has zero
	// area, or cannot be repaired into a simple ring set.
	ErrInvalidGeometry = errors.New("invalid field geometry")

	// ErrInvalidParameter marks a non-positive machine width or an angle
	// step outside (0, 180).
	ErrInvalidParameter = errors.New("invalid scan parameter")

	// ErrNoCoverage is reported when the scan finds no angle producing any
	// pass, which signals a degenerate input rather than a true optimum.
	ErrNoCoverage = errors.New("no sweep coverage found")
)
