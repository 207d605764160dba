package domain

import "errors"

var (
	// ErrNotFound is returned when a stage index cannot be resolved: it is not a
	// base-10 integer or lies outside [0, N).
	ErrNotFound = errors.New("stage not found")
	// ErrEmptySequence is returned when a slide sequence would have no slides.
	ErrEmptySequence = errors.New("slide sequence is empty")
)
