package service

import "errors"

var (
	// ErrPartialFetch is returned by a reconciliation cycle that could not
	// retrieve the complete remote snapshot. The local mirror is left
	// untouched in that case.
	ErrPartialFetch = errors.New("partial snapshot fetch")

	// ErrLocalPersistence is returned when the computed change set could
	// not be committed to the local mirror.
	ErrLocalPersistence = errors.New("local persistence failure")
)
