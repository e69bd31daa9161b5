package flowdoc

import "errors"

var (
	// ErrLossy is returned when a rewritten document does not hold the
	// same data as its input.
	ErrLossy = errors.New("document changed")
	ErrPath  = errors.New("bad document path")
	ErrPatch = errors.New("bad patch")
)
