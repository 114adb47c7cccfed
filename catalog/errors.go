package catalog

import "errors"

var (
	// ErrNotFound indicates an identifier with no grid behind it.
	ErrNotFound = errors.New("catalog: grid not found")
	// ErrMalformed indicates a grid document that could not be decoded or
	// does not match the expected geometry.
	ErrMalformed = errors.New("catalog: malformed grid")
)
