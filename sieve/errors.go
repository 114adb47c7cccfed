package sieve

import "errors"

// ErrInvalidParams indicates a parameter outside its documented range.
var ErrInvalidParams = errors.New("sieve: invalid parameters")
