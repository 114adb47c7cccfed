package gridalg

import "errors"

var (
	// ErrBadRadius indicates a negative or non-finite structuring radius.
	ErrBadRadius = errors.New("gridalg: radius must be finite and non-negative")
	// ErrBadMaxSize indicates a non-positive component size cap.
	ErrBadMaxSize = errors.New("gridalg: maxSize must be positive")
	// ErrRemapLength indicates from/to code lists of differing length.
	ErrRemapLength = errors.New("gridalg: from and to must have equal length")
	// ErrBadTiling indicates a non-positive tile size or negative halo.
	ErrBadTiling = errors.New("gridalg: invalid tiling")
)
