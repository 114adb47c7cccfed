package temporal

import "errors"

var (
	// ErrEmptySeries indicates a series without epochs.
	ErrEmptySeries = errors.New("temporal: empty series")
	// ErrMissingGrid indicates an epoch without a grid.
	ErrMissingGrid = errors.New("temporal: epoch has no grid")
	// ErrDuplicateTime indicates two epochs with the same timestamp.
	ErrDuplicateTime = errors.New("temporal: duplicate epoch time")
	// ErrUnknownReference indicates a reference label matching no epoch.
	ErrUnknownReference = errors.New("temporal: unknown reference epoch")
	// ErrBoundaryPolicyRequired indicates Params.Boundary was not chosen.
	ErrBoundaryPolicyRequired = errors.New("temporal: boundary policy must be configured")
)

// EpochError names the epoch that made a series invalid.
type EpochError struct {
	Label string
	Err   error
}

func (e *EpochError) Error() string { return e.Err.Error() }

func (e *EpochError) Unwrap() error { return e.Err }
