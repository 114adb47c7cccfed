package catalog

import (
	"fmt"

	"github.com/katalvlaran/landcover/raster"
)

// Status classifies a lookup outcome.
type Status int

const (
	NotFound Status = iota
	Found
	Malformed
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Malformed:
		return "malformed"
	}
	return "not-found"
}

// Lookup is the outcome of resolving a categorical grid.
type Lookup struct {
	ID     string
	Status Status
	Grid   *raster.Categorical // set when Found
	Err    error               // set when Malformed
}

// LookupContinuous is the outcome of resolving a continuous grid.
type LookupContinuous struct {
	ID     string
	Status Status
	Grid   *raster.Continuous
	Err    error
}

// Catalog resolves grid identifiers.
type Catalog interface {
	Categorical(id string) Lookup
	Continuous(id string) LookupContinuous
}

// Require converts a lookup into a grid or an error wrapping ErrNotFound
// or ErrMalformed.
func Require(l Lookup) (*raster.Categorical, error) {
	switch l.Status {
	case Found:
		return l.Grid, nil
	case Malformed:
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformed, l.ID, l.Err)
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, l.ID)
}

// RequireContinuous is Require for continuous lookups.
func RequireContinuous(l LookupContinuous) (*raster.Continuous, error) {
	switch l.Status {
	case Found:
		return l.Grid, nil
	case Malformed:
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformed, l.ID, l.Err)
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, l.ID)
}

// aligned checks g against an optional expected geometry.
func aligned(expect *raster.Geometry, g raster.Gridder) error {
	if expect == nil {
		return nil
	}
	ref := raster.Continuous{Geometry: *expect}
	return raster.CheckAligned(&ref, g)
}
