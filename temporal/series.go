package temporal

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/landcover/raster"
)

// Epoch is one classified map of the series.
type Epoch struct {
	Time  time.Time
	Label string
	Grid  *raster.Categorical
}

// Series is a validated, time-ordered epoch list with a protected
// reference epoch.
type Series struct {
	Epochs    []Epoch
	Reference int // index into Epochs
}

// NewSeries sorts epochs by time, checks that they are aligned and
// distinct in time, and locates the epoch labeled referenceLabel. An empty
// referenceLabel selects the most recent epoch. The input slice is not
// modified.
func NewSeries(epochs []Epoch, referenceLabel string) (*Series, error) {
	if len(epochs) == 0 {
		return nil, ErrEmptySeries
	}
	sorted := make([]Epoch, len(epochs))
	copy(sorted, epochs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	grids := make([]raster.Gridder, len(sorted))
	ref := -1
	for i, e := range sorted {
		if e.Grid == nil {
			return nil, &EpochError{Label: e.Label, Err: fmt.Errorf("%w: %q", ErrMissingGrid, e.Label)}
		}
		if i > 0 && e.Time.Equal(sorted[i-1].Time) {
			return nil, &EpochError{
				Label: e.Label,
				Err:   fmt.Errorf("%w: %q and %q at %s", ErrDuplicateTime, sorted[i-1].Label, e.Label, e.Time.Format(time.RFC3339)),
			}
		}
		if e.Label == referenceLabel {
			ref = i
		}
		grids[i] = e.Grid
	}
	if referenceLabel == "" {
		ref = len(sorted) - 1
	}
	if ref < 0 {
		return nil, &EpochError{Label: referenceLabel, Err: fmt.Errorf("%w: %q", ErrUnknownReference, referenceLabel)}
	}
	if err := raster.CheckAligned(grids...); err != nil {
		return nil, fmt.Errorf("temporal: %w", err)
	}
	return &Series{Epochs: sorted, Reference: ref}, nil
}

// Len returns the number of epochs.
func (s *Series) Len() int { return len(s.Epochs) }

// Labels returns the epoch labels in time order.
func (s *Series) Labels() []string {
	out := make([]string, len(s.Epochs))
	for i, e := range s.Epochs {
		out[i] = e.Label
	}
	return out
}
