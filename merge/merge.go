package merge

import (
	"fmt"

	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// Result is the merged grid together with its residual coverage gaps.
type Result struct {
	Grid     *raster.Categorical
	Gaps     *raster.Mask // cells nodata in both sources
	GapCount int
	Filled   int // primary gaps covered by the secondary
}

// Warning returns an error wrapping ErrCoverageGap when the merge left
// nodata behind, or nil.
func (r Result) Warning() error {
	if r.GapCount == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d cells", ErrCoverageGap, r.GapCount)
}

// Merge overlays primary on secondary.
// Returns raster.ErrExtentMismatch for misaligned inputs.
func Merge(primary, secondary *raster.Categorical) (Result, error) {
	out, err := gridalg.Overlay(primary, secondary)
	if err != nil {
		return Result{}, fmt.Errorf("merge: %w", err)
	}
	res := Result{Grid: out, Gaps: raster.NewMask(out.Geometry)}
	for i, c := range out.Cells {
		switch {
		case c == taxonomy.Nodata:
			res.Gaps.Cells[i] = true
			res.GapCount++
		case primary.Cells[i] == taxonomy.Nodata:
			res.Filled++
		}
	}
	return res, nil
}
