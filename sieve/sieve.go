package sieve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// Params configures Sieve.
type Params struct {
	MinPatchSize     int     // minimum mapping unit, in cells
	MaxComponentSize int     // cap on the component scan; ≥ MinPatchSize
	Conn             raster.Connectivity
	ModeRadius       float64 // focal majority radius
	Kernel           gridalg.Kernel
}

// DefaultParams returns MMU 8 with 8-connectivity and a 3×3 majority.
func DefaultParams() Params {
	return Params{
		MinPatchSize:     8,
		MaxComponentSize: 256,
		Conn:             raster.Conn8,
		ModeRadius:       1,
		Kernel:           gridalg.Square,
	}
}

// Validate checks every field against its range.
func (p Params) Validate() error {
	switch {
	case p.MinPatchSize < 1:
		return fmt.Errorf("%w: MinPatchSize=%d must be ≥ 1", ErrInvalidParams, p.MinPatchSize)
	case p.MaxComponentSize < p.MinPatchSize:
		return fmt.Errorf("%w: MaxComponentSize=%d below MinPatchSize=%d", ErrInvalidParams, p.MaxComponentSize, p.MinPatchSize)
	case p.ModeRadius < 0 || p.ModeRadius > 8 || math.IsNaN(p.ModeRadius):
		return fmt.Errorf("%w: ModeRadius=%v not in [0, 8]", ErrInvalidParams, p.ModeRadius)
	case p.Conn != raster.Conn4 && p.Conn != raster.Conn8:
		return fmt.Errorf("%w: Conn=%d", ErrInvalidParams, p.Conn)
	}
	return nil
}

// Halo returns the tile halo width that makes tiled runs exact.
func (p Params) Halo() int {
	return max(p.MinPatchSize, gridalg.Reach(p.ModeRadius))
}

// Result is the sieved grid plus change statistics.
type Result struct {
	Grid        *raster.Categorical
	Replaced    int // cells whose value changed
	SmallBefore int // classified components under MinPatchSize, input
	SmallAfter  int // same, output
}

// Sieve replaces undersized patches of g by their focal majority.
func Sieve(g *raster.Categorical, p Params) (Result, error) {
	out, err := Apply(g, p)
	if err != nil {
		return Result{}, err
	}
	return Summarize(g, out, p)
}

// Apply is Sieve without statistics, for use as a tile function.
func Apply(g *raster.Categorical, p Params) (*raster.Categorical, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	sizes, err := gridalg.ClassComponentSize(g, p.Conn, p.MaxComponentSize)
	if err != nil {
		return nil, err
	}
	mode, err := gridalg.FocalMode(g, p.ModeRadius, p.Kernel)
	if err != nil {
		return nil, err
	}
	out := g.Clone()
	for i, s := range sizes {
		if s < p.MinPatchSize || g.Cells[i] == taxonomy.Nodata {
			out.Cells[i] = mode.Cells[i]
		}
	}
	return out, nil
}

// Summarize compares a sieve input and output.
func Summarize(in, out *raster.Categorical, p Params) (Result, error) {
	diff, err := gridalg.Differ(in, out)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Grid:        out,
		Replaced:    diff.Count(),
		SmallBefore: CountSmallPatches(in, p.Conn, p.MinPatchSize),
		SmallAfter:  CountSmallPatches(out, p.Conn, p.MinPatchSize),
	}, nil
}

// CountSmallPatches returns the number of classified (non-nodata)
// components of g with fewer than m cells.
func CountSmallPatches(g *raster.Categorical, conn raster.Connectivity, m int) int {
	l := gridalg.ClassComponents(g, conn)
	first := make([]int, len(l.Sizes))
	for i := len(l.Label) - 1; i >= 0; i-- {
		first[l.Label[i]] = i
	}
	n := 0
	for id := 1; id < len(l.Sizes); id++ {
		if l.Sizes[id] < m && g.Cells[first[id]] != taxonomy.Nodata {
			n++
		}
	}
	return n
}
