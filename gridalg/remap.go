package gridalg

import (
	"fmt"

	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// Remap returns a grid where every cell whose code appears in from is
// replaced by the matching entry of to; all other cells (nodata included)
// get def. Later duplicates in from override earlier ones.
// Returns ErrRemapLength if len(from) != len(to).
// Complexity: O(W×H + len(from)).
func Remap(g *raster.Categorical, from, to []taxonomy.Code, def taxonomy.Code) (*raster.Categorical, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrRemapLength, len(from), len(to))
	}
	var lut [256]taxonomy.Code
	var set [256]bool
	for i, f := range from {
		lut[f] = to[i]
		set[f] = true
	}
	out := &raster.Categorical{Geometry: g.Geometry, Cells: make([]taxonomy.Code, len(g.Cells))}
	for i, c := range g.Cells {
		if set[c] {
			out.Cells[i] = lut[c]
		} else {
			out.Cells[i] = def
		}
	}
	return out, nil
}

// SetMask returns the mask of cells whose code is in s. Nodata is never in s.
func SetMask(g *raster.Categorical, s taxonomy.Set) *raster.Mask {
	out := raster.NewMask(g.Geometry)
	for i, c := range g.Cells {
		out.Cells[i] = s.Has(c)
	}
	return out
}

// ClassMask returns the mask of cells equal to c.
func ClassMask(g *raster.Categorical, c taxonomy.Code) *raster.Mask {
	out := raster.NewMask(g.Geometry)
	for i, v := range g.Cells {
		out.Cells[i] = v == c
	}
	return out
}

// NodataMask returns the mask of nodata cells.
func NodataMask(g *raster.Categorical) *raster.Mask {
	return ClassMask(g, taxonomy.Nodata)
}

// Differ returns the mask of cells where a and b disagree.
// Returns raster.ErrExtentMismatch for misaligned operands.
func Differ(a, b *raster.Categorical) (*raster.Mask, error) {
	if err := raster.CheckAligned(a, b); err != nil {
		return nil, err
	}
	out := raster.NewMask(a.Geometry)
	for i, v := range a.Cells {
		out.Cells[i] = v != b.Cells[i]
	}
	return out, nil
}

// Pairs returns the mask of cells where pred(a[i], b[i]) holds.
// Returns raster.ErrExtentMismatch for misaligned operands.
func Pairs(a, b *raster.Categorical, pred func(x, y taxonomy.Code) bool) (*raster.Mask, error) {
	if err := raster.CheckAligned(a, b); err != nil {
		return nil, err
	}
	out := raster.NewMask(a.Geometry)
	for i, v := range a.Cells {
		out.Cells[i] = pred(v, b.Cells[i])
	}
	return out, nil
}

// Where returns a copy of base with cells under mask taken from repl.
// Returns raster.ErrExtentMismatch for misaligned operands.
func Where(base *raster.Categorical, mask *raster.Mask, repl *raster.Categorical) (*raster.Categorical, error) {
	if err := raster.CheckAligned(base, mask, repl); err != nil {
		return nil, err
	}
	out := base.Clone()
	for i, m := range mask.Cells {
		if m {
			out.Cells[i] = repl.Cells[i]
		}
	}
	return out, nil
}

// WhereConst returns a copy of base with cells under mask set to c, and the
// number of cells whose value actually changed.
// Returns raster.ErrExtentMismatch for misaligned operands.
func WhereConst(base *raster.Categorical, mask *raster.Mask, c taxonomy.Code) (*raster.Categorical, int, error) {
	if err := raster.CheckAligned(base, mask); err != nil {
		return nil, 0, err
	}
	out := base.Clone()
	changed := 0
	for i, m := range mask.Cells {
		if m && out.Cells[i] != c {
			out.Cells[i] = c
			changed++
		}
	}
	return out, changed, nil
}

// Overlay returns primary's value where it is not nodata, else secondary's.
// Returns raster.ErrExtentMismatch for misaligned operands.
func Overlay(primary, secondary *raster.Categorical) (*raster.Categorical, error) {
	if err := raster.CheckAligned(primary, secondary); err != nil {
		return nil, err
	}
	out := primary.Clone()
	for i, c := range out.Cells {
		if c == taxonomy.Nodata {
			out.Cells[i] = secondary.Cells[i]
		}
	}
	return out, nil
}
