package gridalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/landcover/raster"
)

// Beyond selects what DistanceTransform reports for cells farther than the
// search radius from every true cell.
type Beyond int

const (
	// ClampToBound reports the search radius itself.
	ClampToBound Beyond = iota
	// MarkInfinite reports +Inf.
	MarkInfinite
)

// DistanceTransform returns, for every cell, the Euclidean distance in
// pixels to the nearest true cell of m (0 on true cells). Distances greater
// than maxRadius are reported according to beyond. An all-false mask yields
// the beyond value everywhere.
//
// Algorithm (Felzenszwalb & Huttenlocher, 2012):
//  1. Column pass: squared 1-D distance to the nearest true cell per column,
//     +Inf where the column has none.
//  2. Row pass: lower envelope of parabolas f(q) + (p-q)² over the finite
//     column values gives the exact squared 2-D distance.
//  3. Square root, then apply the bound.
//
// Returns ErrBadRadius for a negative or non-finite maxRadius.
// Complexity: O(W×H) time, O(W×H) memory.
func DistanceTransform(m *raster.Mask, maxRadius float64, beyond Beyond) (*raster.Continuous, error) {
	if err := checkRadius(maxRadius); err != nil {
		return nil, fmt.Errorf("distance: %w", err)
	}
	w, h := m.Cols, m.Rows
	inf := math.Inf(1)
	d2 := make([]float64, w*h)

	// 1) per-column 1-D squared distance (two sweeps)
	for x := 0; x < w; x++ {
		last := -1
		for y := 0; y < h; y++ {
			if m.Cells[y*w+x] {
				last = y
			}
			if last < 0 {
				d2[y*w+x] = inf
			} else {
				dy := float64(y - last)
				d2[y*w+x] = dy * dy
			}
		}
		last = -1
		for y := h - 1; y >= 0; y-- {
			if m.Cells[y*w+x] {
				last = y
			}
			if last >= 0 {
				dy := float64(last - y)
				if dy*dy < d2[y*w+x] {
					d2[y*w+x] = dy * dy
				}
			}
		}
	}

	// 2) per-row lower envelope
	f := make([]float64, w)
	v := make([]int, w)
	z := make([]float64, w+1)
	for y := 0; y < h; y++ {
		row := d2[y*w : (y+1)*w]
		copy(f, row)
		envelope(f, row, v, z)
	}

	// 3) sqrt and bound
	out := &raster.Continuous{Geometry: m.Geometry, Cells: d2}
	bound := maxRadius
	if beyond == MarkInfinite {
		bound = inf
	}
	for i, s := range d2 {
		d := math.Sqrt(s)
		if d > maxRadius {
			d = bound
		}
		out.Cells[i] = d
	}
	return out, nil
}

// envelope writes into d the 1-D squared distance transform of f,
// considering only finite samples of f. v and z are scratch buffers of
// length ≥ len(f) and len(f)+1.
func envelope(f, d []float64, v []int, z []float64) {
	n := len(f)
	k := -1
	for q := 0; q < n; q++ {
		if math.IsInf(f[q], 1) {
			continue
		}
		if k < 0 {
			k = 0
			v[0] = q
			z[0] = math.Inf(-1)
			z[1] = math.Inf(1)
			continue
		}
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			if k < 0 {
				break
			}
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		if k == 0 {
			z[0] = math.Inf(-1)
		} else {
			z[k] = s
		}
		z[k+1] = math.Inf(1)
	}
	if k < 0 {
		for i := range d {
			d[i] = math.Inf(1)
		}
		return
	}
	j := 0
	for q := 0; q < n; q++ {
		for z[j+1] < float64(q) {
			j++
		}
		dq := float64(q - v[j])
		d[q] = dq*dq + f[v[j]]
	}
}

// intersect returns the abscissa where parabolas rooted at q and p meet.
func intersect(f []float64, q, p int) float64 {
	fq, fp := float64(q), float64(p)
	return ((f[q] + fq*fq) - (f[p] + fp*fp)) / (2*fq - 2*fp)
}

// WithinDistance returns the mask of cells whose distance to the nearest
// true cell of m is ≤ dist, searching no farther than maxRadius.
func WithinDistance(m *raster.Mask, dist, maxRadius float64) (*raster.Mask, error) {
	dt, err := DistanceTransform(m, maxRadius, MarkInfinite)
	if err != nil {
		return nil, err
	}
	out := raster.NewMask(m.Geometry)
	for i, d := range dt.Cells {
		out.Cells[i] = d <= dist
	}
	return out, nil
}
