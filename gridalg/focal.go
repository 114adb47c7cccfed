package gridalg

import (
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// FocalMode returns, for every cell, the most frequent class among the
// in-grid, non-nodata cells of its window (kernel k, radius r). Ties go to
// the smallest class code; a window holding only nodata yields nodata.
// Returns ErrBadRadius for negative or non-finite r.
// Complexity: O(W×H×K), K = kernel cells.
func FocalMode(g *raster.Categorical, r float64, k Kernel) (*raster.Categorical, error) {
	if err := checkRadius(r); err != nil {
		return nil, err
	}
	offs := offsets(k, r)
	w, h := g.Cols, g.Rows
	out := &raster.Categorical{Geometry: g.Geometry, Cells: make([]taxonomy.Code, len(g.Cells))}

	var counts [256]int
	seen := make([]taxonomy.Code, 0, len(offs))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			seen = seen[:0]
			for _, d := range offs {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				c := g.Cells[ny*w+nx]
				if c == taxonomy.Nodata {
					continue
				}
				if counts[c] == 0 {
					seen = append(seen, c)
				}
				counts[c]++
			}
			best, bestN := taxonomy.Nodata, 0
			for _, c := range seen {
				n := counts[c]
				if n > bestN || (n == bestN && c < best) {
					best, bestN = c, n
				}
				counts[c] = 0
			}
			out.Cells[y*w+x] = best
		}
	}
	return out, nil
}
