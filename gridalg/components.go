package gridalg

import (
	"fmt"

	"github.com/katalvlaran/landcover/raster"
)

// Labels is the result of component labeling: Label[i] is the 1-based
// component id of cell i (0 for background) and Sizes[id] its cell count
// (Sizes[0] is unused).
type Labels struct {
	Label []int32
	Sizes []int
}

// Count returns the number of components.
func (l Labels) Count() int { return len(l.Sizes) - 1 }

// Components finds the contiguous regions of true cells of m according to
// conn. Components are numbered in row-major order of their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and the BFS queue.
func Components(m *raster.Mask, conn raster.Connectivity) Labels {
	return label(m.Geometry, conn, func(i int) bool { return m.Cells[i] }, func(i, j int) bool { return true })
}

// ClassComponents labels maximal sets of same-valued cells of g (nodata
// cells form components too).
func ClassComponents(g *raster.Categorical, conn raster.Connectivity) Labels {
	return label(g.Geometry, conn, func(int) bool { return true }, func(i, j int) bool { return g.Cells[i] == g.Cells[j] })
}

// label runs a BFS flood fill over cells accepted by in, joining neighbors
// for which same(u,v) holds.
func label(geom raster.Geometry, conn raster.Connectivity, in func(int) bool, same func(int, int) bool) Labels {
	total := geom.Len()
	lab := make([]int32, total)
	sizes := []int{0}
	offs := conn.Offsets()
	queue := make([]int, 0, 64)

	for i0 := 0; i0 < total; i0++ {
		if lab[i0] != 0 || !in(i0) {
			continue
		}
		id := int32(len(sizes))
		lab[i0] = id
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := geom.Coordinate(u)
			for _, d := range offs {
				vx, vy := ux+d[0], uy+d[1]
				if !geom.InBounds(vx, vy) {
					continue
				}
				v := geom.Index(vx, vy)
				if lab[v] == 0 && in(v) && same(u, v) {
					lab[v] = id
					queue = append(queue, v)
				}
			}
		}
		sizes = append(sizes, len(queue))
	}
	return Labels{Label: lab, Sizes: sizes}
}

// ComponentSize returns, per cell, the size of its component of true cells
// capped at maxSize; false cells report 0. Callers must only compare the
// result against thresholds ≤ maxSize.
// Returns ErrBadMaxSize if maxSize ≤ 0.
func ComponentSize(m *raster.Mask, conn raster.Connectivity, maxSize int) ([]int, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxSize, maxSize)
	}
	return capped(Components(m, conn), maxSize), nil
}

// ClassComponentSize returns, per cell, the capped size of the same-class
// component the cell belongs to.
// Returns ErrBadMaxSize if maxSize ≤ 0.
func ClassComponentSize(g *raster.Categorical, conn raster.Connectivity, maxSize int) ([]int, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxSize, maxSize)
	}
	return capped(ClassComponents(g, conn), maxSize), nil
}

func capped(l Labels, maxSize int) []int {
	out := make([]int, len(l.Label))
	for i, id := range l.Label {
		if id == 0 {
			continue
		}
		out[i] = min(l.Sizes[id], maxSize)
	}
	return out
}

// SizeAtLeast returns the mask of true cells of m whose component has at
// least minSize cells (capped counting at maxSize; minSize must be ≤ maxSize).
func SizeAtLeast(m *raster.Mask, conn raster.Connectivity, minSize, maxSize int) (*raster.Mask, error) {
	if minSize > maxSize {
		return nil, fmt.Errorf("%w: threshold %d exceeds cap %d", ErrBadMaxSize, minSize, maxSize)
	}
	sizes, err := ComponentSize(m, conn, maxSize)
	if err != nil {
		return nil, err
	}
	out := raster.NewMask(m.Geometry)
	for i, s := range sizes {
		out.Cells[i] = m.Cells[i] && s >= minSize
	}
	return out, nil
}
