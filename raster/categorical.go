package raster

import (
	"fmt"

	"github.com/katalvlaran/landcover/taxonomy"
)

// Categorical is a grid of class codes. Cells is row-major and must be
// treated as read-only once the grid is handed to another stage.
type Categorical struct {
	Geometry
	Cells []taxonomy.Code
}

// NewCategorical allocates a grid over geom with every cell set to fill.
// Returns ErrBadGeometry if geom is invalid.
// Complexity: O(W×H).
func NewCategorical(geom Geometry, fill taxonomy.Code) (*Categorical, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	cells := make([]taxonomy.Code, geom.Len())
	if fill != 0 {
		for i := range cells {
			cells[i] = fill
		}
	}
	return &Categorical{Geometry: geom, Cells: cells}, nil
}

// WrapCategorical adopts cells (no copy) as a grid over geom.
// Returns ErrBadGeometry or ErrCellCount.
func WrapCategorical(geom Geometry, cells []taxonomy.Code) (*Categorical, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if len(cells) != geom.Len() {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrCellCount, len(cells), geom.Cols, geom.Rows)
	}
	return &Categorical{Geometry: geom, Cells: cells}, nil
}

// CategoricalFromRows deep-copies a non-empty, rectangular 2D slice
// (rows[row][col]) into a grid with a unit-pixel geometry.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func CategoricalFromRows(rows [][]taxonomy.Code) (*Categorical, error) {
	h, w, err := shape(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}
	g := &Categorical{Geometry: PixelGeometry(w, h), Cells: make([]taxonomy.Code, w*h)}
	for r := 0; r < h; r++ {
		copy(g.Cells[r*w:(r+1)*w], rows[r])
	}
	return g, nil
}

// shape validates a 2D slice layout given its row count and row-length func.
func shape(n int, rowLen func(int) int) (h, w int, err error) {
	if n == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	w = rowLen(0)
	for i := 1; i < n; i++ {
		if rowLen(i) != w {
			return 0, 0, ErrNonRectangular
		}
	}
	return n, w, nil
}

// Geom returns the grid geometry.
func (g *Categorical) Geom() Geometry { return g.Geometry }

// At returns the code at (col,row). The caller guarantees bounds.
func (g *Categorical) At(col, row int) taxonomy.Code {
	return g.Cells[row*g.Cols+col]
}

// Set writes the code at (col,row). Only for grids the caller owns.
func (g *Categorical) Set(col, row int, c taxonomy.Code) {
	g.Cells[row*g.Cols+col] = c
}

// Clone returns a deep copy.
func (g *Categorical) Clone() *Categorical {
	cells := make([]taxonomy.Code, len(g.Cells))
	copy(cells, g.Cells)
	return &Categorical{Geometry: g.Geometry, Cells: cells}
}

// Equal reports whether g and o share geometry and every cell.
func (g *Categorical) Equal(o *Categorical) bool {
	if g == nil || o == nil {
		return g == o
	}
	if !g.Geometry.Equal(o.Geometry) {
		return false
	}
	for i, c := range g.Cells {
		if o.Cells[i] != c {
			return false
		}
	}
	return true
}

// CountNodata returns the number of nodata cells.
func (g *Categorical) CountNodata() int {
	n := 0
	for _, c := range g.Cells {
		if c == taxonomy.Nodata {
			n++
		}
	}
	return n
}

// Count returns the number of cells holding c.
func (g *Categorical) Count(c taxonomy.Code) int {
	n := 0
	for _, v := range g.Cells {
		if v == c {
			n++
		}
	}
	return n
}

// ToRows returns the grid as a freshly allocated [][]Code (rows[row][col]).
func (g *Categorical) ToRows() [][]taxonomy.Code {
	out := make([][]taxonomy.Code, g.Rows)
	for r := range out {
		out[r] = make([]taxonomy.Code, g.Cols)
		copy(out[r], g.Cells[r*g.Cols:(r+1)*g.Cols])
	}
	return out
}

// Window returns a copy of the w×h sub-grid whose top-left cell is (col,row).
// Returns ErrOutOfRange if the window leaves the grid.
func (g *Categorical) Window(col, row, w, h int) (*Categorical, error) {
	geom, err := g.Geometry.Sub(col, row, w, h)
	if err != nil {
		return nil, err
	}
	out := &Categorical{Geometry: geom, Cells: make([]taxonomy.Code, w*h)}
	for r := 0; r < h; r++ {
		src := (row+r)*g.Cols + col
		copy(out.Cells[r*w:(r+1)*w], g.Cells[src:src+w])
	}
	return out, nil
}

// Paste copies the w×h block of src starting at (srcCol,srcRow) into g at
// (col,row). Only for grids the caller owns.
func (g *Categorical) Paste(src *Categorical, srcCol, srcRow, col, row, w, h int) error {
	if !src.InBounds(srcCol, srcRow) || !src.InBounds(srcCol+w-1, srcRow+h-1) ||
		!g.InBounds(col, row) || !g.InBounds(col+w-1, row+h-1) {
		return fmt.Errorf("%w: paste %dx%d", ErrOutOfRange, w, h)
	}
	for r := 0; r < h; r++ {
		s := (srcRow+r)*src.Cols + srcCol
		d := (row+r)*g.Cols + col
		copy(g.Cells[d:d+w], src.Cells[s:s+w])
	}
	return nil
}
