package raster

import "fmt"

// Continuous is a grid of real values consumed read-only by correctors.
type Continuous struct {
	Geometry
	Cells []float64
}

// NewContinuous allocates a grid over geom with every cell set to fill.
func NewContinuous(geom Geometry, fill float64) (*Continuous, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	cells := make([]float64, geom.Len())
	for i := range cells {
		cells[i] = fill
	}
	return &Continuous{Geometry: geom, Cells: cells}, nil
}

// WrapContinuous adopts cells (no copy) as a grid over geom.
func WrapContinuous(geom Geometry, cells []float64) (*Continuous, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if len(cells) != geom.Len() {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrCellCount, len(cells), geom.Cols, geom.Rows)
	}
	return &Continuous{Geometry: geom, Cells: cells}, nil
}

// ContinuousFromRows deep-copies a rectangular [][]float64 with a
// unit-pixel geometry. Returns ErrEmptyGrid or ErrNonRectangular.
func ContinuousFromRows(rows [][]float64) (*Continuous, error) {
	h, w, err := shape(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}
	g := &Continuous{Geometry: PixelGeometry(w, h), Cells: make([]float64, w*h)}
	for r := 0; r < h; r++ {
		copy(g.Cells[r*w:(r+1)*w], rows[r])
	}
	return g, nil
}

// Geom returns the grid geometry.
func (g *Continuous) Geom() Geometry { return g.Geometry }

// At returns the value at (col,row).
func (g *Continuous) At(col, row int) float64 { return g.Cells[row*g.Cols+col] }

// Window returns a copy of the w×h sub-grid at (col,row).
func (g *Continuous) Window(col, row, w, h int) (*Continuous, error) {
	geom, err := g.Geometry.Sub(col, row, w, h)
	if err != nil {
		return nil, err
	}
	out := &Continuous{Geometry: geom, Cells: make([]float64, w*h)}
	for r := 0; r < h; r++ {
		src := (row+r)*g.Cols + col
		copy(out.Cells[r*w:(r+1)*w], g.Cells[src:src+w])
	}
	return out, nil
}
