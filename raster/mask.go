package raster

import "fmt"

// Mask is a boolean grid. Combinators never modify their operands.
type Mask struct {
	Geometry
	Cells []bool
}

// NewMask allocates an all-false mask over geom.
func NewMask(geom Geometry) *Mask {
	return &Mask{Geometry: geom, Cells: make([]bool, geom.Len())}
}

// MaskFromRows deep-copies a rectangular [][]bool with a unit-pixel geometry.
// Returns ErrEmptyGrid or ErrNonRectangular.
func MaskFromRows(rows [][]bool) (*Mask, error) {
	h, w, err := shape(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}
	m := &Mask{Geometry: PixelGeometry(w, h), Cells: make([]bool, w*h)}
	for r := 0; r < h; r++ {
		copy(m.Cells[r*w:(r+1)*w], rows[r])
	}
	return m, nil
}

// Geom returns the mask geometry.
func (m *Mask) Geom() Geometry { return m.Geometry }

// At returns the cell at (col,row).
func (m *Mask) At(col, row int) bool { return m.Cells[row*m.Cols+col] }

// Clone returns a deep copy.
func (m *Mask) Clone() *Mask {
	cells := make([]bool, len(m.Cells))
	copy(cells, m.Cells)
	return &Mask{Geometry: m.Geometry, Cells: cells}
}

// Not returns ¬m.
func (m *Mask) Not() *Mask {
	out := NewMask(m.Geometry)
	for i, v := range m.Cells {
		out.Cells[i] = !v
	}
	return out
}

// And returns m ∧ o. Geometries must match (caller-validated).
func (m *Mask) And(o *Mask) *Mask {
	out := NewMask(m.Geometry)
	for i, v := range m.Cells {
		out.Cells[i] = v && o.Cells[i]
	}
	return out
}

// Or returns m ∨ o.
func (m *Mask) Or(o *Mask) *Mask {
	out := NewMask(m.Geometry)
	for i, v := range m.Cells {
		out.Cells[i] = v || o.Cells[i]
	}
	return out
}

// AndNot returns m ∧ ¬o.
func (m *Mask) AndNot(o *Mask) *Mask {
	out := NewMask(m.Geometry)
	for i, v := range m.Cells {
		out.Cells[i] = v && !o.Cells[i]
	}
	return out
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Cells {
		if v {
			n++
		}
	}
	return n
}

// Any reports whether at least one cell is true.
func (m *Mask) Any() bool {
	for _, v := range m.Cells {
		if v {
			return true
		}
	}
	return false
}

// SubsetOf reports whether every true cell of m is true in o.
func (m *Mask) SubsetOf(o *Mask) bool {
	for i, v := range m.Cells {
		if v && !o.Cells[i] {
			return false
		}
	}
	return true
}

// Equal reports whether m and o share geometry and every cell.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !m.Geometry.Equal(o.Geometry) {
		return false
	}
	for i, v := range m.Cells {
		if o.Cells[i] != v {
			return false
		}
	}
	return true
}

// Window returns a copy of the w×h sub-mask at (col,row).
func (m *Mask) Window(col, row, w, h int) (*Mask, error) {
	geom, err := m.Geometry.Sub(col, row, w, h)
	if err != nil {
		return nil, err
	}
	out := &Mask{Geometry: geom, Cells: make([]bool, w*h)}
	for r := 0; r < h; r++ {
		src := (row+r)*m.Cols + col
		copy(out.Cells[r*w:(r+1)*w], m.Cells[src:src+w])
	}
	return out, nil
}

// String renders the mask as rows of '#' and '.', for test failure output.
func (m *Mask) String() string {
	b := make([]byte, 0, (m.Cols+1)*m.Rows)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if m.At(c, r) {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}
	return fmt.Sprintf("%dx%d\n%s", m.Cols, m.Rows, b)
}
