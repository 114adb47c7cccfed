package raster

import (
	"fmt"
	"math"
)

// Affine is a GDAL-ordered geotransform:
//
//	x = OriginX + col*PixelWidth + row*RotX
//	y = OriginY + col*RotY      + row*PixelHeight
type Affine struct {
	OriginX     float64 `json:"origin_x" yaml:"origin_x"`
	OriginY     float64 `json:"origin_y" yaml:"origin_y"`
	PixelWidth  float64 `json:"pixel_width" yaml:"pixel_width"`
	PixelHeight float64 `json:"pixel_height" yaml:"pixel_height"`
	RotX        float64 `json:"rot_x,omitempty" yaml:"rot_x,omitempty"`
	RotY        float64 `json:"rot_y,omitempty" yaml:"rot_y,omitempty"`
}

// Geometry fixes the spatial frame of a grid.
type Geometry struct {
	Cols      int    `json:"cols" yaml:"cols"`
	Rows      int    `json:"rows" yaml:"rows"`
	CRS       string `json:"crs" yaml:"crs"`
	Transform Affine `json:"transform" yaml:"transform"`
}

// PixelGeometry returns a unit-pixel geometry with no CRS, used for
// synthetic grids and tests.
func PixelGeometry(cols, rows int) Geometry {
	return Geometry{
		Cols: cols,
		Rows: rows,
		Transform: Affine{
			PixelWidth:  1,
			PixelHeight: -1,
		},
	}
}

// Len returns Cols*Rows.
func (g Geometry) Len() int { return g.Cols * g.Rows }

// Validate checks dimensions and transform.
func (g Geometry) Validate() error {
	if g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadGeometry, g.Cols, g.Rows)
	}
	t := g.Transform
	for _, v := range []float64{t.OriginX, t.OriginY, t.PixelWidth, t.PixelHeight, t.RotX, t.RotY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite transform", ErrBadGeometry)
		}
	}
	if g.PixelArea() == 0 {
		return fmt.Errorf("%w: degenerate transform", ErrBadGeometry)
	}
	return nil
}

// Equal reports whether g and o describe the same frame.
func (g Geometry) Equal(o Geometry) bool {
	return g.mismatch(o) == ""
}

// mismatch names the first differing field, or "".
func (g Geometry) mismatch(o Geometry) string {
	switch {
	case g.Cols != o.Cols || g.Rows != o.Rows:
		return fmt.Sprintf("size %dx%d vs %dx%d", g.Cols, g.Rows, o.Cols, o.Rows)
	case g.CRS != o.CRS:
		return fmt.Sprintf("crs %q vs %q", g.CRS, o.CRS)
	case g.Transform.PixelWidth != o.Transform.PixelWidth || g.Transform.PixelHeight != o.Transform.PixelHeight:
		return "resolution"
	case g.Transform != o.Transform:
		return "transform"
	}
	return ""
}

// PixelArea returns the area of one cell in CRS units (absolute determinant
// of the transform).
func (g Geometry) PixelArea() float64 {
	t := g.Transform
	return math.Abs(t.PixelWidth*t.PixelHeight - t.RotX*t.RotY)
}

// CellCenter returns the CRS coordinates of the center of (col,row).
func (g Geometry) CellCenter(col, row int) (x, y float64) {
	c, r := float64(col)+0.5, float64(row)+0.5
	t := g.Transform
	return t.OriginX + c*t.PixelWidth + r*t.RotX, t.OriginY + c*t.RotY + r*t.PixelHeight
}

// InBounds reports whether (col,row) lies within the grid.
// Complexity: O(1).
func (g Geometry) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// Index maps (col,row) to a row-major index: row*Cols + col.
// Complexity: O(1).
func (g Geometry) Index(col, row int) int {
	return row*g.Cols + col
}

// Coordinate converts a row-major index back to (col,row).
// Complexity: O(1).
func (g Geometry) Coordinate(idx int) (col, row int) {
	return idx % g.Cols, idx / g.Cols
}

// Sub returns the geometry of the w×h window whose top-left cell is
// (col,row). The window must lie within g.
func (g Geometry) Sub(col, row, w, h int) (Geometry, error) {
	if w <= 0 || h <= 0 || !g.InBounds(col, row) || !g.InBounds(col+w-1, row+h-1) {
		return Geometry{}, fmt.Errorf("%w: window (%d,%d) %dx%d in %dx%d", ErrOutOfRange, col, row, w, h, g.Cols, g.Rows)
	}
	t := g.Transform
	c, r := float64(col), float64(row)
	t.OriginX, t.OriginY = t.OriginX+c*t.PixelWidth+r*t.RotX, t.OriginY+c*t.RotY+r*t.PixelHeight
	return Geometry{Cols: w, Rows: h, CRS: g.CRS, Transform: t}, nil
}

// Gridder is implemented by every grid flavor.
type Gridder interface {
	Geom() Geometry
}

// CheckAligned returns ErrExtentMismatch if any grid's geometry differs from
// the first one's. Nil grids are skipped.
func CheckAligned(grids ...Gridder) error {
	var ref *Geometry
	for i, g := range grids {
		if g == nil || isNilGrid(g) {
			continue
		}
		geom := g.Geom()
		if ref == nil {
			ref = &geom
			continue
		}
		if m := ref.mismatch(geom); m != "" {
			return fmt.Errorf("%w: grid %d: %s", ErrExtentMismatch, i, m)
		}
	}
	return nil
}

func isNilGrid(g Gridder) bool {
	switch v := g.(type) {
	case *Categorical:
		return v == nil
	case *Mask:
		return v == nil
	case *Continuous:
		return v == nil
	}
	return false
}
