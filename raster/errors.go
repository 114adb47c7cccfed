package raster

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("raster: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrBadGeometry indicates non-positive dimensions or a degenerate transform.
	ErrBadGeometry = errors.New("raster: invalid geometry")
	// ErrCellCount indicates a cell slice that does not cover the geometry.
	ErrCellCount = errors.New("raster: cell count does not match geometry")
	// ErrExtentMismatch indicates grids that do not share extent, resolution,
	// CRS, or transform. There is no automatic reprojection.
	ErrExtentMismatch = errors.New("raster: extent mismatch")
	// ErrOutOfRange indicates a coordinate or window outside the grid.
	ErrOutOfRange = errors.New("raster: coordinate out of range")
)
