// Package raster defines the fixed-grid abstraction every refinement stage
// consumes and produces: a Geometry (extent, pixel resolution, CRS and affine
// transform) plus row-major cell storage in three flavors.
//
// What:
//
//   - Categorical holds taxonomy class codes (taxonomy.Nodata for gaps).
//   - Mask holds booleans derived from a predicate; the algebra on masks
//     (And/Or/Not/AndNot) always returns a new Mask.
//   - Continuous holds float64 auxiliary values (slope, TWI, distances).
//   - Connectivity selects 4- or 8-neighbor adjacency with precomputed
//     neighbor offsets.
//
// Invariants:
//
//   - Cells are row-major: index = row*Cols + col.
//   - len(Cells) == Cols*Rows for every grid built by this package.
//   - All grids of one pipeline run share one Geometry; CheckAligned
//     enforces it and reports ErrExtentMismatch naming the differing field.
//   - Grids are values by convention: nothing in this module writes into a
//     grid it received as input.
//
// Complexity:
//
//   - Construction, Clone, Equal, Window, Paste: O(W×H) time and memory.
//   - At/Set/Index/Coordinate/InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input rows have no rows or no columns.
//   - ErrNonRectangular: input rows have differing lengths.
//   - ErrBadGeometry: non-positive dimensions or a degenerate transform.
//   - ErrCellCount: cell slice length does not match the geometry.
//   - ErrExtentMismatch: two grids of one run differ in extent, resolution,
//     CRS or transform.
//   - ErrOutOfRange: a window or coordinate lies outside the grid.
package raster
