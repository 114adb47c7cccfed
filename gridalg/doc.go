// Package gridalg implements the raster primitives every refinement stage is
// built from: class remapping and masking, connected-component sizing,
// binary morphology, a bounded Euclidean distance transform, focal majority,
// overlay, and haloed tile-parallel execution.
//
// What:
//
//   - Remap / SetMask / ClassMask / Differ: per-cell lookups and predicates.
//   - Where / WhereConst / Overlay: masked replacement and gap filling.
//   - Components / ComponentSize / ClassComponentSize: 4- or 8-connected
//     labeling (BFS) with sizes capped at maxSize.
//   - Erode / Dilate / Open / Close: min/max over a Square, Diamond or
//     Circle structuring window.
//   - DistanceTransform: exact Euclidean distance (pixels) to the nearest
//     true cell, bounded by a search radius.
//   - FocalMode: majority class over a window; ties go to the smaller code.
//   - Tiles / ParallelMap: split a grid into haloed tiles and run a
//     grid→grid function on each tile concurrently.
//
// Border policy:
//
//	Neighborhood reducers only look at cells inside the grid. For Erode this
//	means the outside never erodes a border cell; for Dilate it never adds
//	one; FocalMode votes only among in-grid, non-nodata cells.
//
// Kernel reach:
//
//	A Square or Diamond kernel of radius r reaches ceil(r) cells in each
//	direction, so fractional radii (0.5) still cover the partially overlapped
//	ring. A Circle kernel keeps offsets with dx²+dy² ≤ r².
//
// Complexity:
//
//   - Remap, masks, Where, Overlay: O(W×H).
//   - Components: O(W×H×d), d = 4 or 8. Memory O(W×H).
//   - Erode/Dilate with Square: O(W×H) via a summed-area table, any radius.
//     Diamond/Circle: O(W×H×K), K = kernel cells.
//   - DistanceTransform: O(W×H) (Felzenszwalb–Huttenlocher lower envelope).
//   - FocalMode: O(W×H×K).
//
// Tiling:
//
//	Every primitive except Components is local within Reach(radius) (the
//	distance transform within its search radius), so a tile run with a halo
//	at least the largest reach used produces the same interior cells as a
//	whole-grid run. ComponentSize is local within maxSize.
//
// Errors:
//
//   - ErrBadRadius: negative or non-finite radius.
//   - ErrBadMaxSize: non-positive component size cap.
//   - ErrRemapLength: from/to slices differ in length.
//   - ErrBadTiling: non-positive tile size or negative halo.
//   - raster.ErrExtentMismatch: operands of different geometry.
package gridalg
