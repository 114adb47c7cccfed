// Package sieve enforces a minimum mapping unit on a categorical grid.
//
// What:
//
//	Every cell whose same-class connected component has fewer than
//	MinPatchSize cells takes the focal majority (radius ModeRadius) of the
//	input grid. Nodata cells form components of their own and are always
//	replaced, so the output is nodata-free wherever a window holds any
//	classified cell.
//
// One-pass limitation:
//
//	The majority value can itself belong to an undersized component, so a
//	single pass does not guarantee that every output component reaches
//	MinPatchSize. The count of undersized components decreases; it need not
//	reach zero. Result reports both counts.
//
// Tiling:
//
//	The decision for a cell depends on cells at most Params.Halo() away, so
//	tiles haloed by that width give the whole-grid result.
//
// Complexity:
//
//	O(W×H×(d+K)): one component scan, one focal pass.
//
// Errors:
//
//   - ErrInvalidParams: out-of-range parameter, names the field.
package sieve
