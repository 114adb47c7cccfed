// Package smooth applies conditional majority smoothing to a categorical
// grid: a cell takes the focal majority of its window only where that
// majority differs from the cell's own value. Cells the filter agrees with
// are copied through, so fine boundaries elsewhere are preserved.
//
// Complexity: O(W×H×K), K = kernel cells.
//
// Errors:
//
//   - ErrInvalidParams: radius outside [1, 8] or unknown kernel.
package smooth
