// Package stats summarizes classified grids for change analysis: per-class
// areas, earlier×later transition matrices, overall agreement, and Cohen's
// kappa. Matrices are gonum mat.Dense values indexed by the taxonomy's dense
// class order.
//
// Nodata cells are excluded from every statistic and counted separately.
//
// Errors:
//
//   - ErrUnknownClass: a grid holds a code outside the taxonomy.
//   - ErrEmpty: no classified cell pairs to summarize.
//   - raster.ErrExtentMismatch: grids not aligned.
package stats
