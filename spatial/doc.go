// Package spatial applies the ordered rule set that corrects logically
// inconsistent water and wetland labels in a single classified epoch.
//
// What:
//
//	A Corrector runs six rules strictly in order. Every rule recomputes its
//	masks from the grid the previous rule produced:
//
//	  1. protection         non-water cells (nodata included), eroded, form
//	                        territory water may not grow into. Computed once
//	                        from the input grid.
//	  2. large-waterbody    river components of at least the area
//	                        threshold become lake.
//	  3. linear-pond        pond cells removed by a small opening are too
//	                        narrow for a pond and become river.
//	  4. network-connection river is dilated, clipped to unprotected cells,
//	                        and eroded back; the newly covered cells become
//	                        river.
//	  5. edge-reassignment  river cells within a buffer of an eroded
//	                        large-water core become lake.
//	  6. wetland            wetland on steep or dry terrain (slope above or
//	                        TWI below threshold) that is also far from every
//	                        water class becomes upland.
//
//	Class codes come from taxonomy.Roles, never from constants.
//
// Topography:
//
//	Slope and TWI are continuous grids aligned with the classification.
//	NaN samples compare false and never trigger the wetland rule.
//
// Complexity:
//
//	O(W×H) per rule with square kernels (summed-area morphology, linear
//	distance transform, bounded component scan); O(W×H×r²) for the
//	circular protection and edge-core erosions.
//
// Errors:
//
//   - ErrMissingAuxiliaryGrid: slope or TWI is nil; fatal.
//   - ErrInvalidParams: Params.Validate failure, names the field.
//   - raster.ErrExtentMismatch: topography not aligned with the grid.
//   - *RuleError: wraps any failure inside a rule with the rule name.
//
// A rule whose source class is absent is reported as Skipped in its
// RuleOutcome. That is data, not an error.
package spatial
