// Package merge fuses a higher-quality primary classification that may
// contain gaps with a gap-free secondary classification of the same extent.
//
// What:
//
//	Merge returns overlay(primary, secondary): primary wherever it is
//	classified, secondary elsewhere. If secondary is also nodata under a
//	primary gap, the residual nodata propagates and is reported through
//	Result.Gaps and Result.Warning. It is never dropped silently.
//
// Complexity:
//
//	O(W×H) time, O(W×H) memory for the output grid and gap mask.
//
// Errors:
//
//   - raster.ErrExtentMismatch: primary and secondary differ in geometry.
//   - ErrCoverageGap: returned by Result.Warning only; not fatal.
package merge
