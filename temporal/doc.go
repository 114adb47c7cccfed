// Package temporal smooths a time-ordered series of categorical epochs with
// a 3-point categorical median while protecting one reference epoch.
//
// What:
//
//   - The reference epoch passes through unchanged.
//   - Interior epochs take the majority of (previous, self, next) read from
//     the unsmoothed series; when all three differ the epoch keeps its own
//     value.
//   - The first epoch and, if it is not the reference, the last epoch have
//     one neighbor only. Their treatment is a mandatory BoundaryPolicy:
//     PassThrough keeps them, TwoPoint lets them adopt the neighbor's value
//     where the neighbor and the next epoch inward agree on it.
//
// Nodata takes part in the vote like any class.
//
// Complexity: O(E×W×H) for E epochs.
//
// Errors:
//
//   - ErrEmptySeries, ErrMissingGrid, ErrDuplicateTime: bad epoch list.
//   - ErrUnknownReference: the reference label names no epoch.
//   - ErrBoundaryPolicyRequired: Params.Boundary left unset.
//   - raster.ErrExtentMismatch: epochs are not aligned.
//
// NewSeries wraps the label errors in *EpochError naming the epoch.
package temporal
