// Package pipeline chains the refinement stages over epochs and
// harmonizes the refined series.
//
// What:
//
//	Refine runs one epoch through an explicit stage list:
//
//	  merge -> spatial -> sieve -> smooth
//
//	merge fills primary gaps from the secondary source, spatial applies the
//	ordered knowledge rules, sieve removes patches under the minimum
//	mapping unit, and smooth removes single-cell speckle. Sieve and smooth
//	only read a bounded neighborhood, so with a tile size configured they
//	run over haloed tiles concurrently and give the same result as the
//	whole-grid call.
//
//	RefineAll refines many epochs concurrently. Harmonize reconciles every
//	epoch against the trusted reference epoch and then filters the series
//	through time. Run does both under one run ID.
//
// Logging:
//
//	Every record carries run_id; per-epoch records add epoch and stage.
//	Stage completion is logged at INFO with the changed-cell count, a
//	residual coverage gap at WARN, skipped rules at DEBUG.
//
// Errors:
//
//   - ErrNoEpochs: empty input list.
//   - ErrMissingInput: an epoch without a primary or secondary map.
//   - ErrUnknownClass: an input cell outside the taxonomy, reported by merge.
//   - *StageError: any stage failure, attributed to stage and epoch.
//   - config.ErrInvalidConfiguration: from New only, never mid-run.
package pipeline
