// Package consistency reconciles two refined epochs so that only credible,
// spatially coherent change survives.
//
// What:
//
//	Given a trusted later map and an earlier map of the same extent:
//
//	  1. initial    = later ≠ earlier
//	  2. plausible  = stable built-up core (both built-up, eroded)
//	                ∨ stable cropland ∨ stable water
//	                ∨ whitelisted earlier→later transitions
//	  3. refined    = initial ∧ ¬plausible
//	  4. opened     = Open(refined, OpeningRadius)
//	  5. trueChange = components of opened with ≥ ChangePatchMinSize cells
//	  6. corrected  = earlier where trueChange, later elsewhere
//
//	The whitelist is data (taxonomy.TransitionRule); nothing about it is
//	hard-coded here. Class groups come from taxonomy.Roles.
//
// Invariants:
//
//	trueChange ⊆ opened ⊆ refined ⊆ initial. Opening is anti-extensive
//	because erosion ignores out-of-grid cells, and the size filter only
//	removes cells. corrected equals later wherever trueChange is false.
//
// Complexity:
//
//	O(W×H×r²) with the default circular kernels, O(W×H) with square
//	ones; the component scan is bounded by MaxComponentSize.
//
// Errors:
//
//   - ErrInvalidParams: out-of-range parameter or bad whitelist.
//   - raster.ErrExtentMismatch: the two maps are not aligned.
package consistency
