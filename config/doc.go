// Package config holds the single YAML configuration of a refinement run:
// taxonomy, class roles, the plausible-transition whitelist, source
// bindings, per-stage parameters, and runtime settings.
//
// What:
//
//   - Default() returns the documented defaults. The temporal boundary
//     policy has no default and must be chosen.
//   - Load(path) overlays a YAML file on Default() and validates it.
//     Unknown keys are rejected.
//   - Validate() checks ranges with validator/v10 struct tags, then checks
//     class references against the taxonomy and re-checks every stage's
//     Params.
//   - Spatial.Params(), Sieve.Params(), ... convert sections to the stage
//     packages' parameter types.
//
// Errors:
//
//	Every failure wraps ErrInvalidConfiguration and names the offending
//	field by its YAML path, e.g. "spatial.pond_opening_radius".
package config
