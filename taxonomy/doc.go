// Package taxonomy defines the closed land-cover class scheme shared by every
// refinement stage: class codes, the nodata sentinel, named class sets
// (roles), the whitelist of plausible transitions, and the optional binding
// of class codes to external sample sources.
//
// What:
//
//   - Code is a stable uint8 class identifier; Nodata (255) marks
//     unclassified cells.
//   - Taxonomy is an ordered, immutable list of Class records (code, name,
//     display color). Names and colors are metadata only.
//   - Set is a fixed-size bitset over codes used for every "is any of"
//     predicate (water, cropland, built-up, ...).
//   - Roles names the class sets and single classes the correctors need.
//   - TransitionRule is one entry of the plausible-change whitelist, kept as
//     data so integrators can audit or replace it.
//   - Bindings associates a class with an optional sample source; absence is
//     the Unbound state, not an error.
//
// Default() returns the 13-class scheme:
//
//	 0 River               7 Dry Cropland
//	 1 Lake                8 Forest
//	 2 Mudflat             9 Grassland
//	 3 Paddy Field        10 Bare Land
//	 4 Aquaculture Pond   11 Herbaceous Wetland
//	 5 Reservoir          12 Woody Wetland
//	 6 Built-up Land
//
// Errors:
//
//   - ErrUnknownCode: a code is not part of the taxonomy.
//   - ErrDuplicateCode: a taxonomy lists the same code twice.
//   - ErrEmptyTaxonomy: a taxonomy has no classes.
//   - ErrBadBinding: a source binding is malformed.
package taxonomy
