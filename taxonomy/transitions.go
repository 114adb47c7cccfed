package taxonomy

import "fmt"

// TransitionRule marks earlier→later class pairs whose apparent change is
// treated as plausible (not evidence of a classification error between
// epochs). A pair matches when From.Has(earlier) && To.Has(later).
type TransitionRule struct {
	Name string `yaml:"name"`
	From Set    `yaml:"from"`
	To   Set    `yaml:"to"`
}

// Matches reports whether the earlier→later pair is covered by the rule.
func (r TransitionRule) Matches(earlier, later Code) bool {
	return r.From.Has(earlier) && r.To.Has(later)
}

// NonReversible returns the classes a built-up cell may plausibly revert to.
func NonReversible() Set {
	return NewSet(Paddy, DryCropland, Forest, WoodyWetland, HerbaceousWetland,
		Grassland, Mudflat, River, Lake, Reservoir, AquaculturePond)
}

// DefaultPlausibleTransitions returns the whitelist used by the consistency
// corrector for the default scheme.
func DefaultPlausibleTransitions() []TransitionRule {
	return []TransitionRule{
		{Name: "urban_to_forest", From: NewSet(BuiltUp), To: NewSet(Forest)},
		{Name: "forest_to_swamp", From: NewSet(Forest), To: NewSet(WoodyWetland)},
		{Name: "paddy_to_forest", From: NewSet(Paddy), To: NewSet(Forest)},
		{Name: "cropland_to_forest", From: NewSet(Paddy, DryCropland), To: NewSet(Forest, WoodyWetland)},
		{Name: "urban_reversion", From: NewSet(BuiltUp), To: NonReversible()},
	}
}

// TransitionTable is a dense earlier×later lookup built from rules.
type TransitionTable struct {
	ok [MaxClasses][MaxClasses]bool
}

// BuildTransitionTable flattens rules into a lookup table. Rules that name
// codes outside t are rejected with ErrUnknownCode.
func BuildTransitionTable(t *Taxonomy, rules []TransitionRule) (*TransitionTable, error) {
	tt := &TransitionTable{}
	for _, r := range rules {
		if r.From.Empty() || r.To.Empty() {
			return nil, fmt.Errorf("transition %q: %w: empty side", r.Name, ErrUnknownCode)
		}
		if err := t.Check(append(r.From.Codes(), r.To.Codes()...)...); err != nil {
			return nil, fmt.Errorf("transition %q: %w", r.Name, err)
		}
		for _, e := range r.From.Codes() {
			for _, l := range r.To.Codes() {
				tt.ok[e][l] = true
			}
		}
	}
	return tt, nil
}

// Plausible reports whether earlier→later is whitelisted.
func (tt *TransitionTable) Plausible(earlier, later Code) bool {
	if earlier == Nodata || later == Nodata {
		return false
	}
	return tt.ok[earlier][later]
}
