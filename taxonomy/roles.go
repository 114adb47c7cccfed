package taxonomy

import "fmt"

// Roles names the class sets and single classes each corrector reasons
// about. Correctors never hard-code codes; they read them from Roles.
type Roles struct {
	// Spatial corrector roles.
	River        Code `yaml:"river"`
	Lake         Code `yaml:"lake"`
	Pond         Code `yaml:"pond"`
	Wetland      Code `yaml:"wetland"`
	Upland       Code `yaml:"upland"`
	SpatialWater Set  `yaml:"spatial_water"` // protection mask and wetland proximity
	LargeWater   Set  `yaml:"large_water"`   // edge reassignment cores

	// Consistency corrector roles.
	BuiltUp          Set `yaml:"built_up"`
	Cropland         Set `yaml:"cropland"`
	ConsistencyWater Set `yaml:"consistency_water"`
}

// DefaultRoles returns the roles of the default 13-class scheme.
// Mudflat is water for the consistency rules only.
func DefaultRoles() Roles {
	return Roles{
		River:            River,
		Lake:             Lake,
		Pond:             AquaculturePond,
		Wetland:          WoodyWetland,
		Upland:           Forest,
		SpatialWater:     NewSet(River, Lake, Reservoir, AquaculturePond),
		LargeWater:       NewSet(Lake, Reservoir),
		BuiltUp:          NewSet(BuiltUp),
		Cropland:         NewSet(Paddy, DryCropland),
		ConsistencyWater: NewSet(River, Lake, Mudflat, AquaculturePond, Reservoir),
	}
}

// Validate checks every role against t.
func (r Roles) Validate(t *Taxonomy) error {
	if err := t.Check(r.River, r.Lake, r.Pond, r.Wetland, r.Upland); err != nil {
		return fmt.Errorf("roles: %w", err)
	}
	sets := []struct {
		name string
		s    Set
	}{
		{"spatial_water", r.SpatialWater},
		{"large_water", r.LargeWater},
		{"built_up", r.BuiltUp},
		{"cropland", r.Cropland},
		{"consistency_water", r.ConsistencyWater},
	}
	for _, ns := range sets {
		name, s := ns.name, ns.s
		if s.Empty() {
			return fmt.Errorf("roles: %s: %w: empty set", name, ErrUnknownCode)
		}
		if err := t.Check(s.Codes()...); err != nil {
			return fmt.Errorf("roles: %s: %w", name, err)
		}
	}
	return nil
}
