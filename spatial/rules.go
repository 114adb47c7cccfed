package spatial

import (
	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// Rule identifies one correction rule.
type Rule int

const (
	RuleProtection Rule = iota
	RuleLargeWaterbody
	RuleLinearPond
	RuleNetworkConnection
	RuleEdgeReassignment
	RuleWetland
)

var ruleNames = [...]string{
	RuleProtection:        "protection",
	RuleLargeWaterbody:    "large-waterbody",
	RuleLinearPond:        "linear-pond",
	RuleNetworkConnection: "network-connection",
	RuleEdgeReassignment:  "edge-reassignment",
	RuleWetland:           "wetland",
}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return "unknown"
	}
	return ruleNames[r]
}

// Rules returns every rule in execution order.
func Rules() []Rule {
	return []Rule{
		RuleProtection,
		RuleLargeWaterbody,
		RuleLinearPond,
		RuleNetworkConnection,
		RuleEdgeReassignment,
		RuleWetland,
	}
}

// state is the working set threaded through the rules.
type state struct {
	grid       *raster.Categorical
	topo       Topography
	protection *raster.Mask
}

// step applies one rule to st and reports what it did.
type step func(c *Corrector, st *state) (RuleOutcome, error)

var steps = [...]step{
	RuleProtection:        (*Corrector).protect,
	RuleLargeWaterbody:    (*Corrector).largeWaterbody,
	RuleLinearPond:        (*Corrector).linearPond,
	RuleNetworkConnection: (*Corrector).connectNetwork,
	RuleEdgeReassignment:  (*Corrector).reassignEdges,
	RuleWetland:           (*Corrector).correctWetland,
}

// protect marks eroded non-water territory. Nodata counts as non-water.
func (c *Corrector) protect(st *state) (RuleOutcome, error) {
	nonWater := gridalg.SetMask(st.grid, c.roles.SpatialWater).Not()
	m, err := gridalg.Erode(nonWater, c.params.ProtectionErosionRadius, c.params.ProtectionKernel)
	if err != nil {
		return RuleOutcome{}, err
	}
	st.protection = m
	return RuleOutcome{Rule: RuleProtection}, nil
}

func (c *Corrector) largeWaterbody(st *state) (RuleOutcome, error) {
	river := gridalg.ClassMask(st.grid, c.roles.River)
	if !river.Any() {
		return skipped(RuleLargeWaterbody), nil
	}
	large, err := gridalg.SizeAtLeast(river, c.params.Conn, c.params.LargeWaterAreaThreshold, c.params.MaxComponentSize)
	if err != nil {
		return RuleOutcome{}, err
	}
	return c.assign(st, RuleLargeWaterbody, large, c.roles.Lake)
}

func (c *Corrector) linearPond(st *state) (RuleOutcome, error) {
	pond := gridalg.ClassMask(st.grid, c.roles.Pond)
	if !pond.Any() {
		return skipped(RuleLinearPond), nil
	}
	opened, err := gridalg.Open(pond, c.params.PondOpeningRadius, c.params.PondKernel)
	if err != nil {
		return RuleOutcome{}, err
	}
	return c.assign(st, RuleLinearPond, pond.AndNot(opened), c.roles.River)
}

func (c *Corrector) connectNetwork(st *state) (RuleOutcome, error) {
	river := gridalg.ClassMask(st.grid, c.roles.River)
	if !river.Any() {
		return skipped(RuleNetworkConnection), nil
	}
	closed, err := gridalg.ConstrainedClose(river, st.protection.Not(), c.params.RiverConnectRadius, c.params.ConnectKernel)
	if err != nil {
		return RuleOutcome{}, err
	}
	return c.assign(st, RuleNetworkConnection, closed, c.roles.River)
}

func (c *Corrector) reassignEdges(st *state) (RuleOutcome, error) {
	river := gridalg.ClassMask(st.grid, c.roles.River)
	large := gridalg.SetMask(st.grid, c.roles.LargeWater)
	if !river.Any() || !large.Any() {
		return skipped(RuleEdgeReassignment), nil
	}
	core, err := gridalg.Erode(large, c.params.EdgeCoreErosionRadius, c.params.EdgeCoreKernel)
	if err != nil {
		return RuleOutcome{}, err
	}
	near, err := gridalg.WithinDistance(core, c.params.EdgeBufferDistance, c.params.EdgeSearchRadius)
	if err != nil {
		return RuleOutcome{}, err
	}
	return c.assign(st, RuleEdgeReassignment, river.And(near), c.roles.Lake)
}

func (c *Corrector) correctWetland(st *state) (RuleOutcome, error) {
	wet := gridalg.ClassMask(st.grid, c.roles.Wetland)
	if !wet.Any() {
		return skipped(RuleWetland), nil
	}
	water := gridalg.SetMask(st.grid, c.roles.SpatialWater)
	dist, err := gridalg.DistanceTransform(water, c.params.WaterSearchRadius, gridalg.MarkInfinite)
	if err != nil {
		return RuleOutcome{}, err
	}
	slope, twi := st.topo.Slope.Cells, st.topo.TWI.Cells
	for i, w := range wet.Cells {
		if !w {
			continue
		}
		unsuitable := slope[i] > c.params.WetlandSlopeThreshold || twi[i] < c.params.WetlandTWIThreshold
		wet.Cells[i] = unsuitable && dist.Cells[i] > c.params.WetlandWaterDistance
	}
	return c.assign(st, RuleWetland, wet, c.roles.Upland)
}

// assign writes code under mask into the working grid.
func (c *Corrector) assign(st *state, r Rule, mask *raster.Mask, code taxonomy.Code) (RuleOutcome, error) {
	out, n, err := gridalg.WhereConst(st.grid, mask, code)
	if err != nil {
		return RuleOutcome{}, err
	}
	st.grid = out
	return RuleOutcome{Rule: r, Changed: n}, nil
}

func skipped(r Rule) RuleOutcome { return RuleOutcome{Rule: r, Skipped: true} }
