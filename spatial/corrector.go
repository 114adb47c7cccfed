package spatial

import (
	"fmt"

	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// Topography holds the auxiliary terrain grids the wetland rule reads.
type Topography struct {
	Slope *raster.Continuous // degrees
	TWI   *raster.Continuous // topographic wetness index
}

// RuleOutcome reports one rule's effect on the grid.
type RuleOutcome struct {
	Rule    Rule
	Changed int  // cells whose class the rule changed
	Skipped bool // source class absent; the rule did nothing
}

// Report is the corrected grid plus per-rule outcomes in execution order.
type Report struct {
	Grid  *raster.Categorical
	Rules []RuleOutcome
}

// Changed returns the total number of cell changes across rules. A cell
// changed by two rules counts twice.
func (r Report) Changed() int {
	n := 0
	for _, o := range r.Rules {
		n += o.Changed
	}
	return n
}

// Corrector runs the spatial rules. It holds no per-grid state and is safe
// for concurrent use.
type Corrector struct {
	params Params
	roles  taxonomy.Roles
}

// New validates params and returns a Corrector using roles for class codes.
// Roles are assumed valid for the taxonomy in use (see Roles.Validate).
func New(params Params, roles taxonomy.Roles) (*Corrector, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Corrector{params: params, roles: roles}, nil
}

// Params returns the corrector's parameters.
func (c *Corrector) Params() Params { return c.params }

// Correct applies every rule in order to a copy of grid.
// Returns ErrMissingAuxiliaryGrid if topo lacks slope or TWI,
// raster.ErrExtentMismatch if topo is misaligned, or a *RuleError.
func (c *Corrector) Correct(grid *raster.Categorical, topo Topography) (Report, error) {
	if topo.Slope == nil || topo.TWI == nil {
		return Report{}, fmt.Errorf("%w: slope=%t twi=%t", ErrMissingAuxiliaryGrid, topo.Slope != nil, topo.TWI != nil)
	}
	if err := raster.CheckAligned(grid, topo.Slope, topo.TWI); err != nil {
		return Report{}, fmt.Errorf("spatial: topography: %w", err)
	}
	st := &state{grid: grid, topo: topo}
	rep := Report{Rules: make([]RuleOutcome, 0, len(steps))}
	for _, r := range Rules() {
		out, err := steps[r](c, st)
		if err != nil {
			return Report{}, &RuleError{Rule: r, Err: err}
		}
		rep.Rules = append(rep.Rules, out)
	}
	if st.grid == grid {
		st.grid = grid.Clone()
	}
	rep.Grid = st.grid
	return rep, nil
}
