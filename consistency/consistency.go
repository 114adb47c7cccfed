package consistency

import (
	"fmt"

	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// Stats counts the cells of every intermediate mask.
type Stats struct {
	Initial    int
	Plausible  int // plausible ∧ initial
	Refined    int
	Opened     int
	TrueChange int
}

// Suppressed returns the disagreements reverted to the later map.
func (s Stats) Suppressed() int { return s.Initial - s.TrueChange }

// Result is the corrected earlier map plus every intermediate mask.
type Result struct {
	Corrected  *raster.Categorical
	Initial    *raster.Mask
	Plausible  *raster.Mask
	Refined    *raster.Mask
	Opened     *raster.Mask
	TrueChange *raster.Mask
	Stats      Stats
}

// Corrector holds validated parameters and the flattened whitelist.
// It is safe for concurrent use.
type Corrector struct {
	params Params
	table  *taxonomy.TransitionTable
}

// New validates p against tax and builds the transition lookup.
func New(p Params, tax *taxonomy.Taxonomy) (*Corrector, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.Roles.Validate(tax); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	table, err := taxonomy.BuildTransitionTable(tax, p.Transitions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return &Corrector{params: p, table: table}, nil
}

// Correct runs the corrector with the default taxonomy.
func Correct(later, earlier *raster.Categorical, p Params) (Result, error) {
	c, err := New(p, taxonomy.Default())
	if err != nil {
		return Result{}, err
	}
	return c.Correct(later, earlier)
}

// Correct reconciles earlier against the trusted later map.
// Returns raster.ErrExtentMismatch for misaligned maps.
func (c *Corrector) Correct(later, earlier *raster.Categorical) (Result, error) {
	p := c.params
	initial, err := gridalg.Differ(later, earlier)
	if err != nil {
		return Result{}, fmt.Errorf("consistency: %w", err)
	}
	plausible, err := c.plausible(later, earlier)
	if err != nil {
		return Result{}, err
	}
	refined := initial.AndNot(plausible)
	opened, err := gridalg.Open(refined, p.OpeningRadius, p.OpeningKernel)
	if err != nil {
		return Result{}, fmt.Errorf("consistency: opening: %w", err)
	}
	trueChange, err := gridalg.SizeAtLeast(opened, p.Conn, p.ChangePatchMinSize, p.MaxComponentSize)
	if err != nil {
		return Result{}, fmt.Errorf("consistency: size filter: %w", err)
	}
	corrected, err := gridalg.Where(later, trueChange, earlier)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Corrected:  corrected,
		Initial:    initial,
		Plausible:  plausible,
		Refined:    refined,
		Opened:     opened,
		TrueChange: trueChange,
		Stats: Stats{
			Initial:    initial.Count(),
			Plausible:  initial.And(plausible).Count(),
			Refined:    refined.Count(),
			Opened:     opened.Count(),
			TrueChange: trueChange.Count(),
		},
	}, nil
}

// plausible is the union of stable built-up core, stable cropland, stable
// water, and whitelisted transitions.
func (c *Corrector) plausible(later, earlier *raster.Categorical) (*raster.Mask, error) {
	r := c.params.Roles
	both := func(s taxonomy.Set) *raster.Mask {
		return gridalg.SetMask(later, s).And(gridalg.SetMask(earlier, s))
	}
	core, err := gridalg.Erode(both(r.BuiltUp), c.params.UrbanCoreRadius, c.params.UrbanCoreKernel)
	if err != nil {
		return nil, fmt.Errorf("consistency: built-up core: %w", err)
	}
	transition, err := gridalg.Pairs(earlier, later, c.table.Plausible)
	if err != nil {
		return nil, err
	}
	return core.Or(both(r.Cropland)).Or(both(r.ConsistencyWater)).Or(transition), nil
}
