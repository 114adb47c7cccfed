package pipeline

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/merge"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/sieve"
	"github.com/katalvlaran/landcover/smooth"
	"github.com/katalvlaran/landcover/spatial"
)

// Stage names.
const (
	StageMerge       = "merge"
	StageSpatial     = "spatial"
	StageSieve       = "sieve"
	StageSmooth      = "smooth"
	StageConsistency = "consistency"
	StageTemporal    = "temporal"
)

// State is the per-epoch working set handed from stage to stage. Grid is
// the current map; each stage replaces it and records its own result.
type State struct {
	Input   EpochInput
	Grid    *raster.Categorical
	Merge   merge.Result
	Spatial spatial.Report
	Sieve   sieve.Result
	Smooth  smooth.Result
}

// Stage is one step of the refine chain.
type Stage interface {
	Name() string
	Apply(ctx context.Context, st *State) error
}

// reporter is implemented by stages that log details beyond the changed
// count.
type reporter interface {
	report(log *slog.Logger, st *State)
}

type mergeStage struct{}

func (mergeStage) Name() string { return StageMerge }

func (mergeStage) Apply(_ context.Context, st *State) error {
	res, err := merge.Merge(st.Input.Primary, st.Input.Secondary)
	if err != nil {
		return err
	}
	st.Merge, st.Grid = res, res.Grid
	return nil
}

func (mergeStage) report(log *slog.Logger, st *State) {
	if err := st.Merge.Warning(); err != nil {
		log.Warn("coverage gap", "gap_cells", st.Merge.GapCount, "err", err)
	}
	log.Debug("merge filled", "filled", st.Merge.Filled)
}

type spatialStage struct{ c *spatial.Corrector }

func (spatialStage) Name() string { return StageSpatial }

func (s spatialStage) Apply(_ context.Context, st *State) error {
	rep, err := s.c.Correct(st.Grid, st.Input.Topo)
	if err != nil {
		return err
	}
	st.Spatial, st.Grid = rep, rep.Grid
	return nil
}

func (spatialStage) report(log *slog.Logger, st *State) {
	for _, o := range st.Spatial.Rules {
		if o.Skipped {
			log.Debug("rule skipped", "rule", o.Rule.String(), "reason", "source class absent")
			continue
		}
		log.Debug("rule applied", "rule", o.Rule.String(), "changed", o.Changed)
	}
}

type sieveStage struct {
	p    sieve.Params
	opts gridalg.TileOptions
}

func (sieveStage) Name() string { return StageSieve }

func (s sieveStage) Apply(ctx context.Context, st *State) error {
	out, err := gridalg.ParallelMap(ctx, st.Grid, s.opts, func(_ context.Context, _ gridalg.Tile, sub *raster.Categorical) (*raster.Categorical, error) {
		return sieve.Apply(sub, s.p)
	})
	if err != nil {
		return err
	}
	res, err := sieve.Summarize(st.Grid, out, s.p)
	if err != nil {
		return err
	}
	st.Sieve, st.Grid = res, out
	return nil
}

func (sieveStage) report(log *slog.Logger, st *State) {
	log.Debug("small patches", "before", st.Sieve.SmallBefore, "after", st.Sieve.SmallAfter)
}

type smoothStage struct {
	p    smooth.Params
	opts gridalg.TileOptions
}

func (smoothStage) Name() string { return StageSmooth }

func (s smoothStage) Apply(ctx context.Context, st *State) error {
	out, err := gridalg.ParallelMap(ctx, st.Grid, s.opts, func(_ context.Context, _ gridalg.Tile, sub *raster.Categorical) (*raster.Categorical, error) {
		return smooth.Apply(sub, s.p)
	})
	if err != nil {
		return err
	}
	diff, err := gridalg.Differ(st.Grid, out)
	if err != nil {
		return err
	}
	st.Smooth, st.Grid = smooth.Result{Grid: out, Changed: diff.Count()}, out
	return nil
}
