package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/landcover/config"
	"github.com/katalvlaran/landcover/consistency"
	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/internal/logging"
	"github.com/katalvlaran/landcover/merge"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/sieve"
	"github.com/katalvlaran/landcover/smooth"
	"github.com/katalvlaran/landcover/spatial"
	"github.com/katalvlaran/landcover/taxonomy"
	"github.com/katalvlaran/landcover/temporal"
)

// EpochInput is everything needed to refine one epoch.
type EpochInput struct {
	Label     string
	Time      time.Time
	Primary   *raster.Categorical // classified map; nodata where unclassified
	Secondary *raster.Categorical // gap-filling map
	Topo      spatial.Topography
}

// Refined is one epoch after the refine chain.
type Refined struct {
	Label   string
	Time    time.Time
	Grid    *raster.Categorical
	Merge   merge.Result
	Spatial spatial.Report
	Sieve   sieve.Result
	Smooth  smooth.Result
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards every record.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithWorkers overrides runtime.workers. n ≤ 0 means GOMAXPROCS.
func WithWorkers(n int) Option { return func(p *Pipeline) { p.workers = n } }

// WithTileSize overrides runtime.tile_size. n ≤ 0 disables tiling.
func WithTileSize(n int) Option { return func(p *Pipeline) { p.tileSize = n } }

// Pipeline holds a validated configuration and the stages built from it.
// It is safe for concurrent use.
type Pipeline struct {
	cfg         config.Config
	tax         *taxonomy.Taxonomy
	stages      []Stage
	consistency *consistency.Corrector
	temporal    temporal.Params
	log         *slog.Logger
	workers     int
	tileSize    int
}

// New validates cfg and builds the stage list.
// Returns an error wrapping config.ErrInvalidConfiguration.
func New(cfg config.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tax, err := cfg.Taxonomy()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfiguration, err)
	}
	sc, err := spatial.New(cfg.Spatial.Params(), cfg.Roles)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfiguration, err)
	}
	cc, err := consistency.New(cfg.ConsistencyParams(), tax)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfiguration, err)
	}
	p := &Pipeline{
		cfg:         cfg,
		tax:         tax,
		consistency: cc,
		temporal:    cfg.Temporal.Params(),
		log:         logging.Discard(),
		workers:     cfg.Runtime.Workers,
		tileSize:    cfg.Runtime.TileSize,
	}
	for _, o := range opts {
		o(p)
	}

	sv, sm := cfg.Sieve.Params(), cfg.Smooth.Params()
	p.stages = []Stage{
		mergeStage{},
		spatialStage{c: sc},
		sieveStage{p: sv, opts: p.tiles(sv.Halo())},
		smoothStage{p: sm, opts: p.tiles(sm.Halo())},
	}
	return p, nil
}

func (p *Pipeline) tiles(halo int) gridalg.TileOptions {
	return gridalg.TileOptions{Size: p.tileSize, Halo: halo, Workers: p.workers}
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	out := make([]string, len(p.stages))
	for i, s := range p.stages {
		out[i] = s.Name()
	}
	return out
}

// Taxonomy returns the configured class scheme.
func (p *Pipeline) Taxonomy() *taxonomy.Taxonomy { return p.tax }

// runLogger returns the logger for a new run and its ID.
func (p *Pipeline) runLogger() (*slog.Logger, string) {
	id := uuid.NewString()
	return p.log.With("run_id", id), id
}

// Refine runs one epoch through the stage chain.
func (p *Pipeline) Refine(ctx context.Context, in EpochInput) (*Refined, error) {
	log, _ := p.runLogger()
	return p.refine(ctx, log, in)
}

// RefineAll refines inputs concurrently, bounded by the worker count. The
// output order matches inputs. The first failure cancels the rest.
func (p *Pipeline) RefineAll(ctx context.Context, inputs []EpochInput) ([]*Refined, error) {
	log, _ := p.runLogger()
	return p.refineAll(ctx, log, inputs)
}

func (p *Pipeline) refineAll(ctx context.Context, log *slog.Logger, inputs []EpochInput) ([]*Refined, error) {
	if len(inputs) == 0 {
		return nil, ErrNoEpochs
	}
	out := make([]*Refined, len(inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	if p.workers > 0 {
		eg.SetLimit(p.workers)
	}
	for i, in := range inputs {
		eg.Go(func() error {
			r, err := p.refine(egCtx, log, in)
			out[i] = r
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// checkClasses rejects any cell that is neither nodata nor a taxonomy class.
func (p *Pipeline) checkClasses(g *raster.Categorical) error {
	var seen [256]bool
	for _, c := range g.Cells {
		if c == taxonomy.Nodata || seen[c] {
			continue
		}
		seen[c] = true
		if err := p.tax.Check(c); err != nil {
			return fmt.Errorf("%w: %w", ErrUnknownClass, err)
		}
	}
	return nil
}

func (p *Pipeline) refine(ctx context.Context, log *slog.Logger, in EpochInput) (*Refined, error) {
	log = log.With("epoch", in.Label)
	if in.Primary == nil || in.Secondary == nil {
		return nil, &StageError{Stage: StageMerge, Epoch: in.Label, Err: ErrMissingInput}
	}
	for _, g := range []*raster.Categorical{in.Primary, in.Secondary} {
		if err := p.checkClasses(g); err != nil {
			return nil, &StageError{Stage: StageMerge, Epoch: in.Label, Err: err}
		}
	}
	st := &State{Input: in}
	for _, s := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, &StageError{Stage: s.Name(), Epoch: in.Label, Err: err}
		}
		sl := log.With("stage", s.Name())
		start := time.Now()
		before := st.Grid
		if before == nil {
			before = in.Primary
		}
		if err := s.Apply(ctx, st); err != nil {
			sl.Error("stage failed", "err", err)
			return nil, &StageError{Stage: s.Name(), Epoch: in.Label, Err: err}
		}
		if r, ok := s.(reporter); ok {
			r.report(sl, st)
		}
		sl.Info("stage done", "changed", changed(before, st.Grid), "elapsed", time.Since(start))
	}
	return &Refined{
		Label:   in.Label,
		Time:    in.Time,
		Grid:    st.Grid,
		Merge:   st.Merge,
		Spatial: st.Spatial,
		Sieve:   st.Sieve,
		Smooth:  st.Smooth,
	}, nil
}

func changed(before, after *raster.Categorical) int {
	d, err := gridalg.Differ(before, after)
	if err != nil {
		return -1
	}
	return d.Count()
}
