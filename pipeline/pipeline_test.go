package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landcover/config"
	"github.com/katalvlaran/landcover/internal/gridtest"
	"github.com/katalvlaran/landcover/internal/logging"
	"github.com/katalvlaran/landcover/merge"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/sieve"
	"github.com/katalvlaran/landcover/smooth"
	"github.com/katalvlaran/landcover/spatial"
	"github.com/katalvlaran/landcover/taxonomy"
	"github.com/katalvlaran/landcover/temporal"
)

var classes = []taxonomy.Code{
	taxonomy.River, taxonomy.Lake, taxonomy.Paddy, taxonomy.BuiltUp,
	taxonomy.DryCropland, taxonomy.Forest, taxonomy.Grassland, taxonomy.HerbaceousWetland,
}

func testConfig() config.Config {
	c := config.Default()
	c.Temporal.Boundary = "two-point"
	return c
}

func newPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	p, err := New(testConfig(), opts...)
	require.NoError(t, err)
	return p
}

// input builds a deterministic epoch whose primary has scattered gaps.
func input(t testing.TB, label string, year int, seed int64) EpochInput {
	t.Helper()
	const w, h = 40, 30
	primary := gridtest.Random(seed, w, h, classes, 0.8)
	gaps := gridtest.RandomMask(seed+1, w, h, 0.1)
	for i, g := range gaps.Cells {
		if g {
			primary.Cells[i] = taxonomy.Nodata
		}
	}
	return EpochInput{
		Label:     label,
		Time:      time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
		Primary:   primary,
		Secondary: gridtest.Random(seed+2, w, h, classes, 0.9),
		Topo: spatial.Topography{
			Slope: gridtest.Const(t, primary.Geometry, 1),
			TWI:   gridtest.Const(t, primary.Geometry, 12),
		},
	}
}

func TestNew_ValidatesConfiguration(t *testing.T) {
	_, err := New(config.Default())
	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)
	assert.ErrorIs(t, err, temporal.ErrBoundaryPolicyRequired)

	p := newPipeline(t)
	assert.Equal(t, []string{StageMerge, StageSpatial, StageSieve, StageSmooth}, p.Stages())
}

// TestRefine_EqualsStageComposition runs the stages by hand and compares.
func TestRefine_EqualsStageComposition(t *testing.T) {
	cfg := testConfig()
	in := input(t, "2010", 2010, 7)

	m, err := merge.Merge(in.Primary, in.Secondary)
	require.NoError(t, err)
	sc, err := spatial.New(cfg.Spatial.Params(), cfg.Roles)
	require.NoError(t, err)
	rep, err := sc.Correct(m.Grid, in.Topo)
	require.NoError(t, err)
	sv, err := sieve.Sieve(rep.Grid, cfg.Sieve.Params())
	require.NoError(t, err)
	sm, err := smooth.Smooth(sv.Grid, cfg.Smooth.Params())
	require.NoError(t, err)

	r, err := newPipeline(t).Refine(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, r.Grid.Equal(sm.Grid))
	assert.Equal(t, m.Filled, r.Merge.Filled)
	assert.Equal(t, rep.Changed(), r.Spatial.Changed())
	assert.Equal(t, sv.Replaced, r.Sieve.Replaced)
	assert.Equal(t, sm.Changed, r.Smooth.Changed)
	assert.Equal(t, 0, r.Grid.CountNodata())
}

// TestRefine_TiledMatchesWhole: sieve and smooth over haloed tiles give the
// whole-grid result.
func TestRefine_TiledMatchesWhole(t *testing.T) {
	in := input(t, "2010", 2010, 11)
	whole, err := newPipeline(t, WithTileSize(0)).Refine(context.Background(), in)
	require.NoError(t, err)
	for _, size := range []int{5, 8, 13} {
		tiled, err := newPipeline(t, WithTileSize(size), WithWorkers(3)).Refine(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, tiled.Grid.Equal(whole.Grid), "tile size %d", size)
		assert.Equal(t, whole.Sieve, tiled.Sieve, "tile size %d", size)
	}
}

func TestRefine_Errors(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()

	in := input(t, "2000", 2000, 1)
	in.Secondary = nil
	_, err := p.Refine(ctx, in)
	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, StageMerge, se.Stage)
	assert.Equal(t, "2000", se.Epoch)
	assert.ErrorIs(t, err, ErrMissingInput)

	in = input(t, "2005", 2005, 1)
	in.Topo.TWI = nil
	_, err = p.Refine(ctx, in)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, StageSpatial, se.Stage)
	assert.ErrorIs(t, err, spatial.ErrMissingAuxiliaryGrid)

	in = input(t, "2006", 2006, 1)
	in.Secondary = gridtest.Fill(t, 4, 4, taxonomy.Forest)
	_, err = p.Refine(ctx, in)
	assert.ErrorIs(t, err, raster.ErrExtentMismatch)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = p.Refine(cancelled, input(t, "2007", 2007, 1))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRefine_UnknownClass fails in merge before any rule sees the grid.
func TestRefine_UnknownClass(t *testing.T) {
	p := newPipeline(t)
	for _, secondary := range []bool{false, true} {
		in := input(t, "2010", 2010, 3)
		g := in.Primary
		if secondary {
			g = in.Secondary
		}
		for i := 0; i < len(g.Cells); i += 17 {
			g.Cells[i] = 42
		}
		_, err := p.Refine(context.Background(), in)
		var se *StageError
		require.True(t, errors.As(err, &se), "secondary=%v", secondary)
		assert.Equal(t, StageMerge, se.Stage)
		assert.Equal(t, "2010", se.Epoch)
		assert.ErrorIs(t, err, ErrUnknownClass)
		assert.ErrorIs(t, err, taxonomy.ErrUnknownCode)
	}

	in := input(t, "2011", 2011, 3)
	in.Primary.Cells[0] = taxonomy.Nodata
	_, err := p.Refine(context.Background(), in)
	assert.NoError(t, err)
}

func TestRefineAll_KeepsOrder(t *testing.T) {
	p := newPipeline(t, WithWorkers(2))
	inputs := []EpochInput{input(t, "a", 2000, 1), input(t, "b", 2010, 2), input(t, "c", 2020, 3)}
	out, err := p.RefineAll(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, r := range out {
		assert.Equal(t, inputs[i].Label, r.Label)
		single, err := p.Refine(context.Background(), inputs[i])
		require.NoError(t, err)
		assert.True(t, single.Grid.Equal(r.Grid))
	}

	_, err = p.RefineAll(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoEpochs)

	inputs[1].Primary = nil
	_, err = p.RefineAll(context.Background(), inputs)
	assert.ErrorIs(t, err, ErrMissingInput)
}

// TestLogging_RunAttributes captures JSON records and checks attribution.
func TestLogging_RunAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelDebug, JSON: true, Writer: &buf})
	p := newPipeline(t, WithLogger(log))

	in := input(t, "2015", 2015, 5)
	in.Primary.Cells[0] = taxonomy.Nodata
	in.Secondary.Cells[0] = taxonomy.Nodata
	_, err := p.Refine(context.Background(), in)
	require.NoError(t, err)

	var runID string
	stages := map[string]bool{}
	warned := false
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		id, ok := rec["run_id"].(string)
		require.True(t, ok, "record without run_id: %v", rec)
		if runID == "" {
			runID = id
		}
		assert.Equal(t, runID, id)
		assert.Equal(t, "2015", rec["epoch"])
		if s, ok := rec["stage"].(string); ok && rec["msg"] == "stage done" {
			stages[s] = true
		}
		if rec["level"] == "WARN" && rec["msg"] == "coverage gap" {
			warned = true
			assert.EqualValues(t, 1, rec["gap_cells"])
		}
	}
	_, err = uuid.Parse(runID)
	assert.NoError(t, err)
	assert.True(t, warned)
	assert.Equal(t, map[string]bool{StageMerge: true, StageSpatial: true, StageSieve: true, StageSmooth: true}, stages)
}

func TestHarmonize(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	refined, err := p.RefineAll(ctx, []EpochInput{
		input(t, "2020", 2020, 30),
		input(t, "2000", 2000, 10),
		input(t, "2010", 2010, 20),
	})
	require.NoError(t, err)

	prod, err := p.Harmonize(ctx, refined, "")
	require.NoError(t, err)
	_, err = uuid.Parse(prod.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "2020", prod.Reference)

	require.Len(t, prod.Epochs, 3)
	assert.Equal(t, []string{"2000", "2010", "2020"}, []string{prod.Epochs[0].Label, prod.Epochs[1].Label, prod.Epochs[2].Label})
	assert.True(t, prod.Epochs[2].Grid.Equal(refined[0].Grid), "reference must pass through unchanged")

	require.Len(t, prod.Changes, 2)
	for _, c := range prod.Changes {
		assert.True(t, c.TrueChange.SubsetOf(c.Initial), c.Label)
		assert.LessOrEqual(t, c.Stats.TrueChange, c.Stats.Initial)
	}
	assert.Equal(t, "2000", prod.Changes[0].Label)

	require.Len(t, prod.Steps, 2)
	assert.Equal(t, "2010", prod.Steps[1].From)
	assert.Equal(t, "2020", prod.Steps[1].To)
	assert.Equal(t, float64(40*30), prod.Steps[0].Total()+float64(prod.Steps[0].Excluded))
	require.Len(t, prod.Areas, 3)
}

func TestHarmonize_Errors(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	_, err := p.Harmonize(ctx, nil, "")
	assert.ErrorIs(t, err, ErrNoEpochs)

	r, err := p.Refine(ctx, input(t, "2000", 2000, 1))
	require.NoError(t, err)
	_, err = p.Harmonize(ctx, []*Refined{r}, "1990")
	assert.ErrorIs(t, err, temporal.ErrUnknownReference)
	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, StageTemporal, se.Stage)
	assert.Equal(t, "1990", se.Epoch)

	dup, err := p.Refine(ctx, input(t, "2000b", 2000, 2))
	require.NoError(t, err)
	_, err = p.Harmonize(ctx, []*Refined{r, dup}, "2000")
	assert.ErrorIs(t, err, temporal.ErrDuplicateTime)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, StageTemporal, se.Stage)
	assert.Equal(t, "2000b", se.Epoch)
}

// TestRun shares one run ID across refine and harmonize records.
func TestRun(t *testing.T) {
	var buf bytes.Buffer
	p := newPipeline(t, WithLogger(logging.New(logging.Config{Level: logging.LevelInfo, JSON: true, Writer: &buf})))
	prod, err := p.Run(context.Background(), []EpochInput{
		input(t, "2000", 2000, 1),
		input(t, "2020", 2020, 2),
	}, "2020")
	require.NoError(t, err)

	dec := json.NewDecoder(&buf)
	n := 0
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		assert.Equal(t, prod.RunID, rec["run_id"])
		n++
	}
	assert.Greater(t, n, 8)
}
