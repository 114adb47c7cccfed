package consistency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/internal/gridtest"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// block returns a cols×rows grid of bg with a size×size square of fg at (x0,y0).
func block(t *testing.T, cols, rows int, bg, fg taxonomy.Code, x0, y0, size int) *raster.Categorical {
	g := gridtest.Fill(t, cols, rows, bg)
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			g.Set(x, y, fg)
		}
	}
	return g
}

// TestCorrect_SmallChangeReverts: a 3×3 built-up→water block is below the
// change-patch minimum and reverts to the later map.
func TestCorrect_SmallChangeReverts(t *testing.T) {
	earlier := block(t, 10, 10, taxonomy.Forest, taxonomy.BuiltUp, 3, 3, 3)
	later := block(t, 10, 10, taxonomy.Forest, taxonomy.Lake, 3, 3, 3)

	for name, rules := range map[string][]taxonomy.TransitionRule{
		"whitelisted":  taxonomy.DefaultPlausibleTransitions(),
		"no-whitelist": nil,
	} {
		p := DefaultParams()
		p.Transitions = rules
		res, err := Correct(later, earlier, p)
		require.NoError(t, err, name)
		assert.True(t, later.Equal(res.Corrected), name)
		assert.Equal(t, 9, res.Stats.Initial, name)
		assert.Zero(t, res.Stats.TrueChange, name)
		assert.Equal(t, 9, res.Stats.Suppressed(), name)
	}
}

// TestCorrect_LargeChangeSurvives keeps a coherent implausible change. The
// circular opening trims the four block corners, which follow the later map.
func TestCorrect_LargeChangeSurvives(t *testing.T) {
	earlier := gridtest.Fill(t, 12, 12, taxonomy.Forest)
	later := block(t, 12, 12, taxonomy.Forest, taxonomy.BuiltUp, 2, 2, 7)
	res, err := Correct(later, earlier, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, Stats{Initial: 49, Refined: 49, Opened: 45, TrueChange: 45}, res.Stats)
	for _, xy := range [][2]int{{2, 2}, {8, 2}, {2, 8}, {8, 8}} {
		assert.Equal(t, taxonomy.BuiltUp, res.Corrected.At(xy[0], xy[1]), "corner %v", xy)
	}
	assert.Equal(t, 144-4, res.Corrected.Count(taxonomy.Forest))
}

// TestCorrect_OpeningKernelShape: a radius-2 diamond of change survives the
// default circular opening intact but loses its tips to a square one.
func TestCorrect_OpeningKernelShape(t *testing.T) {
	earlier := gridtest.Fill(t, 11, 11, taxonomy.BareLand)
	later := earlier.Clone()
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			if abs(x-5)+abs(y-5) <= 2 {
				later.Set(x, y, taxonomy.Grassland)
			}
		}
	}
	p := DefaultParams()
	p.ChangePatchMinSize = 9
	require.Equal(t, gridalg.Circle, p.OpeningKernel)

	res, err := Correct(later, earlier, p)
	require.NoError(t, err)
	assert.Equal(t, 13, res.Stats.Initial)
	assert.Equal(t, 13, res.Stats.TrueChange)

	p.OpeningKernel = gridalg.Square
	res, err = Correct(later, earlier, p)
	require.NoError(t, err)
	assert.Equal(t, 9, res.Stats.TrueChange)
	assert.Equal(t, taxonomy.Grassland, res.Corrected.At(5, 3), "tip follows the later map")
}

// TestCorrect_IdenticalEpochs is a fixed point: nothing disagrees, nothing
// changes.
func TestCorrect_IdenticalEpochs(t *testing.T) {
	later := gridtest.Random(3, 30, 20, []taxonomy.Code{0, 3, 6, 8, 9}, 0.7)
	res, err := Correct(later, later.Clone(), DefaultParams())
	require.NoError(t, err)
	assert.True(t, later.Equal(res.Corrected))
	assert.False(t, res.Initial.Any())
	assert.False(t, res.TrueChange.Any())
	assert.Equal(t, Stats{}, res.Stats)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TestCorrect_PlausibleMasks covers stable cropland and whitelist entries.
func TestCorrect_PlausibleMasks(t *testing.T) {
	earlier := gridtest.Cat(t, "3 8 6 6 8")
	later := gridtest.Cat(t, "7 12 8 9 6")
	res, err := Correct(later, earlier, DefaultParams())
	require.NoError(t, err)
	// paddy→dry cropland, forest→swamp, urban→forest, urban→grassland
	assert.Equal(t, []bool{true, true, true, true, false}, res.Plausible.Cells)
	assert.Equal(t, []bool{false, false, false, false, true}, res.Refined.Cells)
	assert.Equal(t, 4, res.Stats.Plausible)
}

// TestCorrect_Speckle removes isolated disagreements by opening.
func TestCorrect_Speckle(t *testing.T) {
	earlier := gridtest.Fill(t, 20, 20, taxonomy.Forest)
	later := block(t, 20, 20, taxonomy.Forest, taxonomy.BuiltUp, 2, 2, 8)
	later.Set(15, 15, taxonomy.BareLand)
	later.Set(17, 4, taxonomy.BareLand)
	p := DefaultParams()
	res, err := Correct(later, earlier, p)
	require.NoError(t, err)
	assert.Equal(t, 66, res.Stats.Refined)
	assert.Equal(t, 60, res.Stats.Opened, "speckle and block corners removed")
	assert.Equal(t, taxonomy.BareLand, res.Corrected.At(15, 15), "speckle follows the later map")
	assert.Equal(t, taxonomy.Forest, res.Corrected.At(4, 4), "change keeps the earlier map")
}

// TestCorrect_Containment checks the mask chain on random epochs.
func TestCorrect_Containment(t *testing.T) {
	classes := []taxonomy.Code{0, 1, 3, 6, 7, 8, 9, 10}
	p := DefaultParams()
	p.ChangePatchMinSize = 4
	for seed := int64(1); seed <= 8; seed++ {
		later := gridtest.Random(seed, 40, 30, classes, 0.7)
		earlier := gridtest.Random(seed+50, 40, 30, classes, 0.7)
		res, err := Correct(later, earlier, p)
		require.NoError(t, err)

		assert.True(t, res.TrueChange.SubsetOf(res.Opened), "seed %d", seed)
		assert.True(t, res.Opened.SubsetOf(res.Refined), "seed %d", seed)
		assert.True(t, res.Refined.SubsetOf(res.Initial), "seed %d", seed)
		for i, tc := range res.TrueChange.Cells {
			want := later.Cells[i]
			if tc {
				want = earlier.Cells[i]
			}
			require.Equal(t, want, res.Corrected.Cells[i], "seed %d cell %d", seed, i)
		}
	}
}

// TestCorrect_Errors covers geometry and parameter failures.
func TestCorrect_Errors(t *testing.T) {
	_, err := Correct(gridtest.Cat(t, "1 2"), gridtest.Cat(t, "1 2 3"), DefaultParams())
	assert.ErrorIs(t, err, raster.ErrExtentMismatch)

	p := DefaultParams()
	p.ChangePatchMinSize = p.MaxComponentSize + 1
	_, err = Correct(gridtest.Cat(t, "1"), gridtest.Cat(t, "1"), p)
	assert.ErrorIs(t, err, ErrInvalidParams)

	p = DefaultParams()
	p.Transitions = append(p.Transitions, taxonomy.TransitionRule{
		Name: "bogus", From: taxonomy.NewSet(40), To: taxonomy.NewSet(8),
	})
	_, err = New(p, taxonomy.Default())
	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.ErrorIs(t, err, taxonomy.ErrUnknownCode)
}
