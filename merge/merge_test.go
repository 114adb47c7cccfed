package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landcover/internal/gridtest"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// TestMerge_FillsGaps checks out(x) = primary(x) if classified else secondary(x).
func TestMerge_FillsGaps(t *testing.T) {
	p := gridtest.Cat(t,
		"8 - 3",
		"- 7 7")
	s := gridtest.Cat(t,
		"1 2 2",
		"6 6 6")
	res, err := Merge(p, s)
	require.NoError(t, err)
	assert.Equal(t, []taxonomy.Code{8, 2, 3, 6, 7, 7}, res.Grid.Cells)
	assert.Equal(t, 0, res.GapCount)
	assert.Equal(t, 2, res.Filled)
	assert.NoError(t, res.Warning())
	assert.False(t, res.Gaps.Any())
}

// TestMerge_CoverageGap reports nodata present in both sources.
func TestMerge_CoverageGap(t *testing.T) {
	p := gridtest.Cat(t, "- - 3")
	s := gridtest.Cat(t, "1 - -")
	res, err := Merge(p, s)
	require.NoError(t, err)
	assert.Equal(t, []taxonomy.Code{1, taxonomy.Nodata, 3}, res.Grid.Cells)
	assert.Equal(t, 1, res.GapCount)
	assert.Equal(t, []bool{false, true, false}, res.Gaps.Cells)
	assert.ErrorIs(t, res.Warning(), ErrCoverageGap)
}

// TestMerge_Property checks the overlay law on random inputs.
func TestMerge_Property(t *testing.T) {
	classes := []taxonomy.Code{0, 3, 8, taxonomy.Nodata}
	for seed := int64(1); seed <= 10; seed++ {
		p := gridtest.Random(seed, 17, 11, classes, 0.3)
		s := gridtest.Random(seed+100, 17, 11, classes[:3], 0.3)
		res, err := Merge(p, s)
		require.NoError(t, err)
		for i := range p.Cells {
			want := p.Cells[i]
			if want == taxonomy.Nodata {
				want = s.Cells[i]
			}
			require.Equal(t, want, res.Grid.Cells[i], "seed %d cell %d", seed, i)
		}
		assert.Zero(t, res.GapCount, "secondary is gap-free")
	}
}

// TestMerge_ExtentMismatch is fatal.
func TestMerge_ExtentMismatch(t *testing.T) {
	_, err := Merge(gridtest.Cat(t, "1 1"), gridtest.Cat(t, "1", "1"))
	assert.ErrorIs(t, err, raster.ErrExtentMismatch)
}
