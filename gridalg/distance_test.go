package gridalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landcover/internal/gridtest"
	"github.com/katalvlaran/landcover/raster"
)

// bruteDistance is the O(N²) reference for DistanceTransform.
func bruteDistance(m *raster.Mask) []float64 {
	out := make([]float64, len(m.Cells))
	for i := range out {
		x, y := m.Coordinate(i)
		best := math.Inf(1)
		for j, v := range m.Cells {
			if !v {
				continue
			}
			qx, qy := m.Coordinate(j)
			best = math.Min(best, math.Hypot(float64(x-qx), float64(y-qy)))
		}
		out[i] = best
	}
	return out
}

// TestDistanceTransform_MatchesBruteForce checks exactness on random masks.
func TestDistanceTransform_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		m := gridtest.RandomMask(seed, 19, 13, 0.05)
		want := bruteDistance(m)
		got, err := DistanceTransform(m, 1000, MarkInfinite)
		require.NoError(t, err)
		for i := range want {
			if math.IsInf(want[i], 1) {
				assert.True(t, math.IsInf(got.Cells[i], 1))
				continue
			}
			assert.InDelta(t, want[i], got.Cells[i], 1e-9, "seed %d cell %d", seed, i)
		}
	}
}

// TestDistanceTransform_Bound covers both beyond policies and the empty mask.
func TestDistanceTransform_Bound(t *testing.T) {
	m := gridtest.Mask(t, "#.....")
	clamp, err := DistanceTransform(m, 3, ClampToBound)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 3, 3}, clamp.Cells)

	inf, err := DistanceTransform(m, 3, MarkInfinite)
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf.Cells[5], 1))
	assert.Equal(t, 3.0, inf.Cells[3])

	empty, err := DistanceTransform(gridtest.Mask(t, "...", "..."), 10, ClampToBound)
	require.NoError(t, err)
	for _, d := range empty.Cells {
		assert.Equal(t, 10.0, d)
	}

	_, err = DistanceTransform(m, -1, ClampToBound)
	assert.ErrorIs(t, err, ErrBadRadius)
}

// TestWithinDistance includes the diagonal √2 neighbors at distance 1.5.
func TestWithinDistance(t *testing.T) {
	m := gridtest.Mask(t,
		".....",
		"..#..",
		".....")
	got, err := WithinDistance(m, 1.5, 10)
	require.NoError(t, err)
	assert.True(t, got.Equal(gridtest.Mask(t,
		".###.",
		".###.",
		".###.")), got.String())
}
