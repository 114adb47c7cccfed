package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landcover/internal/gridtest"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

func year(y int) time.Time { return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC) }

func series(t *testing.T, ref string, rows ...string) *Series {
	t.Helper()
	years := []int{1990, 2000, 2010, 2020, 2024}
	epochs := make([]Epoch, len(rows))
	for i, r := range rows {
		epochs[i] = Epoch{Time: year(years[i]), Label: string(rune('a' + i)), Grid: gridtest.Cat(t, r)}
	}
	s, err := NewSeries(epochs, ref)
	require.NoError(t, err)
	return s
}

func cells(es []Epoch) [][]taxonomy.Code {
	out := make([][]taxonomy.Code, len(es))
	for i, e := range es {
		out[i] = e.Grid.Cells
	}
	return out
}

// TestSmooth_InteriorMajority: majority of three from the unsmoothed series,
// centre on a three-way split.
func TestSmooth_InteriorMajority(t *testing.T) {
	s := series(t, "e",
		"8 8 1 3",
		"3 8 2 3",
		"8 9 3 1",
		"8 8 4 1",
		"6 6 6 6")
	out, err := Smooth(s, Params{Boundary: PassThrough})
	require.NoError(t, err)
	assert.Equal(t, [][]taxonomy.Code{
		{8, 8, 1, 3},
		{8, 8, 2, 3},
		{8, 8, 3, 1},
		{8, 8, 4, 1},
		{6, 6, 6, 6},
	}, cells(out))
}

// TestSmooth_ReferenceIdentical keeps the reference bit-identical wherever
// it sits.
func TestSmooth_ReferenceIdentical(t *testing.T) {
	for _, ref := range []string{"a", "c", "e"} {
		s := series(t, ref, "1 2", "3 3", "1 2", "3 3", "1 2")
		out, err := Smooth(s, Params{Boundary: TwoPoint})
		require.NoError(t, err)
		idx := s.Reference
		assert.True(t, s.Epochs[idx].Grid.Equal(out[idx].Grid), "ref %s", ref)
		assert.NotSame(t, s.Epochs[idx].Grid, out[idx].Grid)
	}
}

// TestSmooth_Boundary compares the two policies on the first and last epoch.
func TestSmooth_Boundary(t *testing.T) {
	rows := []string{"1 1 1", "8 8 2", "8 9 2", "7 7 7"}
	s := series(t, "b", rows...)

	pass, err := Smooth(s, Params{Boundary: PassThrough})
	require.NoError(t, err)
	assert.Equal(t, []taxonomy.Code{1, 1, 1}, pass[0].Grid.Cells)
	assert.Equal(t, []taxonomy.Code{7, 7, 7}, pass[3].Grid.Cells)

	two, err := Smooth(s, Params{Boundary: TwoPoint})
	require.NoError(t, err)
	assert.Equal(t, []taxonomy.Code{8, 1, 2}, two[0].Grid.Cells, "first adopts where epochs 1 and 2 agree")
	assert.Equal(t, []taxonomy.Code{8, 7, 2}, two[3].Grid.Cells, "last adopts where epochs 2 and 1 agree")
	assert.Equal(t, []taxonomy.Code{8, 9, 2}, two[2].Grid.Cells, "three-way split keeps centre")

	short := series(t, "b", "1 1", "2 2")
	out, err := Smooth(short, Params{Boundary: TwoPoint})
	require.NoError(t, err)
	assert.Equal(t, []taxonomy.Code{1, 1}, out[0].Grid.Cells)
}

// TestSmooth_ConstantSeries is a fixed point under both policies.
func TestSmooth_ConstantSeries(t *testing.T) {
	rows := []string{"8 3 1 6", "8 3 1 6", "8 3 1 6", "8 3 1 6", "8 3 1 6"}
	for _, b := range []BoundaryPolicy{PassThrough, TwoPoint} {
		s := series(t, "c", rows...)
		out, err := Smooth(s, Params{Boundary: b})
		require.NoError(t, err)
		require.Len(t, out, len(rows))
		for i, e := range out {
			assert.True(t, s.Epochs[i].Grid.Equal(e.Grid), "%s epoch %d", b, i)
			assert.Equal(t, s.Epochs[i].Label, e.Label)
		}
	}
}

// TestSmooth_BoundaryRequired rejects the zero policy.
func TestSmooth_BoundaryRequired(t *testing.T) {
	s := series(t, "a", "1", "2", "3")
	_, err := Smooth(s, Params{})
	assert.ErrorIs(t, err, ErrBoundaryPolicyRequired)
}

// TestNewSeries sorts by time and validates the list.
func TestNewSeries(t *testing.T) {
	g := gridtest.Cat(t, "1 2")
	s, err := NewSeries([]Epoch{
		{Time: year(2024), Label: "2024", Grid: g},
		{Time: year(2000), Label: "2000", Grid: g},
		{Time: year(2010), Label: "2010", Grid: g},
	}, "2024")
	require.NoError(t, err)
	assert.Equal(t, []string{"2000", "2010", "2024"}, s.Labels())
	assert.Equal(t, 2, s.Reference)

	latest, err := NewSeries([]Epoch{
		{Time: year(2024), Label: "2024", Grid: g},
		{Time: year(2000), Label: "2000", Grid: g},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, latest.Reference)

	_, err = NewSeries(nil, "x")
	assert.ErrorIs(t, err, ErrEmptySeries)
	_, err = NewSeries([]Epoch{{Time: year(1), Label: "a", Grid: g}}, "b")
	assert.ErrorIs(t, err, ErrUnknownReference)
	_, err = NewSeries([]Epoch{{Time: year(1), Label: "a"}}, "a")
	assert.ErrorIs(t, err, ErrMissingGrid)
	_, err = NewSeries([]Epoch{{Time: year(1), Label: "a", Grid: g}, {Time: year(1), Label: "b", Grid: g}}, "a")
	assert.ErrorIs(t, err, ErrDuplicateTime)
	var ee *EpochError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "b", ee.Label)
	_, err = NewSeries([]Epoch{
		{Time: year(1), Label: "a", Grid: g},
		{Time: year(2), Label: "b", Grid: gridtest.Cat(t, "1", "2")},
	}, "a")
	assert.ErrorIs(t, err, raster.ErrExtentMismatch)
}

// TestBoundaryPolicy_Text round-trips the policy names.
func TestBoundaryPolicy_Text(t *testing.T) {
	for _, b := range []BoundaryPolicy{PassThrough, TwoPoint} {
		text, err := b.MarshalText()
		require.NoError(t, err)
		var got BoundaryPolicy
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, b, got)
	}
	var b BoundaryPolicy
	assert.Error(t, b.UnmarshalText([]byte("median")))
}
