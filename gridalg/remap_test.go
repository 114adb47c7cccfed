package gridalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landcover/internal/gridtest"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// TestRemap maps listed codes and defaults the rest, nodata included.
func TestRemap(t *testing.T) {
	g := gridtest.Cat(t, "0 1 4 5 6 -")
	got, err := Remap(g, []taxonomy.Code{0, 1, 4, 5}, []taxonomy.Code{1, 1, 1, 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, []taxonomy.Code{1, 1, 1, 1, 0, 0}, got.Cells)

	_, err = Remap(g, []taxonomy.Code{0}, nil, 0)
	assert.ErrorIs(t, err, ErrRemapLength)
}

// TestMasks covers SetMask, ClassMask, NodataMask and Differ.
func TestMasks(t *testing.T) {
	a := gridtest.Cat(t, "0 1 2 -")
	b := gridtest.Cat(t, "0 2 2 3")

	assert.Equal(t, []bool{true, true, false, false}, SetMask(a, taxonomy.NewSet(0, 1)).Cells)
	assert.Equal(t, []bool{false, false, true, false}, ClassMask(a, 2).Cells)
	assert.Equal(t, []bool{false, false, false, true}, NodataMask(a).Cells)

	d, err := Differ(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, d.Cells)

	_, err = Differ(a, gridtest.Cat(t, "0 1"))
	assert.ErrorIs(t, err, raster.ErrExtentMismatch)
}

// TestWhereAndOverlay covers masked replacement and gap filling.
func TestWhereAndOverlay(t *testing.T) {
	base := gridtest.Cat(t, "1 2 - -")
	fill := gridtest.Cat(t, "7 7 7 -")
	m := gridtest.Mask(t, "#.#.")

	w, err := Where(base, m, fill)
	require.NoError(t, err)
	assert.Equal(t, []taxonomy.Code{7, 2, 7, taxonomy.Nodata}, w.Cells)

	wc, n, err := WhereConst(base, m, 1)
	require.NoError(t, err)
	assert.Equal(t, []taxonomy.Code{1, 2, 1, taxonomy.Nodata}, wc.Cells)
	assert.Equal(t, 1, n, "cell 0 already held 1")

	o, err := Overlay(base, fill)
	require.NoError(t, err)
	assert.Equal(t, []taxonomy.Code{1, 2, 7, taxonomy.Nodata}, o.Cells)
	assert.Equal(t, taxonomy.Nodata, base.Cells[2], "input modified")
}
