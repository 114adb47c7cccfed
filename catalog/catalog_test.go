package catalog

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landcover/internal/gridtest"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

func TestCodec_CategoricalRoundTripKeepsNodata(t *testing.T) {
	g := gridtest.Cat(t,
		"8 - 3",
		"7 7 -")
	var buf bytes.Buffer
	require.NoError(t, EncodeCategorical(&buf, g))
	assert.Contains(t, buf.String(), `"cells":[8,null,3,7,7,null]`)

	back, err := DecodeCategorical(&buf)
	require.NoError(t, err)
	assert.True(t, back.Equal(g))
}

func TestCodec_ContinuousNullIsNaN(t *testing.T) {
	in := `{"geometry":{"cols":2,"rows":1,"crs":"","transform":{"pixel_width":1,"pixel_height":-1}},"cells":[1.5,null]}`
	g, err := DecodeContinuous(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1.5, g.At(0, 0))
	assert.True(t, math.IsNaN(g.At(1, 0)))
}

func TestCodec_Malformed(t *testing.T) {
	cases := map[string]string{
		"syntax":     `{"geometry":`,
		"cell count": `{"geometry":{"cols":2,"rows":2,"transform":{"pixel_width":1,"pixel_height":-1}},"cells":[1,2,3]}`,
		"geometry":   `{"geometry":{"cols":0,"rows":2,"transform":{"pixel_width":1,"pixel_height":-1}},"cells":[]}`,
		"code range": `{"geometry":{"cols":1,"rows":1,"transform":{"pixel_width":1,"pixel_height":-1}},"cells":[300]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeCategorical(strings.NewReader(in))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestMemory_Statuses(t *testing.T) {
	geom := raster.PixelGeometry(3, 2)
	m := NewMemory(&geom)
	m.PutCategorical("ok", gridtest.Fill(t, 3, 2, 8))
	m.PutCategorical("small", gridtest.Fill(t, 2, 2, 8))
	m.PutContinuous("slope", gridtest.Const(t, geom, 2))

	assert.Equal(t, Found, m.Categorical("ok").Status)
	assert.Equal(t, NotFound, m.Categorical("missing").Status)

	bad := m.Categorical("small")
	require.Equal(t, Malformed, bad.Status)
	assert.ErrorIs(t, bad.Err, raster.ErrExtentMismatch)

	s := m.Continuous("slope")
	require.Equal(t, Found, s.Status)
	assert.Equal(t, 2.0, s.Grid.At(1, 1))
	assert.Equal(t, NotFound, m.Continuous("twi").Status)
}

func TestRequire(t *testing.T) {
	m := NewMemory(nil)
	m.PutCategorical("a", gridtest.Fill(t, 1, 1, 8))

	g, err := Require(m.Categorical("a"))
	require.NoError(t, err)
	assert.Equal(t, taxonomy.Code(8), g.At(0, 0))

	_, err = Require(m.Categorical("b"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = RequireContinuous(LookupContinuous{ID: "c", Status: Malformed, Err: raster.ErrCellCount})
	assert.ErrorIs(t, err, ErrMalformed)
	assert.ErrorIs(t, err, raster.ErrCellCount)
}

func TestDir_ReadWrite(t *testing.T) {
	root := t.TempDir()
	d := NewDir(root, nil)
	g := gridtest.Cat(t, "1 2", "- 4")
	require.NoError(t, d.WriteCategorical("2020/primary", g))

	l := d.Categorical("2020/primary")
	require.Equal(t, Found, l.Status, "err: %v", l.Err)
	assert.True(t, l.Grid.Equal(g))

	assert.Equal(t, NotFound, d.Categorical("2021/primary").Status)

	require.NoError(t, os.WriteFile(filepath.Join(root, "broken.json"), []byte("{"), 0o644))
	assert.Equal(t, Malformed, d.Categorical("broken").Status)

	esc := d.Categorical("../outside")
	assert.Equal(t, Malformed, esc.Status)
	assert.Error(t, esc.Err)
}

func TestDir_ExpectedGeometry(t *testing.T) {
	root := t.TempDir()
	geom := raster.PixelGeometry(2, 2)
	geom.CRS = "EPSG:32647"
	d := NewDir(root, &geom)
	require.NoError(t, d.WriteContinuous("slope", gridtest.Const(t, raster.PixelGeometry(2, 2), 1)))

	l := d.Continuous("slope")
	require.Equal(t, Malformed, l.Status)
	assert.ErrorIs(t, l.Err, raster.ErrExtentMismatch)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "not-found", NotFound.String())
	assert.Equal(t, "malformed", Malformed.String())
}
