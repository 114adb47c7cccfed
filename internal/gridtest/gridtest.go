// Package gridtest builds small grids from readable literals for tests.
package gridtest

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// Cat parses rows of space-separated codes; "-" is nodata.
//
//	gridtest.Cat(t,
//		"8 8 8",
//		"8 3 8",
//		"8 8 8")
func Cat(tb testing.TB, rows ...string) *raster.Categorical {
	tb.Helper()
	out := make([][]taxonomy.Code, len(rows))
	for r, line := range rows {
		for _, f := range strings.Fields(line) {
			if f == "-" {
				out[r] = append(out[r], taxonomy.Nodata)
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v > 254 {
				tb.Fatalf("gridtest: bad code %q in row %d", f, r)
			}
			out[r] = append(out[r], taxonomy.Code(v))
		}
	}
	g, err := raster.CategoricalFromRows(out)
	if err != nil {
		tb.Fatalf("gridtest: %v", err)
	}
	return g
}

// Mask parses rows of '#' (true) and '.' (false).
func Mask(tb testing.TB, rows ...string) *raster.Mask {
	tb.Helper()
	out := make([][]bool, len(rows))
	for r, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		out[r] = make([]bool, len(line))
		for c, ch := range line {
			switch ch {
			case '#':
				out[r][c] = true
			case '.':
			default:
				tb.Fatalf("gridtest: bad mask rune %q in row %d", ch, r)
			}
		}
	}
	m, err := raster.MaskFromRows(out)
	if err != nil {
		tb.Fatalf("gridtest: %v", err)
	}
	return m
}

// Fill returns a cols×rows grid with every cell set to c.
func Fill(tb testing.TB, cols, rows int, c taxonomy.Code) *raster.Categorical {
	tb.Helper()
	g, err := raster.NewCategorical(raster.PixelGeometry(cols, rows), c)
	if err != nil {
		tb.Fatalf("gridtest: %v", err)
	}
	return g
}

// Const returns a continuous grid over geom with every cell set to v.
func Const(tb testing.TB, geom raster.Geometry, v float64) *raster.Continuous {
	tb.Helper()
	g, err := raster.NewContinuous(geom, v)
	if err != nil {
		tb.Fatalf("gridtest: %v", err)
	}
	return g
}

// Random returns a deterministic cols×rows grid with codes drawn from
// classes. Neighboring runs are encouraged (prob. keep) so that patches of
// varied size appear.
func Random(seed int64, cols, rows int, classes []taxonomy.Code, keep float64) *raster.Categorical {
	rng := rand.New(rand.NewSource(seed))
	g, _ := raster.NewCategorical(raster.PixelGeometry(cols, rows), 0)
	for i := range g.Cells {
		switch {
		case i > 0 && rng.Float64() < keep:
			g.Cells[i] = g.Cells[i-1]
		case i >= cols && rng.Float64() < keep:
			g.Cells[i] = g.Cells[i-cols]
		default:
			g.Cells[i] = classes[rng.Intn(len(classes))]
		}
	}
	return g
}

// RandomMask returns a deterministic mask with density p.
func RandomMask(seed int64, cols, rows int, p float64) *raster.Mask {
	rng := rand.New(rand.NewSource(seed))
	m := raster.NewMask(raster.PixelGeometry(cols, rows))
	for i := range m.Cells {
		m.Cells[i] = rng.Float64() < p
	}
	return m
}
