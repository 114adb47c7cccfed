package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// Areas holds per-class cell counts of one grid.
type Areas struct {
	Tax       *taxonomy.Taxonomy
	Counts    []float64 // by dense class index
	Nodata    int
	PixelArea float64 // map units² per cell
}

// ClassAreas counts the cells of every class of g.
func ClassAreas(g *raster.Categorical, tax *taxonomy.Taxonomy) (Areas, error) {
	a := Areas{Tax: tax, Counts: make([]float64, tax.Len()), PixelArea: g.PixelArea()}
	for _, c := range g.Cells {
		if c == taxonomy.Nodata {
			a.Nodata++
			continue
		}
		i := tax.Index(c)
		if i < 0 {
			return Areas{}, fmt.Errorf("%w: %d", ErrUnknownClass, c)
		}
		a.Counts[i]++
	}
	return a, nil
}

// Cells returns the count of class c.
func (a Areas) Cells(c taxonomy.Code) int {
	if i := a.Tax.Index(c); i >= 0 {
		return int(a.Counts[i])
	}
	return 0
}

// Area returns the area of class c in map units².
func (a Areas) Area(c taxonomy.Code) float64 {
	return float64(a.Cells(c)) * a.PixelArea
}

// Fraction returns the share of classified cells held by c.
func (a Areas) Fraction(c taxonomy.Code) float64 {
	total := floats.Sum(a.Counts)
	if total == 0 {
		return 0
	}
	return float64(a.Cells(c)) / total
}
