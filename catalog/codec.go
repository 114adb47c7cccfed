package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

type categoricalDoc struct {
	Geometry raster.Geometry `json:"geometry"`
	Cells    []*uint8        `json:"cells"`
}

type continuousDoc struct {
	Geometry raster.Geometry `json:"geometry"`
	Cells    []*float64      `json:"cells"`
}

// DecodeCategorical reads one categorical grid document.
func DecodeCategorical(r io.Reader) (*raster.Categorical, error) {
	var doc categoricalDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	cells := make([]taxonomy.Code, len(doc.Cells))
	for i, v := range doc.Cells {
		if v == nil {
			cells[i] = taxonomy.Nodata
			continue
		}
		cells[i] = taxonomy.Code(*v)
	}
	g, err := raster.WrapCategorical(doc.Geometry, cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return g, nil
}

// DecodeContinuous reads one continuous grid document.
func DecodeContinuous(r io.Reader) (*raster.Continuous, error) {
	var doc continuousDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	cells := make([]float64, len(doc.Cells))
	for i, v := range doc.Cells {
		if v == nil {
			cells[i] = math.NaN()
			continue
		}
		cells[i] = *v
	}
	g, err := raster.WrapContinuous(doc.Geometry, cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return g, nil
}

// EncodeCategorical writes g as a grid document.
func EncodeCategorical(w io.Writer, g *raster.Categorical) error {
	doc := categoricalDoc{Geometry: g.Geometry, Cells: make([]*uint8, len(g.Cells))}
	for i, c := range g.Cells {
		if c != taxonomy.Nodata {
			v := uint8(c)
			doc.Cells[i] = &v
		}
	}
	return json.NewEncoder(w).Encode(doc)
}

// EncodeContinuous writes g as a grid document.
func EncodeContinuous(w io.Writer, g *raster.Continuous) error {
	doc := continuousDoc{Geometry: g.Geometry, Cells: make([]*float64, len(g.Cells))}
	for i := range g.Cells {
		if !math.IsNaN(g.Cells[i]) && !math.IsInf(g.Cells[i], 0) {
			doc.Cells[i] = &g.Cells[i]
		}
	}
	return json.NewEncoder(w).Encode(doc)
}
