package stats

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// Transition is a cross-tabulation of two aligned grids:
// M[i][j] counts cells of class i in the earlier grid and class j in the
// later one. Pairs with nodata on either side are counted in Excluded.
type Transition struct {
	Tax      *taxonomy.Taxonomy
	M        *mat.Dense
	Excluded int
}

// TransitionMatrix cross-tabulates earlier against later.
func TransitionMatrix(earlier, later *raster.Categorical, tax *taxonomy.Taxonomy) (*Transition, error) {
	if err := raster.CheckAligned(earlier, later); err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	n := tax.Len()
	t := &Transition{Tax: tax, M: mat.NewDense(n, n, nil)}
	for k, e := range earlier.Cells {
		l := later.Cells[k]
		if e == taxonomy.Nodata || l == taxonomy.Nodata {
			t.Excluded++
			continue
		}
		i, j := tax.Index(e), tax.Index(l)
		if i < 0 || j < 0 {
			return nil, fmt.Errorf("%w: pair %d→%d", ErrUnknownClass, e, l)
		}
		t.M.Set(i, j, t.M.At(i, j)+1)
	}
	return t, nil
}

// Total returns the number of classified cell pairs.
func (t *Transition) Total() float64 { return mat.Sum(t.M) }

// Stable returns the number of pairs with the same class in both grids.
func (t *Transition) Stable() float64 { return mat.Trace(t.M) }

// ChangedFraction returns the share of classified pairs that changed class.
func (t *Transition) ChangedFraction() float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return 1 - t.Stable()/total
}

// Count returns the number of earlier→later pairs for two codes.
func (t *Transition) Count(earlier, later taxonomy.Code) int {
	i, j := t.Tax.Index(earlier), t.Tax.Index(later)
	if i < 0 || j < 0 {
		return 0
	}
	return int(t.M.At(i, j))
}

// GainsLosses returns, per dense class index, the cells gained (column sum
// minus diagonal) and lost (row sum minus diagonal).
func (t *Transition) GainsLosses() (gains, losses []float64) {
	n, _ := t.M.Dims()
	gains, losses = make([]float64, n), make([]float64, n)
	col := make([]float64, n)
	for i := 0; i < n; i++ {
		d := t.M.At(i, i)
		mat.Col(col, i, t.M)
		gains[i] = floats.Sum(col) - d
		losses[i] = floats.Sum(t.M.RawRowView(i)) - d
	}
	return gains, losses
}

// Kappa returns Cohen's kappa of the two grids.
// Returns ErrEmpty when there are no classified pairs.
func (t *Transition) Kappa() (float64, error) {
	total := t.Total()
	if total == 0 {
		return 0, ErrEmpty
	}
	n, _ := t.M.Dims()
	rows, cols := make([]float64, n), make([]float64, n)
	col := make([]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = floats.Sum(t.M.RawRowView(i))
		mat.Col(col, i, t.M)
		cols[i] = floats.Sum(col)
	}
	po := t.Stable() / total
	pe := floats.Dot(rows, cols) / (total * total)
	if pe == 1 {
		return 1, nil
	}
	return (po - pe) / (1 - pe), nil
}

// String renders the non-zero rows and columns as a tab-aligned table with
// class names.
func (t *Transition) String() string {
	n, _ := t.M.Dims()
	var used []int
	for i := 0; i < n; i++ {
		col := mat.Col(nil, i, t.M)
		if floats.Sum(t.M.RawRowView(i)) > 0 || floats.Sum(col) > 0 {
			used = append(used, i)
		}
	}
	classes := t.Tax.Classes()
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 1, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "from\\to\t")
	for _, j := range used {
		fmt.Fprintf(tw, "%s\t", classes[j].Name)
	}
	fmt.Fprintln(tw)
	for _, i := range used {
		fmt.Fprintf(tw, "%s\t", classes[i].Name)
		for _, j := range used {
			fmt.Fprintf(tw, "%.0f\t", t.M.At(i, j))
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
	return b.String()
}

// Agreement returns the share of classified cell pairs on which a and b
// agree. Returns ErrEmpty when there are none.
func Agreement(a, b *raster.Categorical, tax *taxonomy.Taxonomy) (float64, error) {
	t, err := TransitionMatrix(a, b, tax)
	if err != nil {
		return 0, err
	}
	if t.Total() == 0 {
		return 0, ErrEmpty
	}
	return t.Stable() / t.Total(), nil
}
