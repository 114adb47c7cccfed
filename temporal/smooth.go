package temporal

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/landcover/raster"
)

// BoundaryPolicy decides how epochs with a single neighbor are smoothed.
// The zero value is rejected: the choice must be explicit.
type BoundaryPolicy int

const (
	BoundaryUnset BoundaryPolicy = iota
	// PassThrough keeps boundary epochs unchanged.
	PassThrough
	// TwoPoint adopts the neighbor's value where the neighbor and the next
	// epoch inward agree. With fewer than three epochs it passes through.
	TwoPoint
)

func (b BoundaryPolicy) String() string {
	switch b {
	case PassThrough:
		return "pass-through"
	case TwoPoint:
		return "two-point"
	}
	return "unset"
}

// ParseBoundaryPolicy maps "pass-through" and "two-point" to a policy.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pass-through", "passthrough":
		return PassThrough, nil
	case "two-point", "twopoint":
		return TwoPoint, nil
	case "", "unset":
		return BoundaryUnset, nil
	}
	return BoundaryUnset, fmt.Errorf("temporal: unknown boundary policy %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (b BoundaryPolicy) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BoundaryPolicy) UnmarshalText(text []byte) error {
	v, err := ParseBoundaryPolicy(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Params configures Smooth.
type Params struct {
	Boundary BoundaryPolicy
}

// Validate rejects an unset or unknown boundary policy.
func (p Params) Validate() error {
	if p.Boundary != PassThrough && p.Boundary != TwoPoint {
		return fmt.Errorf("%w: got %s", ErrBoundaryPolicyRequired, p.Boundary)
	}
	return nil
}

// Smooth returns the smoothed epochs in time order. Every neighbor is read
// from the unsmoothed series. The reference epoch's grid is copied through
// bit-identical.
func Smooth(s *Series, p Params) ([]Epoch, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := len(s.Epochs)
	out := make([]Epoch, n)
	for i, e := range s.Epochs {
		out[i] = Epoch{Time: e.Time, Label: e.Label}
		switch {
		case i == s.Reference:
			out[i].Grid = e.Grid.Clone()
		case i == 0 || i == n-1:
			out[i].Grid = boundary(e.Grid, s, i, p.Boundary)
		default:
			out[i].Grid = median3(s.Epochs[i-1].Grid, e.Grid, s.Epochs[i+1].Grid)
		}
	}
	return out, nil
}

// median3 is the categorical median: the majority of three, else the
// centre value.
func median3(prev, cur, next *raster.Categorical) *raster.Categorical {
	out := cur.Clone()
	for i, c := range cur.Cells {
		if a, b := prev.Cells[i], next.Cells[i]; a == b {
			out.Cells[i] = a
		} else {
			out.Cells[i] = c
		}
	}
	return out
}

// boundary smooths the first or last epoch.
func boundary(g *raster.Categorical, s *Series, i int, policy BoundaryPolicy) *raster.Categorical {
	n := len(s.Epochs)
	if policy == PassThrough || n < 3 {
		return g.Clone()
	}
	step := 1
	if i == n-1 {
		step = -1
	}
	nb, inward := s.Epochs[i+step].Grid, s.Epochs[i+2*step].Grid
	out := g.Clone()
	for j, v := range nb.Cells {
		if v == inward.Cells[j] {
			out.Cells[j] = v
		}
	}
	return out
}
