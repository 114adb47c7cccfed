package smooth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/raster"
)

// Params configures Smooth.
type Params struct {
	Radius float64
	Kernel gridalg.Kernel
}

// DefaultParams returns a 3×3 square majority.
func DefaultParams() Params { return Params{Radius: 1, Kernel: gridalg.Square} }

// Validate checks Radius ∈ [1, 8] and the kernel.
func (p Params) Validate() error {
	if math.IsNaN(p.Radius) || p.Radius < 1 || p.Radius > 8 {
		return fmt.Errorf("%w: Radius=%v not in [1, 8]", ErrInvalidParams, p.Radius)
	}
	if p.Kernel < gridalg.Square || p.Kernel > gridalg.Circle {
		return fmt.Errorf("%w: Kernel=%d", ErrInvalidParams, p.Kernel)
	}
	return nil
}

// Halo returns the tile halo width that makes tiled runs exact.
func (p Params) Halo() int { return gridalg.Reach(p.Radius) }

// Result is the smoothed grid and the number of cells it changed.
type Result struct {
	Grid    *raster.Categorical
	Changed int
}

// Smooth returns filtered where filtered differs from g, else g.
func Smooth(g *raster.Categorical, p Params) (Result, error) {
	out, err := Apply(g, p)
	if err != nil {
		return Result{}, err
	}
	diff, err := gridalg.Differ(g, out)
	if err != nil {
		return Result{}, err
	}
	return Result{Grid: out, Changed: diff.Count()}, nil
}

// Apply is Smooth without statistics, for use as a tile function.
func Apply(g *raster.Categorical, p Params) (*raster.Categorical, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	filtered, err := gridalg.FocalMode(g, p.Radius, p.Kernel)
	if err != nil {
		return nil, err
	}
	noise, err := gridalg.Differ(g, filtered)
	if err != nil {
		return nil, err
	}
	return gridalg.Where(g, noise, filtered)
}
