package consistency

import (
	"fmt"
	"math"

	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// Params configures the consistency corrector.
type Params struct {
	UrbanCoreRadius    float64 // erosion of the stable built-up mask
	UrbanCoreKernel    gridalg.Kernel
	OpeningRadius      float64 // speckle removal on the refined mask
	OpeningKernel      gridalg.Kernel
	ChangePatchMinSize int // cells
	MaxComponentSize   int // bound on the component scan
	Conn               raster.Connectivity
	Roles              taxonomy.Roles
	Transitions        []taxonomy.TransitionRule
}

// DefaultParams returns the calibrated defaults with the default roles and
// whitelist.
func DefaultParams() Params {
	return Params{
		UrbanCoreRadius:    2,
		UrbanCoreKernel:    gridalg.Circle,
		OpeningRadius:      1,
		OpeningKernel:      gridalg.Circle,
		ChangePatchMinSize: 30,
		MaxComponentSize:   1024,
		Conn:               raster.Conn8,
		Roles:              taxonomy.DefaultRoles(),
		Transitions:        taxonomy.DefaultPlausibleTransitions(),
	}
}

// Validate checks numeric ranges. Class references are checked by New
// against the taxonomy.
func (p Params) Validate() error {
	for _, r := range []struct {
		name string
		v    float64
	}{
		{"UrbanCoreRadius", p.UrbanCoreRadius},
		{"OpeningRadius", p.OpeningRadius},
	} {
		if math.IsNaN(r.v) || r.v < 0 || r.v > 8 {
			return fmt.Errorf("%w: %s=%v not in [0, 8]", ErrInvalidParams, r.name, r.v)
		}
	}
	switch {
	case p.MaxComponentSize < 1 || p.MaxComponentSize > 1<<20:
		return fmt.Errorf("%w: MaxComponentSize=%d not in [1, %d]", ErrInvalidParams, p.MaxComponentSize, 1<<20)
	case p.ChangePatchMinSize < 1 || p.ChangePatchMinSize > p.MaxComponentSize:
		return fmt.Errorf("%w: ChangePatchMinSize=%d not in [1, MaxComponentSize=%d]",
			ErrInvalidParams, p.ChangePatchMinSize, p.MaxComponentSize)
	case p.Conn != raster.Conn4 && p.Conn != raster.Conn8:
		return fmt.Errorf("%w: Conn=%d", ErrInvalidParams, p.Conn)
	case p.UrbanCoreKernel < gridalg.Square || p.UrbanCoreKernel > gridalg.Circle:
		return fmt.Errorf("%w: UrbanCoreKernel=%d", ErrInvalidParams, p.UrbanCoreKernel)
	case p.OpeningKernel < gridalg.Square || p.OpeningKernel > gridalg.Circle:
		return fmt.Errorf("%w: OpeningKernel=%d", ErrInvalidParams, p.OpeningKernel)
	}
	return nil
}
