package spatial

import (
	"fmt"
	"math"

	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/raster"
)

// Params configures a Corrector. Distances and radii are in pixels.
type Params struct {
	ProtectionErosionRadius float64
	LargeWaterAreaThreshold int
	MaxComponentSize        int // bound on the component scan
	PondOpeningRadius       float64
	RiverConnectRadius      float64
	EdgeCoreErosionRadius   float64
	EdgeBufferDistance      float64
	EdgeSearchRadius        float64
	WetlandSlopeThreshold   float64 // degrees
	WetlandTWIThreshold     float64
	WetlandWaterDistance    float64
	WaterSearchRadius       float64
	Conn                    raster.Connectivity

	// Structuring windows per morphological step.
	ProtectionKernel gridalg.Kernel
	PondKernel       gridalg.Kernel
	ConnectKernel    gridalg.Kernel
	EdgeCoreKernel   gridalg.Kernel
}

// DefaultParams returns the calibrated defaults.
func DefaultParams() Params {
	return Params{
		ProtectionErosionRadius: 1,
		LargeWaterAreaThreshold: 2000,
		MaxComponentSize:        4096,
		PondOpeningRadius:       0.5,
		RiverConnectRadius:      2,
		EdgeCoreErosionRadius:   1,
		EdgeBufferDistance:      2,
		EdgeSearchRadius:        256,
		WetlandSlopeThreshold:   10,
		WetlandTWIThreshold:     8,
		WetlandWaterDistance:    300,
		WaterSearchRadius:       1024,
		Conn:                    raster.Conn8,
		ProtectionKernel:        gridalg.Circle,
		PondKernel:              gridalg.Square,
		ConnectKernel:           gridalg.Square,
		EdgeCoreKernel:          gridalg.Circle,
	}
}

// Validate checks every field against its range.
// Returns an error wrapping ErrInvalidParams that names the field.
func (p Params) Validate() error {
	ranges := []struct {
		name   string
		v      float64
		lo, hi float64
	}{
		{"ProtectionErosionRadius", p.ProtectionErosionRadius, 0, 16},
		{"LargeWaterAreaThreshold", float64(p.LargeWaterAreaThreshold), 1, float64(p.MaxComponentSize)},
		{"MaxComponentSize", float64(p.MaxComponentSize), 1, 1 << 20},
		{"PondOpeningRadius", p.PondOpeningRadius, 0, 8},
		{"RiverConnectRadius", p.RiverConnectRadius, 0, 16},
		{"EdgeCoreErosionRadius", p.EdgeCoreErosionRadius, 0, 8},
		{"EdgeBufferDistance", p.EdgeBufferDistance, 0, 256},
		{"EdgeSearchRadius", p.EdgeSearchRadius, p.EdgeBufferDistance, 4096},
		{"WetlandSlopeThreshold", p.WetlandSlopeThreshold, 0, 90},
		{"WetlandTWIThreshold", p.WetlandTWIThreshold, -50, 50},
		{"WetlandWaterDistance", p.WetlandWaterDistance, 0, 1024},
		{"WaterSearchRadius", p.WaterSearchRadius, p.WetlandWaterDistance, 4096},
	}
	for _, r := range ranges {
		if math.IsNaN(r.v) || r.v < r.lo || r.v > r.hi {
			return fmt.Errorf("%w: %s=%v not in [%v, %v]", ErrInvalidParams, r.name, r.v, r.lo, r.hi)
		}
	}
	if p.Conn != raster.Conn4 && p.Conn != raster.Conn8 {
		return fmt.Errorf("%w: Conn=%d", ErrInvalidParams, p.Conn)
	}
	for _, k := range []struct {
		name string
		k    gridalg.Kernel
	}{
		{"ProtectionKernel", p.ProtectionKernel},
		{"PondKernel", p.PondKernel},
		{"ConnectKernel", p.ConnectKernel},
		{"EdgeCoreKernel", p.EdgeCoreKernel},
	} {
		if k.k < gridalg.Square || k.k > gridalg.Circle {
			return fmt.Errorf("%w: %s=%d", ErrInvalidParams, k.name, k.k)
		}
	}
	return nil
}
