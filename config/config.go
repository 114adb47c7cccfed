package config

import (
	"github.com/katalvlaran/landcover/consistency"
	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/sieve"
	"github.com/katalvlaran/landcover/smooth"
	"github.com/katalvlaran/landcover/spatial"
	"github.com/katalvlaran/landcover/taxonomy"
	"github.com/katalvlaran/landcover/temporal"
)

// Config is the full run configuration.
type Config struct {
	Classes     []taxonomy.Class          `yaml:"classes,omitempty" validate:"omitempty,dive"`
	Roles       taxonomy.Roles            `yaml:"roles"`
	Transitions []taxonomy.TransitionRule `yaml:"transitions"`
	Bindings    []taxonomy.SourceBinding  `yaml:"bindings,omitempty"`
	Spatial     Spatial                   `yaml:"spatial"`
	Sieve       Sieve                     `yaml:"sieve"`
	Smooth      Smooth                    `yaml:"smooth"`
	Consistency Consistency               `yaml:"consistency"`
	Temporal    Temporal                  `yaml:"temporal"`
	Runtime     Runtime                   `yaml:"runtime"`
}

// Spatial configures the spatial corrector. Distances are in pixels.
type Spatial struct {
	ProtectionErosionRadius float64 `yaml:"protection_erosion_radius" validate:"gte=0,lte=16"`
	LargeWaterAreaThreshold int     `yaml:"large_water_area_threshold" validate:"gte=1,ltefield=MaxComponentSize"`
	MaxComponentSize        int     `yaml:"max_component_size" validate:"gte=1,lte=1048576"`
	PondOpeningRadius       float64 `yaml:"pond_opening_radius" validate:"gte=0,lte=8"`
	RiverConnectRadius      float64 `yaml:"river_connect_radius" validate:"gte=0,lte=16"`
	EdgeCoreErosionRadius   float64 `yaml:"edge_core_erosion_radius" validate:"gte=0,lte=8"`
	EdgeBufferDistance      float64 `yaml:"edge_buffer_distance" validate:"gte=0,lte=256"`
	EdgeSearchRadius        float64 `yaml:"edge_search_radius" validate:"gtefield=EdgeBufferDistance,lte=4096"`
	WetlandSlopeThreshold   float64 `yaml:"wetland_slope_threshold" validate:"gte=0,lte=90"`
	WetlandTWIThreshold     float64 `yaml:"wetland_twi_threshold" validate:"gte=-50,lte=50"`
	WetlandWaterDistance    float64 `yaml:"wetland_water_distance" validate:"gte=0,lte=1024"`
	WaterSearchRadius       float64 `yaml:"water_search_radius" validate:"gtefield=WetlandWaterDistance,lte=4096"`
	Connectivity            int     `yaml:"connectivity" validate:"oneof=4 8"`
	ProtectionKernel        string  `yaml:"protection_kernel" validate:"oneof=square diamond plus circle"`
	PondKernel              string  `yaml:"pond_kernel" validate:"oneof=square diamond plus circle"`
	ConnectKernel           string  `yaml:"connect_kernel" validate:"oneof=square diamond plus circle"`
	EdgeCoreKernel          string  `yaml:"edge_core_kernel" validate:"oneof=square diamond plus circle"`
}

// Sieve configures the minimum-mapping-unit sieve.
type Sieve struct {
	MinPatchSize     int     `yaml:"min_patch_size" validate:"gte=1,ltefield=MaxComponentSize"`
	MaxComponentSize int     `yaml:"max_component_size" validate:"gte=1,lte=1048576"`
	Connectivity     int     `yaml:"connectivity" validate:"oneof=4 8"`
	ModeRadius       float64 `yaml:"mode_radius" validate:"gte=0,lte=8"`
	Kernel           string  `yaml:"kernel" validate:"oneof=square diamond plus circle"`
}

// Smooth configures the conditional smoother.
type Smooth struct {
	Radius float64 `yaml:"radius" validate:"gte=1,lte=8"`
	Kernel string  `yaml:"kernel" validate:"oneof=square diamond plus circle"`
}

// Consistency configures the two-epoch consistency corrector. Roles and
// transitions come from the top-level sections.
type Consistency struct {
	UrbanCoreRadius    float64 `yaml:"urban_core_radius" validate:"gte=0,lte=8"`
	UrbanCoreKernel    string  `yaml:"urban_core_kernel" validate:"oneof=square diamond plus circle"`
	OpeningRadius      float64 `yaml:"opening_radius" validate:"gte=0,lte=8"`
	OpeningKernel      string  `yaml:"opening_kernel" validate:"oneof=square diamond plus circle"`
	ChangePatchMinSize int     `yaml:"change_patch_min_size" validate:"gte=1,ltefield=MaxComponentSize"`
	MaxComponentSize   int     `yaml:"max_component_size" validate:"gte=1,lte=1048576"`
	Connectivity       int     `yaml:"connectivity" validate:"oneof=4 8"`
}

// Temporal configures the temporal smoother.
type Temporal struct {
	// Reference is the label of the protected epoch; empty selects the
	// most recent epoch.
	Reference string `yaml:"reference"`
	// Boundary is "pass-through" or "two-point". It has no default.
	Boundary string `yaml:"boundary"`
}

// Runtime configures execution and logging.
type Runtime struct {
	// Workers bounds concurrent epochs and tiles; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0,lte=1024"`
	// TileSize is the interior tile edge in cells; 0 disables tiling.
	TileSize int `yaml:"tile_size" validate:"gte=0,lte=65536"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogJSON  bool   `yaml:"log_json"`
}

// Default returns the documented defaults for the 13-class scheme.
func Default() Config {
	sp := spatial.DefaultParams()
	sv := sieve.DefaultParams()
	sm := smooth.DefaultParams()
	cp := consistency.DefaultParams()
	return Config{
		Roles:       taxonomy.DefaultRoles(),
		Transitions: taxonomy.DefaultPlausibleTransitions(),
		Spatial: Spatial{
			ProtectionErosionRadius: sp.ProtectionErosionRadius,
			LargeWaterAreaThreshold: sp.LargeWaterAreaThreshold,
			MaxComponentSize:        sp.MaxComponentSize,
			PondOpeningRadius:       sp.PondOpeningRadius,
			RiverConnectRadius:      sp.RiverConnectRadius,
			EdgeCoreErosionRadius:   sp.EdgeCoreErosionRadius,
			EdgeBufferDistance:      sp.EdgeBufferDistance,
			EdgeSearchRadius:        sp.EdgeSearchRadius,
			WetlandSlopeThreshold:   sp.WetlandSlopeThreshold,
			WetlandTWIThreshold:     sp.WetlandTWIThreshold,
			WetlandWaterDistance:    sp.WetlandWaterDistance,
			WaterSearchRadius:       sp.WaterSearchRadius,
			Connectivity:            connNumber(sp.Conn),
			ProtectionKernel:        sp.ProtectionKernel.String(),
			PondKernel:              sp.PondKernel.String(),
			ConnectKernel:           sp.ConnectKernel.String(),
			EdgeCoreKernel:          sp.EdgeCoreKernel.String(),
		},
		Sieve: Sieve{
			MinPatchSize:     sv.MinPatchSize,
			MaxComponentSize: sv.MaxComponentSize,
			Connectivity:     connNumber(sv.Conn),
			ModeRadius:       sv.ModeRadius,
			Kernel:           sv.Kernel.String(),
		},
		Smooth: Smooth{Radius: sm.Radius, Kernel: sm.Kernel.String()},
		Consistency: Consistency{
			UrbanCoreRadius:    cp.UrbanCoreRadius,
			UrbanCoreKernel:    cp.UrbanCoreKernel.String(),
			OpeningRadius:      cp.OpeningRadius,
			OpeningKernel:      cp.OpeningKernel.String(),
			ChangePatchMinSize: cp.ChangePatchMinSize,
			MaxComponentSize:   cp.MaxComponentSize,
			Connectivity:       connNumber(cp.Conn),
		},
		Runtime: Runtime{LogLevel: "info"},
	}
}

// Taxonomy returns the configured class scheme, or the default scheme when
// no classes are listed.
func (c Config) Taxonomy() (*taxonomy.Taxonomy, error) {
	if len(c.Classes) == 0 {
		return taxonomy.Default(), nil
	}
	return taxonomy.New(c.Classes)
}

// Params converts the section.
func (s Spatial) Params() spatial.Params {
	return spatial.Params{
		ProtectionErosionRadius: s.ProtectionErosionRadius,
		LargeWaterAreaThreshold: s.LargeWaterAreaThreshold,
		MaxComponentSize:        s.MaxComponentSize,
		PondOpeningRadius:       s.PondOpeningRadius,
		RiverConnectRadius:      s.RiverConnectRadius,
		EdgeCoreErosionRadius:   s.EdgeCoreErosionRadius,
		EdgeBufferDistance:      s.EdgeBufferDistance,
		EdgeSearchRadius:        s.EdgeSearchRadius,
		WetlandSlopeThreshold:   s.WetlandSlopeThreshold,
		WetlandTWIThreshold:     s.WetlandTWIThreshold,
		WetlandWaterDistance:    s.WetlandWaterDistance,
		WaterSearchRadius:       s.WaterSearchRadius,
		Conn:                    connectivity(s.Connectivity),
		ProtectionKernel:        kernel(s.ProtectionKernel),
		PondKernel:              kernel(s.PondKernel),
		ConnectKernel:           kernel(s.ConnectKernel),
		EdgeCoreKernel:          kernel(s.EdgeCoreKernel),
	}
}

// Params converts the section.
func (s Sieve) Params() sieve.Params {
	return sieve.Params{
		MinPatchSize:     s.MinPatchSize,
		MaxComponentSize: s.MaxComponentSize,
		Conn:             connectivity(s.Connectivity),
		ModeRadius:       s.ModeRadius,
		Kernel:           kernel(s.Kernel),
	}
}

// Params converts the section.
func (s Smooth) Params() smooth.Params {
	return smooth.Params{Radius: s.Radius, Kernel: kernel(s.Kernel)}
}

// ConsistencyParams converts the consistency section together with the
// top-level roles and transitions.
func (c Config) ConsistencyParams() consistency.Params {
	s := c.Consistency
	return consistency.Params{
		UrbanCoreRadius:    s.UrbanCoreRadius,
		UrbanCoreKernel:    kernel(s.UrbanCoreKernel),
		OpeningRadius:      s.OpeningRadius,
		OpeningKernel:      kernel(s.OpeningKernel),
		ChangePatchMinSize: s.ChangePatchMinSize,
		MaxComponentSize:   s.MaxComponentSize,
		Conn:               connectivity(s.Connectivity),
		Roles:              c.Roles,
		Transitions:        c.Transitions,
	}
}

// Params converts the section. An empty or unknown boundary yields
// BoundaryUnset, which temporal.Smooth rejects.
func (s Temporal) Params() temporal.Params {
	b, _ := temporal.ParseBoundaryPolicy(s.Boundary)
	return temporal.Params{Boundary: b}
}

func connectivity(n int) raster.Connectivity {
	if n == 4 {
		return raster.Conn4
	}
	return raster.Conn8
}

func connNumber(c raster.Connectivity) int {
	if c == raster.Conn4 {
		return 4
	}
	return 8
}

func kernel(s string) gridalg.Kernel {
	k, _ := gridalg.ParseKernel(s)
	return k
}
