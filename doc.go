// Package landcover refines classified land-use/land-cover rasters and
// harmonizes them into a temporally consistent series for change analysis.
//
// What is landcover?
//
//	A pure-Go library and CLI that post-processes categorical maps:
//		• Merge: fill gaps of a classified map from a secondary product
//		• Spatial correction: ordered knowledge rules for water, edges, wetlands
//		• Sieve: remove patches below the minimum mapping unit
//		• Smooth: remove single-cell speckle with a focal majority
//		• Consistency: keep only plausible change against a trusted later map
//		• Temporal: categorical median filter along the epoch axis
//		• Statistics: class areas, transition matrices, agreement, kappa
//
// Packages:
//
//	taxonomy        class codes, roles, plausible transitions
//	raster          aligned grids: categorical, continuous, mask
//	gridalg         components, morphology, distance, focal mode, tiling
//	merge, spatial, sieve, smooth, consistency, temporal: the stages
//	stats           change statistics on gonum matrices
//	config          YAML configuration with validation
//	catalog         grid lookup by identifier
//	pipeline        stage chain, concurrent epochs, harmonization
//	cmd/lulcrefine  command-line front end
//
// Quick start:
//
//	cfg := config.Default()
//	cfg.Temporal.Boundary = "two-point"
//	p, err := pipeline.New(cfg, pipeline.WithLogger(slog.Default()))
//	...
//	product, err := p.Run(ctx, inputs, "2024")
//
// All grids of one run must share extent, resolution, CRS, and transform.
// There is no reprojection.
package landcover
