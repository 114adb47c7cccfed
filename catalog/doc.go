// Package catalog resolves grid identifiers to aligned rasters.
//
// What:
//
//	A lookup never signals absence through an error. It returns a result
//	whose Status is Found, NotFound, or Malformed, so callers branch on data:
//
//	  l := cat.Categorical("lulc_2020_primary")
//	  switch l.Status {
//	  case catalog.Found:     use(l.Grid)
//	  case catalog.NotFound:  fall back or report
//	  case catalog.Malformed: report l.Err
//	  }
//
//	MemoryCatalog keeps grids in memory. DirCatalog reads JSON grid
//	documents named <id>.json from a directory:
//
//	  {"geometry": {"cols": 3, "rows": 2, "crs": "EPSG:32647",
//	                "transform": {"origin_x": 5e5, "origin_y": 1.6e6,
//	                              "pixel_width": 30, "pixel_height": -30}},
//	   "cells": [8, 8, 3, null, 8, 8]}
//
//	Cells are row-major. Categorical nodata and continuous NaN are written
//	as null.
//
// Alignment:
//
//	A catalog built with an expected geometry reports grids of any other
//	geometry as Malformed wrapping raster.ErrExtentMismatch.
//
// Errors:
//
//   - ErrNotFound, ErrMalformed: returned by Require for the two failure
//     statuses.
package catalog
