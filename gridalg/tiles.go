package gridalg

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/landcover/raster"
	"github.com/katalvlaran/landcover/taxonomy"
)

// Tile is one interior block of a grid together with its haloed read window.
// Interior cells are (Col..Col+W, Row..Row+H); the halo window extends by up
// to Halo cells on each side, clipped to the grid.
type Tile struct {
	Col, Row, W, H     int // interior, in parent coordinates
	HCol, HRow, HW, HH int // haloed window, in parent coordinates
}

// Tiles partitions geom into size×size interior blocks (edge tiles may be
// smaller), each with a halo of width halo.
// Returns ErrBadTiling if size ≤ 0 or halo < 0.
func Tiles(geom raster.Geometry, size, halo int) ([]Tile, error) {
	if size <= 0 || halo < 0 {
		return nil, fmt.Errorf("%w: size=%d halo=%d", ErrBadTiling, size, halo)
	}
	var out []Tile
	for row := 0; row < geom.Rows; row += size {
		for col := 0; col < geom.Cols; col += size {
			w, h := min(size, geom.Cols-col), min(size, geom.Rows-row)
			hc, hr := max(col-halo, 0), max(row-halo, 0)
			hw := min(col+w+halo, geom.Cols) - hc
			hh := min(row+h+halo, geom.Rows) - hr
			out = append(out, Tile{col, row, w, h, hc, hr, hw, hh})
		}
	}
	return out, nil
}

// TileFunc transforms the haloed window sub of tile t. It must return a grid
// with sub's dimensions.
type TileFunc func(ctx context.Context, t Tile, sub *raster.Categorical) (*raster.Categorical, error)

// TileOptions configures ParallelMap.
type TileOptions struct {
	Size    int // interior tile edge in cells; ≤ 0 runs fn once on the whole grid
	Halo    int // halo width; must be ≥ the largest reach fn uses
	Workers int // concurrent tiles; ≤ 0 means GOMAXPROCS
}

// ParallelMap runs fn over haloed tiles of g concurrently and stitches the
// tile interiors into a new grid. With Halo ≥ every radius fn reads, the
// result equals fn applied to the whole grid.
// The first error cancels remaining tiles and is returned.
func ParallelMap(ctx context.Context, g *raster.Categorical, opts TileOptions, fn TileFunc) (*raster.Categorical, error) {
	whole := Tile{0, 0, g.Cols, g.Rows, 0, 0, g.Cols, g.Rows}
	if opts.Size <= 0 || (opts.Size >= g.Cols && opts.Size >= g.Rows) {
		return fn(ctx, whole, g)
	}
	tiles, err := Tiles(g.Geometry, opts.Size, opts.Halo)
	if err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := &raster.Categorical{Geometry: g.Geometry, Cells: make([]taxonomy.Code, len(g.Cells))}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, t := range tiles {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			sub, err := g.Window(t.HCol, t.HRow, t.HW, t.HH)
			if err != nil {
				return err
			}
			res, err := fn(egCtx, t, sub)
			if err != nil {
				return fmt.Errorf("tile (%d,%d): %w", t.Col, t.Row, err)
			}
			if res.Cols != t.HW || res.Rows != t.HH {
				return fmt.Errorf("%w: tile (%d,%d) returned %dx%d, want %dx%d",
					ErrBadTiling, t.Col, t.Row, res.Cols, res.Rows, t.HW, t.HH)
			}
			// Tiles write disjoint interiors of out.
			return out.Paste(res, t.Col-t.HCol, t.Row-t.HRow, t.Col, t.Row, t.W, t.H)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
