package gridalg

import (
	"github.com/katalvlaran/landcover/raster"
)

// Erode returns the morphological minimum of m over kernel k at radius r:
// a cell stays true only if every in-grid cell of its window is true.
// Returns ErrBadRadius for negative or non-finite r.
func Erode(m *raster.Mask, r float64, k Kernel) (*raster.Mask, error) {
	if err := checkRadius(r); err != nil {
		return nil, err
	}
	return morph(m, r, k, true), nil
}

// Dilate returns the morphological maximum of m over kernel k at radius r:
// a cell becomes true if any in-grid cell of its window is true.
// Returns ErrBadRadius for negative or non-finite r.
func Dilate(m *raster.Mask, r float64, k Kernel) (*raster.Mask, error) {
	if err := checkRadius(r); err != nil {
		return nil, err
	}
	return morph(m, r, k, false), nil
}

// Open returns Dilate(Erode(m)). Opening is anti-extensive: Open(m) ⊆ m.
func Open(m *raster.Mask, r float64, k Kernel) (*raster.Mask, error) {
	if err := checkRadius(r); err != nil {
		return nil, err
	}
	return morph(morph(m, r, k, true), r, k, false), nil
}

// Close returns Erode(Dilate(m)).
func Close(m *raster.Mask, r float64, k Kernel) (*raster.Mask, error) {
	if err := checkRadius(r); err != nil {
		return nil, err
	}
	return morph(morph(m, r, k, false), r, k, true), nil
}

// ConstrainedClose dilates m, clips the dilation to allowed, then erodes
// back: Erode(Dilate(m) ∧ allowed). With allowed all-true it equals Close.
func ConstrainedClose(m, allowed *raster.Mask, r float64, k Kernel) (*raster.Mask, error) {
	if err := raster.CheckAligned(m, allowed); err != nil {
		return nil, err
	}
	if err := checkRadius(r); err != nil {
		return nil, err
	}
	return morph(morph(m, r, k, false).And(allowed), r, k, true), nil
}

// morph computes erosion (erode=true) or dilation. Erosion counts false
// cells in the window, dilation counts true cells; the result is decided by
// whether that count is zero.
func morph(m *raster.Mask, r float64, k Kernel, erode bool) *raster.Mask {
	n := Reach(r)
	if n == 0 || (k == Circle && r < 1) {
		return m.Clone()
	}
	if k == Square {
		return morphSquare(m, n, erode)
	}
	out := raster.NewMask(m.Geometry)
	offs := offsets(k, r)
	w, h := m.Cols, m.Rows
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hit := false
			for _, d := range offs {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if m.Cells[ny*w+nx] != erode {
					hit = true
					break
				}
			}
			// erode: hit means a false neighbor; dilate: hit means a true one.
			out.Cells[y*w+x] = hit != erode
		}
	}
	return out
}

// morphSquare uses a summed-area table of "opposite" cells so that the
// window count is O(1) per cell regardless of radius.
func morphSquare(m *raster.Mask, n int, erode bool) *raster.Mask {
	w, h := m.Cols, m.Rows
	sat := make([]int32, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		var row int32
		for x := 0; x < w; x++ {
			if m.Cells[y*w+x] != erode {
				row++
			}
			sat[(y+1)*(w+1)+x+1] = sat[y*(w+1)+x+1] + row
		}
	}
	out := raster.NewMask(m.Geometry)
	for y := 0; y < h; y++ {
		y0, y1 := max(y-n, 0), min(y+n, h-1)+1
		for x := 0; x < w; x++ {
			x0, x1 := max(x-n, 0), min(x+n, w-1)+1
			cnt := sat[y1*(w+1)+x1] - sat[y0*(w+1)+x1] - sat[y1*(w+1)+x0] + sat[y0*(w+1)+x0]
			out.Cells[y*w+x] = (cnt > 0) != erode
		}
	}
	return out
}
