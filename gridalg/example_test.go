package gridalg_test

import (
	"fmt"

	"github.com/katalvlaran/landcover/gridalg"
	"github.com/katalvlaran/landcover/raster"
)

// ExampleComponentSize labels three patches under 8-connectivity; the two
// right-hand cells are two rows apart and stay separate.
func ExampleComponentSize() {
	m, _ := raster.MaskFromRows([][]bool{
		{true, true, false, false, true},
		{true, false, false, false, false},
		{false, false, false, false, true},
	})
	sizes, _ := gridalg.ComponentSize(m, raster.Conn8, 10)
	for y := 0; y < m.Rows; y++ {
		fmt.Println(sizes[y*m.Cols : (y+1)*m.Cols])
	}
	// Output:
	// [3 3 0 0 1]
	// [3 0 0 0 0]
	// [0 0 0 0 1]
}

// ExampleDistanceTransform shows the clamp policy for cells beyond the
// search radius.
func ExampleDistanceTransform() {
	m, _ := raster.MaskFromRows([][]bool{{true, false, false, false}})
	d, _ := gridalg.DistanceTransform(m, 2, gridalg.ClampToBound)
	fmt.Println(d.Cells)
	// Output:
	// [0 1 2 2]
}

// ExampleOpen removes a one-cell spur while keeping the solid block.
func ExampleOpen() {
	m, _ := raster.MaskFromRows([][]bool{
		{true, true, true, false, false},
		{true, true, true, true, true},
		{true, true, true, false, false},
	})
	o, _ := gridalg.Open(m, 1, gridalg.Square)
	fmt.Print(o)
	// Output:
	// 5x3
	// ###..
	// ###..
	// ###..
}
