package gridalg

import (
	"fmt"
	"math"
	"strings"
)

// Kernel selects the structuring window shape.
type Kernel int

const (
	// Square covers max(|dx|,|dy|) ≤ ceil(r).
	Square Kernel = iota
	// Diamond (the "plus" kernel) covers |dx|+|dy| ≤ ceil(r).
	Diamond
	// Circle covers dx²+dy² ≤ r².
	Circle
)

// String returns the kernel name.
func (k Kernel) String() string {
	switch k {
	case Diamond:
		return "diamond"
	case Circle:
		return "circle"
	}
	return "square"
}

// ParseKernel maps "square", "diamond"/"plus", "circle" to a Kernel.
func ParseKernel(s string) (Kernel, error) {
	switch strings.ToLower(s) {
	case "", "square":
		return Square, nil
	case "diamond", "plus":
		return Diamond, nil
	case "circle":
		return Circle, nil
	}
	return Square, fmt.Errorf("gridalg: unknown kernel %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kernel) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kernel) UnmarshalText(b []byte) error {
	v, err := ParseKernel(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Reach returns how many cells a kernel of radius r extends from its center.
func Reach(r float64) int {
	if r <= 0 {
		return 0
	}
	return int(math.Ceil(r - 1e-9))
}

func checkRadius(r float64) error {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("%w: %v", ErrBadRadius, r)
	}
	return nil
}

// offsets returns the (dcol,drow) window of kernel k at radius r,
// center included.
func offsets(k Kernel, r float64) [][2]int {
	n := Reach(r)
	out := make([][2]int, 0, (2*n+1)*(2*n+1))
	for dy := -n; dy <= n; dy++ {
		for dx := -n; dx <= n; dx++ {
			switch k {
			case Diamond:
				if abs(dx)+abs(dy) > n {
					continue
				}
			case Circle:
				if float64(dx*dx+dy*dy) > r*r+1e-9 {
					continue
				}
			}
			out = append(out, [2]int{dx, dy})
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
