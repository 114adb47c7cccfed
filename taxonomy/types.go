package taxonomy

import (
	"fmt"
	"sort"
)

// Code is a class identifier. Codes are stable across epochs and runs.
type Code uint8

// Nodata marks an unclassified cell. It is never a member of a taxonomy.
const Nodata Code = 255

// MaxClasses is the number of distinct non-nodata codes a Set can hold.
const MaxClasses = 255

// Class codes of the default scheme.
const (
	River Code = iota
	Lake
	Mudflat
	Paddy
	AquaculturePond
	Reservoir
	BuiltUp
	DryCropland
	Forest
	Grassland
	BareLand
	HerbaceousWetland
	WoodyWetland
)

// Class describes one category of the scheme.
type Class struct {
	Code  Code   `yaml:"code" json:"code"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"` // hex RGB, display metadata only
}

// Taxonomy is an immutable, code-ordered class list.
type Taxonomy struct {
	classes []Class
	byCode  map[Code]int
}

// New builds a Taxonomy from classes. Classes are sorted by code.
// Returns ErrEmptyTaxonomy, ErrDuplicateCode, or ErrUnknownCode (for Nodata).
func New(classes []Class) (*Taxonomy, error) {
	if len(classes) == 0 {
		return nil, ErrEmptyTaxonomy
	}
	cs := make([]Class, len(classes))
	copy(cs, classes)
	sort.Slice(cs, func(i, j int) bool { return cs[i].Code < cs[j].Code })

	idx := make(map[Code]int, len(cs))
	for i, c := range cs {
		if c.Code == Nodata {
			return nil, fmt.Errorf("%w: %d is reserved for nodata", ErrUnknownCode, c.Code)
		}
		if _, dup := idx[c.Code]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCode, c.Code)
		}
		idx[c.Code] = i
	}
	return &Taxonomy{classes: cs, byCode: idx}, nil
}

// Default returns the 13-class land-cover scheme.
func Default() *Taxonomy {
	t, err := New([]Class{
		{River, "River", "0000FF"},
		{Lake, "Lake", "00FFFF"},
		{Mudflat, "Mudflat", "663300"},
		{Paddy, "Paddy Field", "FFFF00"},
		{AquaculturePond, "Aquaculture Pond", "FFC0CB"},
		{Reservoir, "Reservoir", "800080"},
		{BuiltUp, "Built-up Land", "FF0000"},
		{DryCropland, "Dry Cropland", "FFA500"},
		{Forest, "Forest", "006400"},
		{Grassland, "Grassland", "9ACD32"},
		{BareLand, "Bare Land", "D2B48C"},
		{HerbaceousWetland, "Herbaceous Wetland", "90EE90"},
		{WoodyWetland, "Woody Wetland", "556B2F"},
	})
	if err != nil {
		panic(err) // static table
	}
	return t
}

// Len returns the number of classes.
func (t *Taxonomy) Len() int { return len(t.classes) }

// Classes returns a copy of the class list in code order.
func (t *Taxonomy) Classes() []Class {
	out := make([]Class, len(t.classes))
	copy(out, t.classes)
	return out
}

// Codes returns the class codes in ascending order.
func (t *Taxonomy) Codes() []Code {
	out := make([]Code, len(t.classes))
	for i, c := range t.classes {
		out[i] = c.Code
	}
	return out
}

// Valid reports whether c belongs to the taxonomy.
func (t *Taxonomy) Valid(c Code) bool {
	_, ok := t.byCode[c]
	return ok
}

// Index returns the dense position of c (0..Len-1), or -1.
func (t *Taxonomy) Index(c Code) int {
	if i, ok := t.byCode[c]; ok {
		return i
	}
	return -1
}

// Name returns the label of c, "nodata" for Nodata, or "" if unknown.
func (t *Taxonomy) Name(c Code) string {
	if c == Nodata {
		return "nodata"
	}
	if i, ok := t.byCode[c]; ok {
		return t.classes[i].Name
	}
	return ""
}

// Palette returns display colors in code order.
func (t *Taxonomy) Palette() []string {
	out := make([]string, len(t.classes))
	for i, c := range t.classes {
		out[i] = c.Color
	}
	return out
}

// All returns the set of every code in the taxonomy.
func (t *Taxonomy) All() Set {
	return NewSet(t.Codes()...)
}

// Check returns ErrUnknownCode if any code is outside the taxonomy.
func (t *Taxonomy) Check(codes ...Code) error {
	for _, c := range codes {
		if !t.Valid(c) {
			return fmt.Errorf("%w: %d", ErrUnknownCode, c)
		}
	}
	return nil
}
