package taxonomy

import (
	"math/bits"
	"strconv"
	"strings"
)

// Set is a bitset over class codes 0..254. The zero value is empty.
// Nodata is never a member.
type Set struct {
	w [4]uint64
}

// NewSet returns a set holding codes. Nodata is ignored.
func NewSet(codes ...Code) Set {
	var s Set
	for _, c := range codes {
		s = s.With(c)
	}
	return s
}

// With returns a copy of s that also contains c.
func (s Set) With(c Code) Set {
	if c == Nodata {
		return s
	}
	s.w[c>>6] |= 1 << (c & 63)
	return s
}

// Has reports whether c is in s.
func (s Set) Has(c Code) bool {
	if c == Nodata {
		return false
	}
	return s.w[c>>6]&(1<<(c&63)) != 0
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set {
	for i := range s.w {
		s.w[i] |= o.w[i]
	}
	return s
}

// Len returns the number of members.
func (s Set) Len() int {
	n := 0
	for _, w := range s.w {
		n += bits.OnesCount64(w)
	}
	return n
}

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s.Len() == 0 }

// Codes returns members in ascending order.
func (s Set) Codes() []Code {
	out := make([]Code, 0, s.Len())
	for c := 0; c < MaxClasses; c++ {
		if s.Has(Code(c)) {
			out = append(out, Code(c))
		}
	}
	return out
}

// String renders s as "{0,1,4}".
func (s Set) String() string {
	parts := make([]string, 0, s.Len())
	for _, c := range s.Codes() {
		parts = append(parts, strconv.Itoa(int(c)))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// MarshalYAML encodes s as a list of codes.
func (s Set) MarshalYAML() (interface{}, error) {
	codes := s.Codes()
	out := make([]int, len(codes))
	for i, c := range codes {
		out[i] = int(c)
	}
	return out, nil
}

// UnmarshalYAML decodes a list of codes.
func (s *Set) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var codes []int
	if err := unmarshal(&codes); err != nil {
		return err
	}
	var out Set
	for _, c := range codes {
		if c < 0 || c >= MaxClasses {
			return ErrUnknownCode
		}
		out = out.With(Code(c))
	}
	*s = out
	return nil
}
