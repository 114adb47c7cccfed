package taxonomy

import "fmt"

// BindingState distinguishes a class with a sample source from one without.
type BindingState int

const (
	// Unbound means no source is configured for the class.
	Unbound BindingState = iota
	// Bound means the class has a configured source identifier.
	Bound
)

// SourceBinding associates one class with an external sample source id.
type SourceBinding struct {
	Code   Code   `yaml:"code"`
	Source string `yaml:"source"`
}

// Bindings is a validated class → source mapping.
type Bindings struct {
	src map[Code]string
}

// NewBindings validates list against t: every code must belong to t, every
// source must be non-empty, and no code may be bound twice.
func NewBindings(t *Taxonomy, list []SourceBinding) (Bindings, error) {
	b := Bindings{src: make(map[Code]string, len(list))}
	for _, sb := range list {
		if !t.Valid(sb.Code) {
			return Bindings{}, fmt.Errorf("%w: code %d: %w", ErrBadBinding, sb.Code, ErrUnknownCode)
		}
		if sb.Source == "" {
			return Bindings{}, fmt.Errorf("%w: code %d: empty source", ErrBadBinding, sb.Code)
		}
		if _, dup := b.src[sb.Code]; dup {
			return Bindings{}, fmt.Errorf("%w: code %d bound twice", ErrBadBinding, sb.Code)
		}
		b.src[sb.Code] = sb.Source
	}
	return b, nil
}

// Lookup returns the source bound to c and its state.
func (b Bindings) Lookup(c Code) (string, BindingState) {
	if s, ok := b.src[c]; ok {
		return s, Bound
	}
	return "", Unbound
}

// Missing returns the taxonomy codes that have no source, in code order.
func (b Bindings) Missing(t *Taxonomy) []Code {
	var out []Code
	for _, c := range t.Codes() {
		if _, st := b.Lookup(c); st == Unbound {
			out = append(out, c)
		}
	}
	return out
}
