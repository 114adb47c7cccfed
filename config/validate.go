package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/landcover/consistency"
	"github.com/katalvlaran/landcover/taxonomy"
	"github.com/katalvlaran/landcover/temporal"
)

// validate reports field paths by their YAML names.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// Validate checks c. The returned error wraps ErrInvalidConfiguration and,
// where one exists, the stage package's own sentinel.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return fieldError(ve[0])
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if _, err := temporal.ParseBoundaryPolicy(c.Temporal.Boundary); err != nil {
		return fmt.Errorf("%w: temporal.boundary: %w", ErrInvalidConfiguration, err)
	}
	if err := c.Temporal.Params().Validate(); err != nil {
		return fmt.Errorf("%w: temporal.boundary: %w", ErrInvalidConfiguration, err)
	}

	tax, err := c.Taxonomy()
	if err != nil {
		return fmt.Errorf("%w: classes: %w", ErrInvalidConfiguration, err)
	}
	if err := c.Roles.Validate(tax); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if _, err := taxonomy.NewBindings(tax, c.Bindings); err != nil {
		return fmt.Errorf("%w: bindings: %w", ErrInvalidConfiguration, err)
	}

	checks := []struct {
		section string
		err     error
	}{
		{"spatial", c.Spatial.Params().Validate()},
		{"sieve", c.Sieve.Params().Validate()},
		{"smooth", c.Smooth.Params().Validate()},
	}
	for _, ch := range checks {
		if ch.err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfiguration, ch.section, ch.err)
		}
	}
	if _, err := consistency.New(c.ConsistencyParams(), tax); err != nil {
		return fmt.Errorf("%w: consistency: %w", ErrInvalidConfiguration, err)
	}
	return nil
}

// fieldError renders one validator failure as "section.field: rule".
func fieldError(fe validator.FieldError) error {
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}
	rule := fe.Tag()
	if p := fe.Param(); p != "" {
		rule += "=" + p
	}
	return fmt.Errorf("%w: %s=%v violates %s", ErrInvalidConfiguration, path, fe.Value(), rule)
}
