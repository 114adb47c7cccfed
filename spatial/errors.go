package spatial

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAuxiliaryGrid indicates that slope or TWI was not supplied.
	ErrMissingAuxiliaryGrid = errors.New("spatial: missing auxiliary grid")
	// ErrInvalidParams indicates a parameter outside its documented range.
	ErrInvalidParams = errors.New("spatial: invalid parameters")
)

// RuleError attributes a failure to the rule that raised it.
type RuleError struct {
	Rule Rule
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("spatial: rule %s: %v", e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }
