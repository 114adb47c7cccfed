package taxonomy

import "errors"

var (
	// ErrUnknownCode indicates a class code outside the taxonomy.
	ErrUnknownCode = errors.New("taxonomy: unknown class code")
	// ErrDuplicateCode indicates the same code was declared twice.
	ErrDuplicateCode = errors.New("taxonomy: duplicate class code")
	// ErrEmptyTaxonomy indicates a taxonomy without classes.
	ErrEmptyTaxonomy = errors.New("taxonomy: no classes defined")
	// ErrBadBinding indicates a source binding with an empty source id or a
	// code bound twice.
	ErrBadBinding = errors.New("taxonomy: invalid source binding")
)
