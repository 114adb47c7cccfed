package stats

import "errors"

var (
	// ErrUnknownClass indicates a cell code outside the taxonomy.
	ErrUnknownClass = errors.New("stats: code outside taxonomy")
	// ErrEmpty indicates there are no classified cells to summarize.
	ErrEmpty = errors.New("stats: no classified cells")
)
