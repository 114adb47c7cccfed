package smooth

import "errors"

// ErrInvalidParams indicates a parameter outside its documented range.
var ErrInvalidParams = errors.New("smooth: invalid parameters")
