package consistency

import "errors"

// ErrInvalidParams indicates a parameter outside its documented range or a
// transition rule naming unknown classes.
var ErrInvalidParams = errors.New("consistency: invalid parameters")
