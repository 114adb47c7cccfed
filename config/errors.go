package config

import "errors"

// ErrInvalidConfiguration indicates a configuration value outside its
// documented range or referencing unknown classes.
var ErrInvalidConfiguration = errors.New("config: invalid configuration")
