package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEpochs indicates an empty input list.
	ErrNoEpochs = errors.New("pipeline: no epochs")
	// ErrMissingInput indicates an epoch lacking a required source map.
	ErrMissingInput = errors.New("pipeline: missing input map")
	// ErrUnknownClass indicates an input cell outside the configured taxonomy.
	ErrUnknownClass = errors.New("pipeline: class code outside taxonomy")
)

// StageError attributes a failure to the stage and epoch it occurred in.
type StageError struct {
	Stage string
	Epoch string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: epoch %q: stage %s: %v", e.Epoch, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
