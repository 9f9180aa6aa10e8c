package pipeline

import "errors"

var (
	ErrPipeline    = errors.New("pipeline failed")
	ErrInterrupted = errors.New("pipeline interrupted")
	ErrPanic       = errors.New("step panicked")
)
