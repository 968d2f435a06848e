package dynamo

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState      = errors.New("dynamo: state has a NaN or Inf component")
	ErrStepTooSmall      = errors.New("dynamo: adaptive step fell below MinDt")
	ErrDimensionMismatch = errors.New("dynamo: state length does not match the system")
	ErrUnknownParam      = errors.New("dynamo: unknown parameter")
	ErrInvalidConfig     = errors.New("dynamo: empty span or non-positive step")
)

// SimulationError records where in a run an integration failed.
type SimulationError struct {
	Step  int
	Time  float64
	State State
	Err   error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d at t=%g: %v", e.Step, e.Time, e.Err)
}

func (e *SimulationError) Unwrap() error { return e.Err }
