package render

import (
	"errors"
	"fmt"
)

// ErrTaskPanic is matched by a TaskError produced from a recovered panic.
var ErrTaskPanic = errors.New("render: task panicked")

// TaskError reports a task that panicked instead of returning.
type TaskError struct {
	Index int
	Panic any
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("render: task %d panicked: %v", e.Index, e.Panic)
}

func (e *TaskError) Unwrap() error { return ErrTaskPanic }
