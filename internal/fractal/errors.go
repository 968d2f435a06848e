package fractal

import "errors"

var (
	// ErrInvalidViewport indicates a viewport with a non-finite bound or zero extent.
	ErrInvalidViewport = errors.New("fractal: invalid viewport")

	// ErrInvalidSize indicates a non-positive grid dimension.
	ErrInvalidSize = errors.New("fractal: grid dimensions must be positive")

	// ErrUnknownFractal indicates a lookup for a name with no registered rule.
	ErrUnknownFractal = errors.New("fractal: unknown fractal")
)
