package spatial

import "errors"

var (
	ErrNoContour    = errors.New("spatial: no foreground contour in image")
	ErrUnknownGraph = errors.New("spatial: unknown graph")
	ErrDegenerate   = errors.New("spatial: outline needs at least three points")
)
