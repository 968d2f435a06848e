package gis

import "errors"

var (
	ErrUnknownLayer = errors.New("gis: unknown layer")
	ErrNoShapes     = errors.New("gis: no visible shapes")
)
