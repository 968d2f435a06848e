package gis

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

func parseColor(hex string) (color.Color, error) {
	if hex == "" {
		return nil, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", hex, err)
	}
	return c, nil
}
