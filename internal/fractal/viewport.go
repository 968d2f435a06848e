package fractal

import (
	"fmt"
	"math"
)

// Viewport is the rectangle of the complex plane covered by an image.
// Samples include both edges, so column 0 maps to XMin and the last column
// to XMax. Row 0 is the top of the image and maps to YMax.
type Viewport struct {
	XMin float64 `yaml:"x_min" json:"x_min"`
	XMax float64 `yaml:"x_max" json:"x_max"`
	YMin float64 `yaml:"y_min" json:"y_min"`
	YMax float64 `yaml:"y_max" json:"y_max"`
}

func (v Viewport) Validate() error {
	for _, b := range []float64{v.XMin, v.XMax, v.YMin, v.YMax} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: non-finite bound in %+v", ErrInvalidViewport, v)
		}
	}
	if v.XMin == v.XMax || v.YMin == v.YMax {
		return fmt.Errorf("%w: zero extent in %+v", ErrInvalidViewport, v)
	}
	return nil
}

// CheckSize reports whether a width x height grid can be rendered.
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}

// Sample maps pixel (col, row) of a width x height grid onto the plane.
func (v Viewport) Sample(col, row, width, height int) complex128 {
	return complex(
		linspaceAt(v.XMin, v.XMax, col, width),
		linspaceAt(v.YMax, v.YMin, row, height),
	)
}

func (v Viewport) Center() complex128 {
	return complex((v.XMin+v.XMax)/2, (v.YMin+v.YMax)/2)
}

// Zoom scales the viewport around its center. Factors below 1 zoom in.
func (v Viewport) Zoom(factor float64) Viewport {
	c := v.Center()
	hw := (v.XMax - v.XMin) / 2 * factor
	hh := (v.YMax - v.YMin) / 2 * factor
	return Viewport{
		XMin: real(c) - hw, XMax: real(c) + hw,
		YMin: imag(c) - hh, YMax: imag(c) + hh,
	}
}

// Pan shifts the viewport by fractions of its own width and height.
func (v Viewport) Pan(fx, fy float64) Viewport {
	dx := (v.XMax - v.XMin) * fx
	dy := (v.YMax - v.YMin) * fy
	return Viewport{XMin: v.XMin + dx, XMax: v.XMax + dx, YMin: v.YMin + dy, YMax: v.YMax + dy}
}

func linspaceAt(from, to float64, i, n int) float64 {
	if n <= 1 {
		return from
	}
	return from + float64(i)*(to-from)/float64(n-1)
}
