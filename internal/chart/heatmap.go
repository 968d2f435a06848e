package chart

import (
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/san-kum/mathmodel/internal/export"
)

// Surface samples z = f(x, y) on a regular grid.
type Surface struct {
	Xs, Ys []float64
	Zs     [][]float64 // Zs[row][col]
}

// Sample evaluates f over cols × rows points spanning the rectangle.
func Sample(f func(x, y float64) float64, xMin, xMax, yMin, yMax float64, cols, rows int) *Surface {
	s := &Surface{Xs: linspace(xMin, xMax, cols), Ys: linspace(yMin, yMax, rows)}
	s.Zs = make([][]float64, rows)
	for r, y := range s.Ys {
		s.Zs[r] = make([]float64, cols)
		for c, x := range s.Xs {
			s.Zs[r][c] = f(x, y)
		}
	}
	return s
}

func (s *Surface) Dims() (c, r int)   { return len(s.Xs), len(s.Ys) }
func (s *Surface) Z(c, r int) float64 { return s.Zs[r][c] }
func (s *Surface) X(c int) float64    { return s.Xs[c] }
func (s *Surface) Y(r int) float64    { return s.Ys[r] }

// colormapPalette exposes an export colormap as a gonum palette.
type colormapPalette []color.Color

func (p colormapPalette) Colors() []color.Color { return p }

// Palette discretises cmap into n colors.
func Palette(cmap *export.Colormap, n int) palette.Palette {
	if n < 2 {
		n = 2
	}
	p := make(colormapPalette, n)
	for i := range p {
		p[i] = cmap.At(float64(i) / float64(n-1))
	}
	return p
}

// HeatMap returns a plot of the surface colored with cmap.
func HeatMap(title string, s *Surface, cmap *export.Colormap) *plot.Plot {
	p := New(title, "x", "y")
	p.Add(plotter.NewHeatMap(s, Palette(cmap, 255)))
	return p
}

// linspace returns n points from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
