package fractal

import "math"

// Grid is a row-major matrix of intensities, one per pixel.
type Grid struct {
	Width, Height int
	Values        []float64
}

func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, Values: make([]float64, width*height)}
}

func (g *Grid) At(x, y int) float64     { return g.Values[y*g.Width+x] }
func (g *Grid) Set(x, y int, v float64) { g.Values[y*g.Width+x] = v }

// Row returns row y as a slice aliasing the grid storage.
func (g *Grid) Row(y int) []float64 {
	return g.Values[y*g.Width : (y+1)*g.Width]
}

func (g *Grid) MinMax() (lo, hi float64) {
	if len(g.Values) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.Values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
