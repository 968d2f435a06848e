// Package optim holds small derivative-free optimisers: a finite-difference
// hill climb and an exhaustive grid search.
package optim

import (
	"context"
	"fmt"
	"math"
)

// Func2 is a scalar field over the plane.
type Func2 func(x, y float64) float64

// Wave is the test surface sin(x − 9)·sin(y − 5.4).
func Wave(x, y float64) float64 {
	return math.Sin(x-9) * math.Sin(y-5.4)
}

// AscentConfig controls Ascend.
type AscentConfig struct {
	X0, Y0    float64
	Step      float64 // initial finite-difference step h
	Tolerance float64 // stop once |Δz| falls below this
	MaxIter   int
}

func DefaultAscent() AscentConfig {
	return AscentConfig{Step: 0.1, Tolerance: 1e-4, MaxIter: 10000}
}

// Path is the sequence of points visited by Ascend.
type Path struct {
	X, Y, Z    []float64
	Step       float64
	Iterations int
	Converged  bool
}

// Last returns the final point.
func (p *Path) Last() (x, y, z float64) {
	n := len(p.Z) - 1
	return p.X[n], p.Y[n], p.Z[n]
}

// Summary formats the final point, step and iteration count.
func (p *Path) Summary() string {
	x, y, z := p.Last()
	return fmt.Sprintf("x = %.4f, y = %.4f, z = %.4f, h = %g, i = %d", x, y, z, p.Step, p.Iterations)
}

// Ascend climbs f with forward differences. Each move adds the difference
// quotient of each coordinate to that coordinate; h is halved whenever a
// move fails to increase f. It stops when consecutive values differ by
// less than the tolerance or after MaxIter moves.
func Ascend(f Func2, cfg AscentConfig) *Path {
	h := cfg.Step
	x, y := cfg.X0, cfg.Y0
	p := &Path{X: []float64{x}, Y: []float64{y}, Z: []float64{f(x, y)}}

	for p.Iterations < cfg.MaxIter {
		z := p.Z[len(p.Z)-1]
		xi := x + (f(x+h, y)-z)/h
		yi := y + (f(x, y+h)-z)/h
		zi := f(xi, yi)
		p.X, p.Y, p.Z = append(p.X, xi), append(p.Y, yi), append(p.Z, zi)
		if z >= zi {
			h *= 0.5
		}
		p.Iterations++
		x, y = xi, yi
		if math.Abs(z-zi) < cfg.Tolerance {
			p.Converged = true
			break
		}
	}
	p.Step = h
	return p
}

// BestStart searches a coarse grid for the highest point of f, to seed
// Ascend away from flat regions.
func BestStart(ctx context.Context, f Func2, xs, ys []float64) (x, y float64, err error) {
	gs := NewGridSearch([]string{"x", "y"}, [][]float64{xs, ys})
	best, _, err := gs.Search(ctx, func(_ context.Context, p map[string]float64) (float64, error) {
		return -f(p["x"], p["y"]), nil
	})
	if err != nil {
		return 0, 0, err
	}
	return best["x"], best["y"], nil
}
