package optim

import (
	"context"
	"errors"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// ErrNoCandidate is returned when every grid point failed to evaluate.
var ErrNoCandidate = errors.New("optim: no grid point could be evaluated")

// Objective scores one parameter assignment; lower is better.
type Objective func(ctx context.Context, params map[string]float64) (float64, error)

type GridSearch struct {
	names   []string
	ranges  [][]float64
	Workers int
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{names: params, ranges: ranges, Workers: runtime.NumCPU()}
}

// points enumerates the cartesian grid, last parameter varying fastest.
func (g *GridSearch) points() []map[string]float64 {
	total := 1
	for _, r := range g.ranges {
		total *= len(r)
	}
	out := make([]map[string]float64, 0, total)
	idx := make([]int, len(g.names))
	for n := 0; n < total; n++ {
		p := make(map[string]float64, len(g.names))
		for d, name := range g.names {
			p[name] = g.ranges[d][idx[d]]
		}
		out = append(out, p)
		for d := len(idx) - 1; d >= 0; d-- {
			if idx[d]++; idx[d] < len(g.ranges[d]) {
				break
			}
			idx[d] = 0
		}
	}
	return out
}

// Search evaluates objective at every grid point, Workers at a time, and
// returns the minimising assignment. Points whose evaluation fails or is
// NaN are skipped; ties go to the point enumerated first.
func (g *GridSearch) Search(ctx context.Context, objective Objective) (map[string]float64, float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	pts := g.points()
	scores := make([]float64, len(pts))

	eg, ectx := errgroup.WithContext(ctx)
	if g.Workers > 0 {
		eg.SetLimit(g.Workers)
	}
	for i, p := range pts {
		i, p := i, p
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			v, err := objective(ectx, p)
			if err != nil {
				v = math.NaN()
			}
			scores[i] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	best, at := math.Inf(1), -1
	for i, v := range scores {
		if !math.IsNaN(v) && (at < 0 || v < best) {
			best, at = v, i
		}
	}
	if at < 0 {
		return nil, 0, ErrNoCandidate
	}
	return pts[at], best, nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
