package dynamo

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Run is one member of an Ensemble: a named integrator and its config.
type Run struct {
	Name       string
	Integrator Integrator
	Config     Config
}

// Ensemble integrates the same system and initial state with several
// integrators concurrently.
type Ensemble struct {
	sys  System
	runs []Run
}

func NewEnsemble(sys System, runs ...Run) *Ensemble {
	return &Ensemble{sys: sys, runs: runs}
}

// Run returns results in the order the runs were given. The first failing
// run cancels the others.
func (e *Ensemble) Run(ctx context.Context, x0 State) ([]*Result, error) {
	results := make([]*Result, len(e.runs))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range e.runs {
		i, r := i, r
		g.Go(func() error {
			res, err := New(e.sys, r.Integrator).Run(gctx, x0, r.Config)
			if err != nil {
				return fmt.Errorf("%s: %w", r.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
