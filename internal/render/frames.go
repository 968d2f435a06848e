package render

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/mathmodel/internal/fractal"
)

// FrameFunc produces frame i of an animation.
type FrameFunc func(ctx context.Context, i int) (*fractal.Grid, error)

type frameResult struct {
	index int
	grid  *fractal.Grid
}

// RenderFrames runs frameFn for i in [0, n) with the renderer's worker bound
// and returns the frames in index order.
func (r *Renderer) RenderFrames(ctx context.Context, n int, frameFn FrameFunc) ([]*fractal.Grid, error) {
	if n <= 0 {
		return nil, nil
	}

	results := make(chan frameResult, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = &TaskError{Index: i, Panic: p}
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			grid, err := frameFn(gctx, i)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			r.logger.Debug("frame done", "index", i)
			results <- frameResult{index: i, grid: grid}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	gathered := make([]frameResult, 0, n)
	for res := range results {
		gathered = append(gathered, res)
	}
	sort.Slice(gathered, func(i, j int) bool { return gathered[i].index < gathered[j].index })

	frames := make([]*fractal.Grid, len(gathered))
	for i, res := range gathered {
		frames[i] = res.grid
	}
	return frames, nil
}
