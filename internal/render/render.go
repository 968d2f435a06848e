package render

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/mathmodel/internal/fractal"
)

// DefaultRowsPerTask is the span height used when none is configured.
const DefaultRowsPerTask = 8

type Renderer struct {
	workers     int
	rowsPerTask int
	logger      *log.Logger
}

type Option func(*Renderer)

// WithWorkers bounds the number of concurrent tasks. Non-positive values
// select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(r *Renderer) { r.workers = n }
}

func WithRowsPerTask(n int) Option {
	return func(r *Renderer) { r.rowsPerTask = n }
}

func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{rowsPerTask: DefaultRowsPerTask}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.NumCPU()
	}
	if r.rowsPerTask <= 0 {
		r.rowsPerTask = DefaultRowsPerTask
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r
}

func (r *Renderer) Workers() int { return r.workers }

type spanResult struct {
	index  int
	values []float64
}

// Render evaluates shader at every pixel of a width x height image of vp.
func (r *Renderer) Render(ctx context.Context, vp fractal.Viewport, width, height int, shader fractal.Shader) (*fractal.Grid, error) {
	if err := fractal.CheckSize(width, height); err != nil {
		return nil, err
	}
	if err := vp.Validate(); err != nil {
		return nil, err
	}

	spans := Partition(height, r.rowsPerTask)
	grid := fractal.NewGrid(width, height)

	if r.workers == 1 || len(spans) == 1 {
		for _, span := range spans {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			values, err := evalSpan(vp, width, height, span, shader)
			if err != nil {
				return nil, err
			}
			copy(grid.Values[span.Start*width:], values)
		}
		return grid, nil
	}

	results := make(chan spanResult, len(spans))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, span := range spans {
		span := span
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			values, err := evalSpan(vp, width, height, span, shader)
			if err != nil {
				return err
			}
			r.logger.Debug("span done", "index", span.Index, "rows", span.Rows())
			results <- spanResult{index: span.Index, values: values}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	gathered := make([]spanResult, 0, len(spans))
	for res := range results {
		gathered = append(gathered, res)
	}
	if len(gathered) != len(spans) {
		return nil, fmt.Errorf("render: gathered %d of %d spans", len(gathered), len(spans))
	}
	sort.Slice(gathered, func(i, j int) bool { return gathered[i].index < gathered[j].index })

	for _, res := range gathered {
		copy(grid.Values[spans[res.index].Start*width:], res.values)
	}
	return grid, nil
}

func evalSpan(vp fractal.Viewport, width, height int, span Span, shader fractal.Shader) (values []float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &TaskError{Index: span.Index, Panic: p}
		}
	}()

	values = make([]float64, span.Rows()*width)
	i := 0
	for row := span.Start; row < span.End; row++ {
		for col := 0; col < width; col++ {
			values[i] = shader(vp.Sample(col, row, width, height))
			i++
		}
	}
	return values, nil
}
