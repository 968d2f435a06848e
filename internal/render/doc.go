// Package render evaluates a [fractal.Shader] over every pixel of a
// viewport.
//
// The image is split into horizontal row spans. Each span is an independent
// task run on a bounded pool of goroutines; finished spans are sent back
// tagged with their index and the gatherer reassembles them in index order.
// The resulting grid is identical to a sequential evaluation for any number
// of workers.
//
// # Example
//
//	r := render.New(render.WithWorkers(8))
//	grid, err := r.Render(ctx, vp, 1000, 500, fractal.EscapeShader(rule, 10, 100))
package render
