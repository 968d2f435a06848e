package main

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/mathmodel/internal/config"
	"github.com/san-kum/mathmodel/internal/export"
	"github.com/san-kum/mathmodel/internal/fractal"
	"github.com/san-kum/mathmodel/internal/storage"
	"github.com/san-kum/mathmodel/internal/viz"
)

var (
	fractalName string
	preset      string
	width       int
	height      int
	iterations  int
	bailout     float64
	workers     int
	rowsPerTask int
	cRe, cIm    float64
	colormap    string
	output      string
	show        bool

	frames      int
	radius      float64
	delay       int
	animWorkers int
	animOutput  string
)

func fractalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "render a fractal to PNG",
		RunE:  runFractal,
	}
	cmd.Flags().StringVarP(&fractalName, "fractal", "f", "julia", "fractal name (julia, mandelbrot, burning-ship, lyapunov)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height")
	cmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "iteration limit")
	cmd.Flags().Float64Var(&bailout, "bailout", 0, "escape radius (0 uses the fractal's own)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent tasks (0 uses every CPU)")
	cmd.Flags().IntVar(&rowsPerTask, "rows", 0, "rows per task")
	cmd.Flags().Float64Var(&cRe, "cre", 0, "real part of the julia constant")
	cmd.Flags().Float64Var(&cIm, "cim", -0.8, "imaginary part of the julia constant")
	cmd.Flags().StringVar(&colormap, "colormap", config.DefaultColormap, "colormap")
	cmd.Flags().StringVarP(&output, "output", "o", "images/fractal.png", "output PNG")
	cmd.Flags().BoolVar(&show, "show", false, "also draw the image in the terminal")
	return cmd
}

// fractalConfig merges the config file, an optional preset and the flags
// that were set explicitly, in that order.
func fractalConfig(cmd *cobra.Command) (config.FractalConfig, bool) {
	fc := cfg.Fractal
	if preset != "" {
		p := config.GetPreset("fractal", preset)
		if p == nil {
			unknown("preset", preset, config.ListPresets("fractal"))
			return fc, false
		}
		fc = p.Fractal
	}
	flags := cmd.Flags()
	if flags.Changed("fractal") {
		fc.Name = fractalName
	}
	if flags.Changed("width") {
		fc.Width = width
	}
	if flags.Changed("height") {
		fc.Height = height
	}
	if flags.Changed("iterations") {
		fc.Iterations = iterations
	}
	if flags.Changed("bailout") {
		fc.Bailout = bailout
	}
	if flags.Changed("workers") {
		fc.Workers = workers
	}
	if flags.Changed("rows") {
		fc.RowsPerTask = rowsPerTask
	}
	if flags.Changed("cre") {
		fc.CRe = cRe
	}
	if flags.Changed("cim") {
		fc.CIm = cIm
	}
	if flags.Changed("colormap") {
		fc.Colormap = colormap
	}
	return fc, true
}

func shaderFor(fc config.FractalConfig) (fractal.Shader, bool) {
	if fc.Name == "lyapunov" {
		p := fractal.DefaultLyapunov()
		if fc.Sequence != "" {
			p.Sequence = fc.Sequence
		}
		p.Iterations = fc.Iterations
		return fractal.LyapunovShader(p), true
	}
	rule, err := fractal.Lookup(fc.Name)
	if err != nil {
		unknown("fractal", fc.Name, append(fractal.Names(), "lyapunov"))
		return nil, false
	}
	if rule.Family == fractal.Parameter {
		rule = rule.WithC(fc.C())
	}
	return fractal.EscapeShader(rule, fc.Bailout, fc.Iterations), true
}

func runFractal(cmd *cobra.Command, _ []string) error {
	fc, ok := fractalConfig(cmd)
	if !ok {
		return nil
	}
	shader, ok := shaderFor(fc)
	if !ok {
		return nil
	}
	cmap, err := export.LookupColormap(fc.Colormap)
	if err != nil {
		return unknown("colormap", fc.Colormap, export.ColormapNames())
	}

	r := newRenderer(fc.Workers, fc.RowsPerTask)
	logger.Info("rendering", "fractal", fc.Name, "size", fmt.Sprintf("%dx%d", fc.Width, fc.Height), "iterations", fc.Iterations, "workers", r.Workers())
	start := time.Now()
	grid, err := r.Render(cmd.Context(), fc.Viewport, fc.Width, fc.Height, shader)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := export.WritePNG(output, grid, cmap); err != nil {
		return err
	}
	lo, hi := grid.MinMax()
	logger.Debug("intensity range", "min", lo, "max", hi)

	if show {
		fmt.Println(viz.Shade(grid, cmap, 80, 20))
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Kind: "fractal",
		Name: fc.Name,
		Params: map[string]float64{
			"width": float64(fc.Width), "height": float64(fc.Height),
			"iterations": float64(fc.Iterations), "bailout": fc.Bailout,
			"c_re": fc.CRe, "c_im": fc.CIm,
			"x_min": fc.Viewport.XMin, "x_max": fc.Viewport.XMax,
			"y_min": fc.Viewport.YMin, "y_max": fc.Viewport.YMax,
		},
		Metrics:   map[string]float64{"seconds": elapsed.Seconds(), "min": lo, "max": hi},
		Artifacts: []string{output},
	}, nil)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s in %v\n", output, elapsed.Round(time.Millisecond))
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func animateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "render a rotating julia set to GIF",
		RunE:  runAnimate,
	}
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&frames, "frames", 100, "number of frames")
	cmd.Flags().IntVar(&width, "width", 1600, "frame width")
	cmd.Flags().IntVar(&height, "height", 800, "frame height")
	cmd.Flags().Float64Var(&radius, "radius", 0.7885, "modulus of the julia constant")
	cmd.Flags().IntVar(&iterations, "iterations", 50, "iteration limit")
	cmd.Flags().IntVar(&delay, "delay", 4, "frame delay in hundredths of a second")
	cmd.Flags().IntVar(&animWorkers, "workers", 0, "frames rendered at once (0 uses every CPU)")
	cmd.Flags().StringVarP(&animOutput, "output", "o", "images/julia.gif", "output GIF")
	return cmd
}

func runAnimate(cmd *cobra.Command, _ []string) error {
	ac := cfg.Animation
	if preset != "" {
		p := config.GetPreset("animation", preset)
		if p == nil {
			return unknown("preset", preset, config.ListPresets("animation"))
		}
		ac = p.Animation
	}
	flags := cmd.Flags()
	if flags.Changed("frames") {
		ac.Frames = frames
	}
	if flags.Changed("width") {
		ac.Width = width
	}
	if flags.Changed("height") {
		ac.Height = height
	}
	if flags.Changed("radius") {
		ac.Radius = radius
	}
	if flags.Changed("iterations") {
		ac.Iterations = iterations
	}
	if flags.Changed("delay") {
		ac.Delay = delay
	}
	if err := fractal.CheckSize(ac.Width, ac.Height); err != nil {
		return err
	}

	// every frame renders on one goroutine; the frames run in parallel
	frameRenderer := newRenderer(1, 0)
	pool := newRenderer(animWorkers, 0)
	logger.Info("animating", "frames", ac.Frames, "size", fmt.Sprintf("%dx%d", ac.Width, ac.Height), "workers", pool.Workers())

	start := time.Now()
	grids, err := pool.RenderFrames(cmd.Context(), ac.Frames, func(ctx context.Context, i int) (*fractal.Grid, error) {
		theta := 0.0
		if ac.Frames > 1 {
			theta = 2 * math.Pi * float64(i) / float64(ac.Frames-1)
		}
		rule := fractal.Julia(cmplx.Rect(ac.Radius, theta))
		return frameRenderer.Render(ctx, ac.Viewport, ac.Width, ac.Height, fractal.EscapeShader(rule, ac.Bailout, ac.Iterations))
	})
	if err != nil {
		return err
	}
	if err := export.WriteGIF(animOutput, grids, ac.Delay); err != nil {
		return err
	}
	fmt.Printf("wrote %d frames to %s in %v\n", len(grids), animOutput, time.Since(start).Round(time.Millisecond))
	return nil
}

func exploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "pan and zoom fractals in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var targets []viz.Target
			for _, name := range []string{"mandelbrot", "julia", "burning-ship"} {
				fc := config.FractalPresets[name]
				rule, err := fractal.Lookup(fc.Name)
				if err != nil {
					return err
				}
				if rule.Family == fractal.Parameter {
					rule = rule.WithC(fc.C())
				}
				targets = append(targets, viz.Target{Rule: rule, Viewport: fc.Viewport, Iterations: fc.Iterations, Bailout: fc.Bailout})
			}
			return viz.Explore(cmd.Context(), newRenderer(0, 0), targets...)
		},
	}
}
