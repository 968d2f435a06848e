package config

import (
	"sort"

	"github.com/san-kum/mathmodel/internal/fractal"
)

func mandelbrotRegion(xMin, xMax, yMin, yMax float64, iterations int) FractalConfig {
	return FractalConfig{
		Name: "mandelbrot", Width: 800, Height: 800, Iterations: iterations, Bailout: 2,
		Viewport: fractal.Viewport{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax},
		Colormap: DefaultColormap,
	}
}

var FractalPresets = map[string]FractalConfig{
	"julia": {
		Name: "julia", Width: DefaultWidth, Height: DefaultHeight, Iterations: DefaultIterations,
		Bailout: 10, CIm: -0.8,
		Viewport: fractal.Viewport{XMin: -1.5, XMax: 1.5, YMin: -1.5, YMax: 1.5},
		Colormap: DefaultColormap,
	},
	"julia-dendrite": {
		Name: "julia", Width: 800, Height: 800, Iterations: 200, Bailout: 10, CIm: 1,
		Viewport: fractal.Viewport{XMin: -1.6, XMax: 1.6, YMin: -1.6, YMax: 1.6},
		Colormap: DefaultColormap,
	},
	"mandelbrot":           mandelbrotRegion(-2.5, 1, -1.25, 1.25, 100),
	"seahorse-valley":      mandelbrotRegion(-0.8, -0.7, 0.05, 0.15, 500),
	"elephant-valley":      mandelbrotRegion(-1.85, -1.75, -0.10, -0.02, 500),
	"spiral-minibrot":      mandelbrotRegion(-0.7435, -0.7420, 0.1310, 0.1325, 1000),
	"triple-spiral":        mandelbrotRegion(-0.7480, -0.7450, 0.0950, 0.0980, 1000),
	"valley-of-the-dragon": mandelbrotRegion(-0.7400, -0.7350, 0.1800, 0.1850, 1000),
	"burning-ship": {
		Name: "burning-ship", Width: 900, Height: 600, Iterations: 100, Bailout: 4,
		Viewport: fractal.Viewport{XMin: -2.5, XMax: 1.5, YMin: -1, YMax: 2},
		Colormap: DefaultColormap,
	},
	"lyapunov": {
		Name: "lyapunov", Width: 400, Height: 200, Iterations: 200, Sequence: "AB",
		Viewport: fractal.Viewport{XMin: 2, XMax: 4, YMin: 2, YMax: 4},
		Colormap: "cividis",
	},
	"lyapunov-zircon": {
		Name: "lyapunov", Width: 400, Height: 400, Iterations: 200, Sequence: "BBBBBBAAAAAA",
		Viewport: fractal.Viewport{XMin: 3.4, XMax: 4, YMin: 2.5, YMax: 3.4},
		Colormap: "cividis",
	},
}

var AnimationPresets = map[string]AnimationConfig{
	"julia-anim": {
		Frames: 100, Width: 1600, Height: 800, Iterations: 50, Bailout: 10, Radius: 0.7885,
		Viewport: fractal.Viewport{XMin: 3.4, XMax: -3.4, YMin: -1.7, YMax: 1.7},
		Delay:    4,
	},
	"julia-anim-small": {
		Frames: 40, Width: 400, Height: 200, Iterations: 50, Bailout: 10, Radius: 0.7885,
		Viewport: fractal.Viewport{XMin: 3.4, XMax: -3.4, YMin: -1.7, YMax: 1.7},
		Delay:    8,
	},
}

var AttractorPresets = map[string]AttractorConfig{
	"rossler": {
		System: "rossler", Span: [2]float64{0, 150}, Initial: []float64{-0.8, 0.8, 0.8},
		Tolerance: DefaultTolerance, EulerSteps: 10000,
	},
	"chua": {
		System: "chua", Span: [2]float64{0, 150}, Initial: []float64{-0.8, 0.8, 0.8},
		Tolerance: DefaultTolerance, EulerSteps: 10000,
	},
	"ring": {
		System: "ring", Span: [2]float64{0, 600}, Initial: []float64{-0.8, 0.8, 0.8},
		Tolerance: DefaultTolerance, EulerSteps: 40000,
	},
	"lorenz": {
		System: "lorenz", Span: [2]float64{0, 50}, Initial: []float64{1, 1, 1},
		Tolerance: DefaultTolerance, EulerSteps: 20000,
	},
	"rossler-funnel": {
		System: "rossler", Span: [2]float64{0, 150}, Initial: []float64{-0.8, 0.8, 0.8},
		Tolerance: DefaultTolerance, EulerSteps: 10000, Params: map[string]float64{"a": 0.3, "c": 13},
	},
}

// Kinds lists the preset groups.
func Kinds() []string {
	return []string{"animation", "attractor", "fractal"}
}

// GetPreset returns the default configuration with one section replaced by
// the named preset, or nil when kind or name is unknown.
func GetPreset(kind, name string) *Config {
	cfg := DefaultConfig()
	switch kind {
	case "fractal":
		p, ok := FractalPresets[name]
		if !ok {
			return nil
		}
		cfg.Fractal = p
	case "animation":
		p, ok := AnimationPresets[name]
		if !ok {
			return nil
		}
		cfg.Animation = p
	case "attractor":
		p, ok := AttractorPresets[name]
		if !ok {
			return nil
		}
		p.Initial = append([]float64(nil), p.Initial...)
		if p.Params != nil {
			params := make(map[string]float64, len(p.Params))
			for k, v := range p.Params {
				params[k] = v
			}
			p.Params = params
		}
		cfg.Attractor = p
	default:
		return nil
	}
	return cfg
}

// ListPresets returns the sorted preset names of kind, or nil.
func ListPresets(kind string) []string {
	var names []string
	switch kind {
	case "fractal":
		for name := range FractalPresets {
			names = append(names, name)
		}
	case "animation":
		for name := range AnimationPresets {
			names = append(names, name)
		}
	case "attractor":
		for name := range AttractorPresets {
			names = append(names, name)
		}
	default:
		return nil
	}
	sort.Strings(names)
	return names
}
