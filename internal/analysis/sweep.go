package analysis

import (
	"fmt"
	"strings"

	"github.com/san-kum/mathmodel/internal/dynamo"
)

type ConfigurableSystem interface {
	dynamo.System
	dynamo.Configurable
}

// SweepPoint holds the local maxima of one state component observed for a
// single parameter value.
type SweepPoint struct {
	Param float64
	Peaks []float64
}

// SweepConfig describes a one-parameter bifurcation sweep.
type SweepConfig struct {
	Param      string
	Min, Max   float64
	Steps      int
	Component  int
	Dt         float64
	Transient  float64
	Record     float64
	MaxPerStep int
}

// Sweep integrates sys for each parameter value, discards the transient and
// records the peaks of the chosen component. The parameter is restored
// afterwards.
func Sweep(sys ConfigurableSystem, integ dynamo.Integrator, x0 dynamo.State, cfg SweepConfig) ([]SweepPoint, error) {
	original, ok := sys.Params()[cfg.Param]
	if !ok {
		return nil, fmt.Errorf("%w: %q", dynamo.ErrUnknownParam, cfg.Param)
	}
	if cfg.Component < 0 || cfg.Component >= len(x0) {
		return nil, fmt.Errorf("%w: component %d", dynamo.ErrDimensionMismatch, cfg.Component)
	}
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("%w: dt must be positive", dynamo.ErrInvalidConfig)
	}
	defer sys.SetParam(cfg.Param, original)

	steps := cfg.Steps
	if steps < 2 {
		steps = 2
	}
	maxPeaks := cfg.MaxPerStep
	if maxPeaks <= 0 {
		maxPeaks = 64
	}
	delta := (cfg.Max - cfg.Min) / float64(steps-1)

	results := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		param := cfg.Min + float64(i)*delta
		if err := sys.SetParam(cfg.Param, param); err != nil {
			return nil, err
		}

		x := x0.Clone()
		t := 0.0
		for ; t < cfg.Transient; t += cfg.Dt {
			x = integ.Step(sys, x, t, cfg.Dt)
		}

		point := SweepPoint{Param: param}
		prev2, prev1 := x[cfg.Component], x[cfg.Component]
		for end := t + cfg.Record; t < end && len(point.Peaks) < maxPeaks; t += cfg.Dt {
			x = integ.Step(sys, x, t, cfg.Dt)
			if !x.IsValid() {
				break
			}
			cur := x[cfg.Component]
			if prev1 > prev2 && prev1 >= cur {
				point.Peaks = append(point.Peaks, prev1)
			}
			prev2, prev1 = prev1, cur
		}
		results = append(results, point)
	}
	return results, nil
}

// SweepToASCII plots sweep peaks with the parameter on the horizontal axis.
func SweepToASCII(data []SweepPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minVal, maxVal float64
	found := false
	for _, p := range data {
		for _, v := range p.Peaks {
			if !found {
				minVal, maxVal = v, v
				found = true
				continue
			}
			minVal, maxVal = min(minVal, v), max(maxVal, v)
		}
	}
	if !found {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for i, p := range data {
		col := min(i*width/len(data), width-1)
		for _, v := range p.Peaks {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			canvas[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
