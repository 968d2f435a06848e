package dynamo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// State is a point in phase space.
type State []float64

func (s State) Clone() State { return append(State(nil), s...) }

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Norm is the Euclidean length of s.
func (s State) Norm() float64 { return floats.Norm(s, 2) }

// Add and Sub combine s with other component-wise. Components of s past the
// end of other are copied unchanged.
func (s State) Add(other State) State { return s.combine(other, 1) }

func (s State) Sub(other State) State { return s.combine(other, -1) }

func (s State) Scale(factor float64) State {
	out := s.Clone()
	floats.Scale(factor, out)
	return out
}

func (s State) combine(other State, sign float64) State {
	out := s.Clone()
	n := min(len(s), len(other))
	floats.AddScaled(out[:n], sign, other[:n])
	return out
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Configurable systems expose named parameters for sweeps and presets.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

// AdaptiveIntegrator returns the proposed state, a suggested next step and
// the error ratio (estimated error / tol). A ratio above 1 rejects the step.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, float64)
}

type Config struct {
	Span          [2]float64 `yaml:"span"`
	Dt            float64    `yaml:"dt"`
	Steps         int        `yaml:"steps"`
	Tolerance     float64    `yaml:"tolerance"`
	MaxDt         float64    `yaml:"max_dt"`
	MinDt         float64    `yaml:"min_dt"`
	Adaptive      bool       `yaml:"adaptive"`
	ValidateState bool       `yaml:"validate_state"`
}

func DefaultConfig() Config {
	return Config{
		Span:          [2]float64{0, 150},
		Dt:            0.01,
		Tolerance:     1e-6,
		MaxDt:         0.1,
		MinDt:         1e-10,
		Adaptive:      false,
		ValidateState: true,
	}
}

type Result struct {
	States     []State
	Times      []float64
	StepsTaken int
	Rejected   int
}

// Component returns the i-th coordinate of every stored state.
func (r *Result) Component(i int) []float64 {
	out := make([]float64, len(r.States))
	for k, s := range r.States {
		if i < len(s) {
			out[k] = s[i]
		}
	}
	return out
}

func (r *Result) Final() State {
	if len(r.States) == 0 {
		return nil
	}
	return r.States[len(r.States)-1]
}
