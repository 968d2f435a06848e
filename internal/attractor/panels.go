package attractor

import (
	"github.com/san-kum/mathmodel/internal/dynamo"
	"github.com/san-kum/mathmodel/internal/integrators"
)

var (
	DefaultSpan    = [2]float64{0, 150}
	DefaultInitial = dynamo.State{-0.8, 0.8, 0.8}
)

// DefaultEulerSteps is the number of samples of the hand-written Euler panel.
const DefaultEulerSteps = 10000

// EulerConfig reproduces a fixed-step Euler solve that stores `samples`
// states, the first being the initial one, with dt = span length / samples.
func EulerConfig(span [2]float64, samples int) dynamo.Config {
	dt := (span[1] - span[0]) / float64(samples)
	return dynamo.Config{
		Span:          [2]float64{span[0], span[0] + float64(samples-1)*dt},
		Steps:         samples - 1,
		ValidateState: true,
	}
}

// Panels returns the four integrations drawn side by side: two adaptive
// embedded pairs, classic RK4 and Euler.
func Panels(span [2]float64, tol float64) []dynamo.Run {
	adaptive := dynamo.Config{
		Span:          span,
		Dt:            0.01,
		Tolerance:     tol,
		MinDt:         1e-10,
		MaxDt:         0.5,
		Adaptive:      true,
		ValidateState: true,
	}
	return []dynamo.Run{
		{Name: "RK23", Integrator: integrators.NewRK23(), Config: adaptive},
		{Name: "RK45", Integrator: integrators.NewRK45(), Config: adaptive},
		{Name: "RK4", Integrator: integrators.NewRK4(), Config: dynamo.Config{Span: span, Dt: 0.01, ValidateState: true}},
		{Name: "Euler", Integrator: integrators.NewEuler(), Config: EulerConfig(span, DefaultEulerSteps)},
	}
}
