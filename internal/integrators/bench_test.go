package integrators

import (
	"testing"

	"github.com/san-kum/mathmodel/internal/dynamo"
)

type benchDynamics struct{}

func (b *benchDynamics) StateDim() int { return 3 }
func (b *benchDynamics) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{-x[1] - x[2], x[0] + 0.2*x[1], 0.2 + x[2]*(x[0]-5.7)}
}

func benchmarkStep(b *testing.B, integ dynamo.Integrator) {
	dyn := &benchDynamics{}
	x := dynamo.State{-0.8, 0.8, 0.8}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(dyn, x, 0, 0.001)
	}
}

func BenchmarkEuler(b *testing.B) { benchmarkStep(b, NewEuler()) }
func BenchmarkRK4(b *testing.B)   { benchmarkStep(b, NewRK4()) }
func BenchmarkRK23(b *testing.B)  { benchmarkStep(b, NewRK23()) }
func BenchmarkRK45(b *testing.B)  { benchmarkStep(b, NewRK45()) }
