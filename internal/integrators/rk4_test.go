package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/mathmodel/internal/dynamo"
)

// rotation is x' = y, y' = -x, solved by (cos t, -sin t) from (1, 0).
type rotation struct{}

func (rotation) Derive(x dynamo.State, _ float64) dynamo.State { return dynamo.State{x[1], -x[0]} }
func (rotation) StateDim() int                                  { return 2 }

func TestFixedStepAccuracy(t *testing.T) {
	tests := []struct {
		name  string
		integ dynamo.Integrator
		tol   float64
	}{
		{"euler", NewEuler(), 1e-2},
		{"rk4", NewRK4(), 1e-9},
		{"rk23", NewRK23(), 1e-5},
		{"rk45", NewRK45(), 1e-9},
	}
	const dt, steps = 0.01, 100

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := dynamo.State{1, 0}
			for i := 0; i < steps; i++ {
				x = tt.integ.Step(rotation{}, x, float64(i)*dt, dt)
			}
			wantX, wantY := math.Cos(steps*dt), -math.Sin(steps*dt)
			if math.Abs(x[0]-wantX) > tt.tol || math.Abs(x[1]-wantY) > tt.tol {
				t.Errorf("got (%.10f, %.10f), want (%.10f, %.10f)", x[0], x[1], wantX, wantY)
			}
		})
	}
}

func TestEulerMatchesHandWrittenRecurrence(t *testing.T) {
	got := NewEuler().Step(rotation{}, dynamo.State{1, 0}, 0, 0.1)
	if got[0] != 1 || got[1] != -0.1 {
		t.Errorf("Euler step = %v, want [1 -0.1]", got)
	}
}

func TestRK4LeavesInputUntouched(t *testing.T) {
	x := dynamo.State{1, 0}
	NewRK4().Step(rotation{}, x, 0, 0.5)
	if x[0] != 1 || x[1] != 0 {
		t.Errorf("input modified: %v", x)
	}
}
