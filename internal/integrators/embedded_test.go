package integrators

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/san-kum/mathmodel/internal/dynamo"
)

type harmonicOscillator struct{}

func (h *harmonicOscillator) StateDim() int { return 2 }

func (h *harmonicOscillator) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (h *harmonicOscillator) Energy(x dynamo.State) float64 {
	return 0.5 * (x[0]*x[0] + x[1]*x[1])
}

func TestEmbeddedEnergyConservation(t *testing.T) {
	tests := []struct {
		name     string
		integ    *Embedded
		maxDrift float64
	}{
		{"rk45", NewRK45(), 1e-6},
		{"rk23", NewRK23(), 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dyn := &harmonicOscillator{}
			x := dynamo.State{1.0, 0.0}
			initial := dyn.Energy(x)
			dt := 0.01

			for i := 0; i < 10000; i++ {
				x = tt.integ.Step(dyn, x, float64(i)*dt, dt)
			}
			if !x.IsValid() {
				t.Fatal("produced invalid state")
			}

			drift := math.Abs(dyn.Energy(x)-initial) / initial
			if drift > tt.maxDrift {
				t.Errorf("energy drift too high: %e", drift)
			}
		})
	}
}

func TestEmbeddedAdaptiveStep(t *testing.T) {
	for _, integ := range []*Embedded{NewRK23(), NewRK45()} {
		dyn := &harmonicOscillator{}

		x, dtLoose, ratioLoose := integ.StepAdaptive(dyn, dynamo.State{1, 0}, 0, 0.1, 1e-2)
		if !x.IsValid() {
			t.Errorf("%s: invalid state", integ.Name())
		}
		if ratioLoose > 1 || dtLoose <= 0.1 {
			t.Errorf("%s: loose tolerance should accept and grow: ratio %v, dt %v", integ.Name(), ratioLoose, dtLoose)
		}

		_, dtTight, ratioTight := integ.StepAdaptive(dyn, dynamo.State{1, 0}, 0, 0.5, 1e-12)
		if ratioTight <= 1 || dtTight >= 0.5 {
			t.Errorf("%s: tight tolerance should reject and shrink: ratio %v, dt %v", integ.Name(), ratioTight, dtTight)
		}
	}
}

func TestEmbeddedConvergenceOrder(t *testing.T) {
	tests := []struct {
		integ    *Embedded
		minOrder float64
	}{
		{NewRK23(), 2.7},
		{NewRK45(), 4.3},
	}

	solve := func(integ *Embedded, steps int) float64 {
		dyn := &harmonicOscillator{}
		x := dynamo.State{1, 0}
		dt := 1.0 / float64(steps)
		for i := 0; i < steps; i++ {
			x = integ.Step(dyn, x, float64(i)*dt, dt)
		}
		return math.Abs(x[0] - math.Cos(1))
	}

	for _, tt := range tests {
		e1 := solve(tt.integ, 10)
		e2 := solve(tt.integ, 20)
		order := math.Log2(e1 / e2)
		if order < tt.minOrder {
			t.Errorf("%s: observed order %.2f, want >= %.1f", tt.integ.Name(), order, tt.minOrder)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
	if _, err := Lookup("dop853"); !errors.Is(err, ErrUnknownIntegrator) {
		t.Errorf("err = %v, want ErrUnknownIntegrator", err)
	}
	if !IsAdaptive("rk45") || !IsAdaptive("rk23") || IsAdaptive("rk4") {
		t.Error("IsAdaptive misreports")
	}
}

// rootDeadline has x' = sqrt(1-t): every stage past t = 1 is NaN.
type rootDeadline struct{}

func (rootDeadline) StateDim() int { return 1 }
func (rootDeadline) Derive(_ dynamo.State, t float64) dynamo.State {
	return dynamo.State{math.Sqrt(1 - t)}
}

func TestEmbeddedShrinksOnNaN(t *testing.T) {
	for _, integ := range []*Embedded{NewRK23(), NewRK45()} {
		_, dtNext, ratio := integ.StepAdaptive(rootDeadline{}, dynamo.State{0}, 1.5, 0.1, 1e-6)
		if !math.IsNaN(ratio) {
			t.Fatalf("%s: ratio = %v, want NaN", integ.Name(), ratio)
		}
		if dtNext >= 0.1 {
			t.Errorf("%s: dtNext = %v after a NaN step, want smaller than 0.1", integ.Name(), dtNext)
		}
	}
}

func TestEmbeddedRunPastNaNFailsFast(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := dynamo.Config{Span: [2]float64{0, 2}, Dt: 0.01, Tolerance: 1e-6, MinDt: 1e-10, MaxDt: 0.5, Adaptive: true}
	_, err := dynamo.New(rootDeadline{}, NewRK45()).Run(ctx, dynamo.State{0}, cfg)
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("run did not stop on its own")
	}
	if !errors.Is(err, dynamo.ErrInvalidState) && !errors.Is(err, dynamo.ErrStepTooSmall) {
		t.Errorf("err = %v, want ErrInvalidState or ErrStepTooSmall", err)
	}
}
