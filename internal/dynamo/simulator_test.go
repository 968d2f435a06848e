package dynamo

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

type decay struct{ k float64 }

func (d decay) StateDim() int                   { return 1 }
func (d decay) Derive(x State, _ float64) State { return State{-d.k * x[0]} }

type blowUp struct{}

func (blowUp) StateDim() int                   { return 1 }
func (blowUp) Derive(x State, _ float64) State { return State{math.Inf(1)} }

// explicit Euler, local to the tests to avoid an import cycle
type euler struct{}

func (euler) Step(sys System, x State, t, dt float64) State {
	return x.Add(sys.Derive(x, t).Scale(dt))
}

func TestRunFixedSteps(t *testing.T) {
	sim := New(decay{k: 1}, euler{})
	cfg := Config{Span: [2]float64{0, 1}, Steps: 1000, ValidateState: true}

	res, err := sim.Run(context.Background(), State{1}, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.StepsTaken != 1000 || len(res.States) != 1001 {
		t.Errorf("got %d steps and %d states", res.StepsTaken, len(res.States))
	}
	if got := res.Times[len(res.Times)-1]; math.Abs(got-1) > 1e-12 {
		t.Errorf("final time = %v, want 1", got)
	}
	if got := res.Final()[0]; math.Abs(got-math.Exp(-1)) > 1e-3 {
		t.Errorf("x(1) = %v, want ~%v", got, math.Exp(-1))
	}
}

func TestRunAdaptiveStepDoubling(t *testing.T) {
	sim := New(decay{k: 2}, euler{})
	cfg := Config{Span: [2]float64{0, 2}, Dt: 0.5, Tolerance: 1e-5, MinDt: 1e-9, Adaptive: true, ValidateState: true}

	res, err := sim.Run(context.Background(), State{1}, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Times[len(res.Times)-1] != 2 {
		t.Errorf("final time = %v, want 2", res.Times[len(res.Times)-1])
	}
	if res.Rejected == 0 {
		t.Error("expected the initial step to be rejected")
	}
	if got := res.Final()[0]; math.Abs(got-math.Exp(-4)) > 1e-2 {
		t.Errorf("x(2) = %v, want ~%v", got, math.Exp(-4))
	}
}

func TestRunInvalidState(t *testing.T) {
	sim := New(blowUp{}, euler{})
	cfg := Config{Span: [2]float64{0, 1}, Steps: 10, ValidateState: true}

	_, err := sim.Run(context.Background(), State{0}, cfg)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	var simErr *SimulationError
	if !errors.As(err, &simErr) || simErr.Step != 0 {
		t.Errorf("expected SimulationError at step 0, got %v", err)
	}
}

func TestRunStepTooSmall(t *testing.T) {
	sim := New(decay{k: 1}, euler{})
	cfg := Config{Span: [2]float64{0, 1}, Dt: 0.1, Tolerance: 1e-30, MinDt: 1e-3, Adaptive: true}

	_, err := sim.Run(context.Background(), State{1}, cfg)
	if !errors.Is(err, ErrStepTooSmall) {
		t.Errorf("expected ErrStepTooSmall, got %v", err)
	}
}

func TestRunValidation(t *testing.T) {
	sim := New(decay{k: 1}, euler{})
	tests := []struct {
		name string
		x0   State
		cfg  Config
		want error
	}{
		{"dimension", State{1, 2}, Config{Span: [2]float64{0, 1}, Dt: 0.1}, ErrDimensionMismatch},
		{"empty span", State{1}, Config{Span: [2]float64{1, 1}, Dt: 0.1}, ErrInvalidConfig},
		{"no step", State{1}, Config{Span: [2]float64{0, 1}}, ErrInvalidConfig},
		{"no tolerance", State{1}, Config{Span: [2]float64{0, 1}, Dt: 0.1, Adaptive: true}, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sim.Run(context.Background(), tt.x0, tt.cfg); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(decay{k: 1}, euler{})
	_, err := sim.Run(ctx, State{1}, Config{Span: [2]float64{0, 1}, Steps: 10})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEnsembleKeepsOrder(t *testing.T) {
	cfg := Config{Span: [2]float64{0, 1}, Steps: 10}
	e := NewEnsemble(decay{k: 1},
		Run{Name: "coarse", Integrator: euler{}, Config: cfg},
		Run{Name: "fine", Integrator: euler{}, Config: Config{Span: cfg.Span, Steps: 100}},
	)

	results, err := e.Run(context.Background(), State{1})
	if err != nil {
		t.Fatal(err)
	}
	if len(results[0].States) != 11 || len(results[1].States) != 101 {
		t.Errorf("results out of order: %d, %d", len(results[0].States), len(results[1].States))
	}
}

func TestStateOps(t *testing.T) {
	s := State{3, 4}
	if s.Norm() != 5 {
		t.Errorf("Norm = %v", s.Norm())
	}
	if got := s.Add(State{1}); got[0] != 4 || got[1] != 4 {
		t.Errorf("Add = %v", got)
	}
	if got := s.Sub(State{1, 1}).Scale(2); got[0] != 4 || got[1] != 6 {
		t.Errorf("Sub/Scale = %v", got)
	}
	c := s.Clone()
	c[0] = 0
	if s[0] != 3 {
		t.Error("Clone aliases the original")
	}
	if (State{math.NaN()}).IsValid() {
		t.Error("NaN state reported valid")
	}
}

// sqrtDeadline has x' = sqrt(1-t), which is NaN once t passes 1.
type sqrtDeadline struct{}

func (sqrtDeadline) StateDim() int                   { return 1 }
func (sqrtDeadline) Derive(_ State, t float64) State { return State{math.Sqrt(1 - t)} }

func TestRunAdaptiveNaNDerivativeFailsFast(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sim := New(sqrtDeadline{}, euler{})
	cfg := Config{Span: [2]float64{0, 2}, Dt: 0.1, Tolerance: 1e-6, MinDt: 1e-9, MaxDt: 0.5, Adaptive: true}

	res, err := sim.Run(ctx, State{0}, cfg)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
	var simErr *SimulationError
	if !errors.As(err, &simErr) {
		t.Fatalf("expected *SimulationError, got %T", err)
	}
	if simErr.Time < 1-1e-6 || simErr.Time >= 2 {
		t.Errorf("failed at t=%v, want at the edge of the non-finite region", simErr.Time)
	}
	if res.Rejected > 10000 {
		t.Errorf("%d rejections before giving up", res.Rejected)
	}
}
