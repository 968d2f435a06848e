package dynamo

import (
	"context"
	"fmt"
	"math"
)

type Simulator struct {
	sys        System
	integrator Integrator
}

// Step factors applied after a rejection: a non-finite trial always shrinks
// by nanShrink, and an inaccurate one by at least rejectShrink.
const (
	nanShrink    = 0.2
	rejectShrink = 0.9
)

func New(sys System, integrator Integrator) *Simulator {
	return &Simulator{sys: sys, integrator: integrator}
}

func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := s.validate(x0, cfg); err != nil {
		return nil, err
	}
	if cfg.Adaptive {
		return s.runAdaptive(ctx, x0, cfg)
	}
	return s.runFixed(ctx, x0, cfg)
}

func (s *Simulator) validate(x0 State, cfg Config) error {
	if len(x0) != s.sys.StateDim() {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(x0), s.sys.StateDim())
	}
	if !(cfg.Span[1] > cfg.Span[0]) {
		return fmt.Errorf("%w: empty span %v", ErrInvalidConfig, cfg.Span)
	}
	if cfg.Steps <= 0 && cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Adaptive && cfg.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive for adaptive stepping", ErrInvalidConfig)
	}
	return nil
}

func (s *Simulator) runFixed(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	t0, t1 := cfg.Span[0], cfg.Span[1]
	steps := cfg.Steps
	if steps <= 0 {
		steps = int(math.Ceil((t1 - t0) / cfg.Dt))
	}
	dt := (t1 - t0) / float64(steps)

	result := &Result{
		States: make([]State, 0, steps+1),
		Times:  make([]float64, 0, steps+1),
	}
	x := x0.Clone()
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t0)

	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		t := t0 + float64(i)*dt
		x = s.integrator.Step(s.sys, x, t, dt)
		if cfg.ValidateState && !x.IsValid() {
			return result, &SimulationError{Step: i, Time: t, State: x, Err: ErrInvalidState}
		}

		result.StepsTaken++
		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, t0+float64(i+1)*dt)
	}
	return result, nil
}

func (s *Simulator) runAdaptive(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	t0, t1 := cfg.Span[0], cfg.Span[1]
	dt := cfg.Dt
	if dt <= 0 {
		dt = (t1 - t0) / float64(cfg.Steps)
	}
	maxDt := cfg.MaxDt
	if maxDt <= 0 {
		maxDt = t1 - t0
	}

	result := &Result{}
	x := x0.Clone()
	t := t0
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)

	for t < t1 {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if t+dt > t1 {
			dt = t1 - t
		}
		newX, dtNext, ratio := s.adaptiveStep(x, t, dt, cfg.Tolerance)

		if math.IsNaN(ratio) {
			// the trial state is not finite: shrink regardless of the suggestion
			result.Rejected++
			dt *= nanShrink
			if dt < cfg.MinDt || t+dt == t {
				return result, &SimulationError{Step: result.StepsTaken, Time: t, State: newX, Err: ErrInvalidState}
			}
			continue
		}
		if ratio > 1 {
			result.Rejected++
			dt = math.Min(dtNext, rejectShrink*dt)
			if dt < cfg.MinDt || t+dt == t {
				return result, &SimulationError{Step: result.StepsTaken, Time: t, State: x, Err: ErrStepTooSmall}
			}
			continue
		}

		if cfg.ValidateState && !newX.IsValid() {
			return result, &SimulationError{Step: result.StepsTaken, Time: t, State: newX, Err: ErrInvalidState}
		}

		x = newX
		t += dt
		if t1-t < 1e-12*math.Max(1, math.Abs(t1)) {
			t = t1
		}
		result.StepsTaken++
		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, t)

		dt = math.Min(dtNext, maxDt)
	}
	return result, nil
}

func (s *Simulator) adaptiveStep(x State, t, dt, tol float64) (State, float64, float64) {
	if adaptive, ok := s.integrator.(AdaptiveIntegrator); ok {
		return adaptive.StepAdaptive(s.sys, x, t, dt, tol)
	}

	// step doubling for integrators without an embedded estimate
	x1 := s.integrator.Step(s.sys, x, t, dt)
	xHalf := s.integrator.Step(s.sys, x, t, dt/2)
	x2 := s.integrator.Step(s.sys, xHalf, t+dt/2, dt/2)

	ratio := x1.Sub(x2).Norm() / tol
	switch {
	case ratio > 1:
		return x2, dt / 2, ratio
	case ratio < 0.1:
		return x2, dt * 2, ratio
	default:
		return x2, dt, ratio
	}
}
