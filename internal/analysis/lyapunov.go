package analysis

import (
	"math"

	"github.com/san-kum/mathmodel/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent by following a
// reference trajectory and a companion displaced by perturbation along the
// first axis. After every step the separation is logged and the companion is
// pulled back to the initial distance.
//
// λ ≈ Σ ln(d_k / d0) / (steps * dt)
func LyapunovExponent(
	sys dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	if len(x0) == 0 || dt <= 0 || duration <= 0 || perturbation <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += perturbation
	d0 := perturbation

	steps := int(duration / dt)
	sumLog := 0.0
	count := 0
	t := 0.0

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, t, dt)
		xp = integ.Step(sys, xp, t, dt)
		t += dt

		if !x.IsValid() || !xp.IsValid() {
			break
		}

		sep := xp.Sub(x).Norm()
		if sep == 0 {
			// trajectories merged; restart the companion
			xp = x.Clone()
			xp[0] += d0
			continue
		}
		sumLog += math.Log(sep / d0)
		count++

		scale := d0 / sep
		for j := range xp {
			xp[j] = x[j] + (xp[j]-x[j])*scale
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
