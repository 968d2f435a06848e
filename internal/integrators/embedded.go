package integrators

import (
	"math"

	"github.com/san-kum/mathmodel/internal/dynamo"
)

// tableau is an explicit embedded Runge-Kutta pair whose last stage is
// evaluated at the solution point (first same as last).
type tableau struct {
	c []float64
	a [][]float64
	// e holds b - b̂, one weight per stage.
	e []float64
	// order of the lower-order solution, used to scale the step.
	order float64
}

// Bogacki-Shampine 3(2)
var bogackiShampine = tableau{
	c: []float64{0, 1.0 / 2.0, 3.0 / 4.0, 1},
	a: [][]float64{
		{},
		{1.0 / 2.0},
		{0, 3.0 / 4.0},
		{2.0 / 9.0, 1.0 / 3.0, 4.0 / 9.0},
	},
	e: []float64{
		2.0/9.0 - 7.0/24.0,
		1.0/3.0 - 1.0/4.0,
		4.0/9.0 - 1.0/3.0,
		-1.0 / 8.0,
	},
	order: 2,
}

// Dormand-Prince 5(4)
var dormandPrince = tableau{
	c: []float64{0, 1.0 / 5.0, 3.0 / 10.0, 4.0 / 5.0, 8.0 / 9.0, 1, 1},
	a: [][]float64{
		{},
		{1.0 / 5.0},
		{3.0 / 40.0, 9.0 / 40.0},
		{44.0 / 45.0, -56.0 / 15.0, 32.0 / 9.0},
		{19372.0 / 6561.0, -25360.0 / 2187.0, 64448.0 / 6561.0, -212.0 / 729.0},
		{9017.0 / 3168.0, -355.0 / 33.0, 46732.0 / 5247.0, 49.0 / 176.0, -5103.0 / 18656.0},
		{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0},
	},
	e: []float64{
		35.0/384.0 - 5179.0/57600.0,
		0,
		500.0/1113.0 - 7571.0/16695.0,
		125.0/192.0 - 393.0/640.0,
		-2187.0/6784.0 + 92097.0/339200.0,
		11.0/84.0 - 187.0/2100.0,
		-1.0 / 40.0,
	},
	order: 4,
}

// Embedded is an adaptive integrator built on an embedded pair.
type Embedded struct {
	name     string
	tab      tableau
	safety   float64
	minScale float64
	maxScale float64
}

func NewRK23() *Embedded { return newEmbedded("rk23", bogackiShampine) }
func NewRK45() *Embedded { return newEmbedded("rk45", dormandPrince) }

func newEmbedded(name string, tab tableau) *Embedded {
	return &Embedded{
		name:     name,
		tab:      tab,
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
	}
}

func (m *Embedded) Name() string { return m.name }

// Step takes one step of the higher-order solution and discards the
// error estimate.
func (m *Embedded) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	xNew, _, _ := m.StepAdaptive(sys, x, t, dt, 1e-6)
	return xNew
}

func (m *Embedded) StepAdaptive(sys dynamo.System, x dynamo.State, t, dt, tol float64) (dynamo.State, float64, float64) {
	n := len(x)
	stages := len(m.tab.c)
	k := make([]dynamo.State, stages)
	k[0] = sys.Derive(x, t)

	var xNew dynamo.State
	for s := 1; s < stages; s++ {
		xs := make(dynamo.State, n)
		for i := 0; i < n; i++ {
			sum := 0.0
			for j, a := range m.tab.a[s] {
				sum += a * k[j][i]
			}
			xs[i] = x[i] + dt*sum
		}
		if s == stages-1 {
			xNew = xs
		}
		k[s] = sys.Derive(xs, t+m.tab.c[s]*dt)
	}

	errMax := 0.0
	for i := 0; i < n; i++ {
		errEst := 0.0
		for s, e := range m.tab.e {
			errEst += e * k[s][i]
		}
		errEst *= dt
		scale := math.Abs(x[i]) + math.Abs(dt*k[0][i]) + 1e-10
		errMax = math.Max(errMax, math.Abs(errEst)/scale)
	}

	errRatio := errMax / tol

	var dtNew float64
	switch {
	case math.IsNaN(errRatio):
		dtNew = dt * m.minScale
	case errRatio > 1:
		dtNew = dt * math.Max(m.minScale, m.safety*math.Pow(errRatio, -1/m.tab.order))
	case errRatio > 0:
		dtNew = dt * math.Min(m.maxScale, m.safety*math.Pow(errRatio, -1/(m.tab.order+1)))
	default:
		dtNew = dt * m.maxScale
	}

	return xNew, dtNew, errRatio
}
