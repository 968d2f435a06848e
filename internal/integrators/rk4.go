package integrators

import "github.com/san-kum/mathmodel/internal/dynamo"

// explicit is a Butcher tableau without an error estimate.
type explicit struct {
	c []float64
	a [][]float64
	b []float64
}

var classic = explicit{
	c: []float64{0, 1.0 / 2.0, 1.0 / 2.0, 1},
	a: [][]float64{
		{},
		{1.0 / 2.0},
		{0, 1.0 / 2.0},
		{0, 0, 1},
	},
	b: []float64{1.0 / 6.0, 1.0 / 3.0, 1.0 / 3.0, 1.0 / 6.0},
}

// RK4 is the classic fourth-order Runge-Kutta method.
type RK4 struct {
	tab explicit
}

func NewRK4() *RK4 {
	return &RK4{tab: classic}
}

func (r *RK4) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	k := slopes(sys, x, t, dt, r.tab.c, r.tab.a)
	next := x.Clone()
	for s, b := range r.tab.b {
		for i := range next {
			next[i] += dt * b * k[s][i]
		}
	}
	return next
}

// slopes evaluates every stage of an explicit tableau at (x, t).
func slopes(sys dynamo.System, x dynamo.State, t, dt float64, c []float64, a [][]float64) []dynamo.State {
	k := make([]dynamo.State, len(c))
	k[0] = sys.Derive(x, t)
	for s := 1; s < len(c); s++ {
		xs := make(dynamo.State, len(x))
		for i := range x {
			sum := 0.0
			for j, w := range a[s] {
				sum += w * k[j][i]
			}
			xs[i] = x[i] + dt*sum
		}
		k[s] = sys.Derive(xs, t+c[s]*dt)
	}
	return k
}
