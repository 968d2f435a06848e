package integrators

import "github.com/san-kum/mathmodel/internal/dynamo"

// Euler is the explicit method x[i] = x[i-1] + dt*f(x[i-1]).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (Euler) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	dx := sys.Derive(x, t)
	next := make(dynamo.State, len(x))
	for i, v := range x {
		next[i] = v + dt*dx[i]
	}
	return next
}
