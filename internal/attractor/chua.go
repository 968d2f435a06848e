package attractor

import (
	"fmt"
	"math"

	"github.com/san-kum/mathmodel/internal/dynamo"
)

// Chua is a dimensionless Chua circuit with a piecewise-linear diode
//
//	x' = alpha*(y - k*x + m0*x + m1*(|x + bp| - |x - bp|))
//	y' = x - y + gamma*z + dy
//	z' = dz - beta*y
type Chua struct {
	alpha, k, m0, m1, bp float64
	gamma, dy            float64
	beta, dz             float64
}

func (c *Chua) StateDim() int { return 3 }

func (c *Chua) Derive(s dynamo.State, _ float64) dynamo.State {
	x := s[0]
	diode := c.m0*x + c.m1*(math.Abs(x+c.bp)-math.Abs(x-c.bp))
	return dynamo.State{
		c.alpha * (s[1] - c.k*x + diode),
		x - s[1] + c.gamma*s[2] + c.dy,
		c.dz - c.beta*s[1],
	}
}

func (c *Chua) Params() map[string]float64 {
	return map[string]float64{
		"alpha": c.alpha, "k": c.k, "m0": c.m0, "m1": c.m1, "bp": c.bp,
		"gamma": c.gamma, "dy": c.dy, "beta": c.beta, "dz": c.dz,
	}
}

func (c *Chua) SetParam(n string, v float64) error {
	p := map[string]*float64{
		"alpha": &c.alpha, "k": &c.k, "m0": &c.m0, "m1": &c.m1, "bp": &c.bp,
		"gamma": &c.gamma, "dy": &c.dy, "beta": &c.beta, "dz": &c.dz,
	}[n]
	if p == nil {
		return fmt.Errorf("%w: chua has no parameter %q", dynamo.ErrUnknownParam, n)
	}
	*p = v
	return nil
}
