package attractor

import (
	"fmt"

	"github.com/san-kum/mathmodel/internal/dynamo"
)

// Rossler is the generalised Rössler system
//
//	x' = e - y - z
//	y' = x + a*y
//	z' = b + z*(x - c)
type Rossler struct{ a, b, c, e float64 }

func NewRossler(a, b, c, e float64) *Rossler { return &Rossler{a, b, c, e} }
func (r *Rossler) StateDim() int             { return 3 }

// Derive calculates the Rossler attractor derivatives.
func (r *Rossler) Derive(s dynamo.State, _ float64) dynamo.State {
	return dynamo.State{r.e - s[1] - s[2], s[0] + r.a*s[1], r.b + s[2]*(s[0]-r.c)}
}

func (r *Rossler) Params() map[string]float64 {
	return map[string]float64{"a": r.a, "b": r.b, "c": r.c, "e": r.e}
}

func (r *Rossler) SetParam(n string, v float64) error {
	switch n {
	case "a":
		r.a = v
	case "b":
		r.b = v
	case "c":
		r.c = v
	case "e":
		r.e = v
	default:
		return fmt.Errorf("%w: rossler has no parameter %q", dynamo.ErrUnknownParam, n)
	}
	return nil
}
