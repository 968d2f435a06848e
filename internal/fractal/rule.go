package fractal

import (
	"fmt"
	"math"
	"sort"
)

// Family selects how a sample enters a recurrence.
type Family int

const (
	// Plane maps start from zero and add the sample on every step.
	Plane Family = iota
	// Parameter maps start from the sample and add a fixed constant.
	Parameter
)

func (f Family) String() string {
	switch f {
	case Plane:
		return "plane"
	case Parameter:
		return "parameter"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// StepFunc advances z by one iteration given the additive constant c.
type StepFunc func(z, c complex128) complex128

// Rule is one fractal's recurrence together with the constants it needs.
type Rule struct {
	Name    string
	Family  Family
	C       complex128 // fixed constant, used by Parameter maps only
	Step    StepFunc
	Bailout float64 // radius used when the caller passes a non-positive one
}

// Start returns the initial value and the additive constant for sample p.
func (r Rule) Start(p complex128) (z, c complex128) {
	if r.Family == Parameter {
		return p, r.C
	}
	return 0, p
}

// WithC returns a copy of r with a different fixed constant.
func (r Rule) WithC(c complex128) Rule {
	r.C = c
	return r
}

// Quadratic is z² + c.
func Quadratic(z, c complex128) complex128 { return z*z + c }

// AbsQuadratic folds z into the first quadrant before squaring.
func AbsQuadratic(z, c complex128) complex128 {
	a := complex(math.Abs(real(z)), math.Abs(imag(z)))
	return a*a + c
}

// DefaultJuliaC is the constant of the static Julia figure.
const DefaultJuliaC = complex(0, -0.8)

func Julia(c complex128) Rule {
	return Rule{Name: "julia", Family: Parameter, C: c, Step: Quadratic, Bailout: 10}
}

func Mandelbrot() Rule {
	return Rule{Name: "mandelbrot", Family: Plane, Step: Quadratic, Bailout: 2}
}

func BurningShip() Rule {
	return Rule{Name: "burning-ship", Family: Plane, Step: AbsQuadratic, Bailout: 4}
}

// Custom builds a rule from a caller-supplied step function.
func Custom(name string, family Family, c complex128, step StepFunc, bailout float64) Rule {
	return Rule{Name: name, Family: family, C: c, Step: step, Bailout: bailout}
}

var rules = map[string]func() Rule{
	"julia":        func() Rule { return Julia(DefaultJuliaC) },
	"mandelbrot":   Mandelbrot,
	"burning-ship": BurningShip,
}

// Lookup returns the named escape-time rule.
func Lookup(name string) (Rule, error) {
	fn, ok := rules[name]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", ErrUnknownFractal, name)
	}
	return fn(), nil
}

// Names lists the registered escape-time rules in lexical order.
func Names() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
