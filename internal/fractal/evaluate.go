package fractal

import "math/cmplx"

// Shader maps one plane coordinate to an intensity in [0, 1].
type Shader func(p complex128) float64

// Evaluate iterates rule from sample p until |z| exceeds bailout, z stops
// being finite or maxIterations updates have been applied. The escape test
// runs before each update. The result is the number of updates divided by
// maxIterations, and 0 when maxIterations is not positive.
func Evaluate(p complex128, rule Rule, bailout float64, maxIterations int) float64 {
	if maxIterations <= 0 {
		return 0
	}
	step := rule.Step
	if step == nil {
		step = Quadratic
	}

	z, c := rule.Start(p)
	n := 0
	for n < maxIterations && finite(z) && cmplx.Abs(z) <= bailout {
		z = step(z, c)
		n++
	}
	return float64(n) / float64(maxIterations)
}

// EscapeShader binds a rule and its limits into a Shader. A non-positive
// bailout falls back to the rule's default.
func EscapeShader(rule Rule, bailout float64, maxIterations int) Shader {
	if bailout <= 0 {
		bailout = rule.Bailout
	}
	return func(p complex128) float64 {
		return Evaluate(p, rule, bailout, maxIterations)
	}
}

func finite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}
