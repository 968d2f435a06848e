// Package fractal provides the escape-time evaluator shared by every
// complex-dynamics fractal in mathmodel.
//
// A fractal is described by a [Rule]: the family it belongs to (plane maps
// such as Mandelbrot, where the sample is the additive constant, or
// parameter maps such as Julia, where the sample is the starting value), a
// fixed constant and a step function. [Evaluate] iterates a rule for one
// sample and returns a normalized escape intensity in [0, 1]:
//
//	rule := fractal.Mandelbrot()
//	v := fractal.Evaluate(complex(-0.5, 0.1), rule, rule.Bailout, 100)
//
// The escape test runs before every update, so a Julia-family sample that
// already lies outside the bailout radius has intensity 0 and a sample that
// survives every iteration has intensity 1.
//
// [Viewport] maps a pixel grid onto the complex plane and [Grid] holds the
// row-major intensities consumed by renderers.
//
// # Thread Safety
//
// Rules and evaluators are pure. They may be shared freely between
// goroutines.
package fractal
