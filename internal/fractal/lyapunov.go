package fractal

import "math"

// LyapunovParams configures the Lyapunov fractal: the logistic map
// x <- r*x*(1-x) with r switching between a and b as the sequence dictates.
type LyapunovParams struct {
	Sequence   string  `yaml:"sequence"`
	Warmup     int     `yaml:"warmup"`
	Iterations int     `yaml:"iterations"`
	X0         float64 `yaml:"x0"`
}

func DefaultLyapunov() LyapunovParams {
	return LyapunovParams{Sequence: "AB", Warmup: 50, Iterations: 200, X0: 0.5}
}

// LyapunovExponent estimates the exponent of the forced logistic map for
// rates a (sequence letter A) and b (letter B).
func LyapunovExponent(a, b float64, p LyapunovParams) float64 {
	if p.Iterations <= 0 {
		return 0
	}
	seq := p.Sequence
	if seq == "" {
		seq = "AB"
	}
	rate := func(n int) float64 {
		if c := seq[n%len(seq)]; c == 'B' || c == 'b' {
			return b
		}
		return a
	}

	x := p.X0
	for n := 0; n < p.Warmup; n++ {
		r := rate(n)
		x = r * x * (1 - x)
	}

	sum := 0.0
	for n := 0; n < p.Iterations; n++ {
		r := rate(p.Warmup + n)
		d := math.Abs(r * (1 - 2*x))
		if d == 0 {
			// superstable orbit
			return math.Inf(-1)
		}
		sum += math.Log(d)
		x = r * x * (1 - x)
	}
	return sum / float64(p.Iterations)
}

// LyapunovIntensity maps an exponent to [0, 1]: chaotic (λ >= 0) and
// undefined exponents are 0, stable ones approach 1 as λ decreases.
func LyapunovIntensity(lambda float64) float64 {
	if math.IsNaN(lambda) || lambda >= 0 {
		return 0
	}
	return 1 - math.Exp(lambda)
}

// LyapunovShader reads a from the real axis and b from the imaginary axis.
func LyapunovShader(p LyapunovParams) Shader {
	return func(pt complex128) float64 {
		return LyapunovIntensity(LyapunovExponent(real(pt), imag(pt), p))
	}
}
