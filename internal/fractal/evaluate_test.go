package fractal

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name     string
		point    complex128
		rule     Rule
		bailout  float64
		maxIter  int
		expected float64
	}{
		{"mandelbrot origin never escapes", 0, Mandelbrot(), 2, 50, 1.0},
		{"mandelbrot (2,2) escapes after one update", complex(2, 2), Mandelbrot(), 2, 50, 1.0 / 50},
		{"julia outside bailout escapes immediately", complex(11, 0), Julia(DefaultJuliaC), 10, 100, 0},
		{"zero iterations", complex(0.1, 0.1), Mandelbrot(), 2, 0, 0},
		{"negative iterations", complex(0.1, 0.1), Mandelbrot(), 2, -5, 0},
		{"burning ship origin", 0, BurningShip(), 4, 80, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.point, tt.rule, tt.bailout, tt.maxIter)
			if got != tt.expected {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestEvaluateJuliaRotatedConstantIsReproducible(t *testing.T) {
	c := 0.7885 * cmplx.Exp(complex(0, math.Pi/2))
	rule := Julia(c)

	first := Evaluate(0, rule, 10, 50)
	for i := 0; i < 10; i++ {
		if got := Evaluate(0, rule, 10, 50); got != first {
			t.Fatalf("run %d: got %v, want %v", i, got, first)
		}
	}
	if first <= 0 || first > 1 {
		t.Errorf("intensity %v outside (0, 1]", first)
	}
}

func TestEvaluateNonFiniteTerminates(t *testing.T) {
	blowUp := func(z, c complex128) complex128 { return cmplx.Inf() }
	rule := Custom("inf", Parameter, 0, blowUp, math.Inf(1))

	if got := Evaluate(0, rule, math.Inf(1), 1000); got != 1.0/1000 {
		t.Errorf("got %v, want %v", got, 1.0/1000)
	}

	nan := func(z, c complex128) complex128 { return cmplx.NaN() }
	rule = Custom("nan", Parameter, 0, nan, 2)
	if got := Evaluate(0, rule, 2, 10); got != 0.1 {
		t.Errorf("got %v, want 0.1", got)
	}
}

func TestEvaluateNilStepDefaultsToQuadratic(t *testing.T) {
	rule := Rule{Family: Plane}
	want := Evaluate(complex(0.3, 0.5), Mandelbrot(), 2, 64)
	if got := Evaluate(complex(0.3, 0.5), rule, 2, 64); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateRange(t *testing.T) {
	vp := Viewport{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}
	for _, name := range Names() {
		rule, err := Lookup(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		for row := 0; row < 20; row++ {
			for col := 0; col < 20; col++ {
				v := Evaluate(vp.Sample(col, row, 20, 20), rule, rule.Bailout, 40)
				if v < 0 || v > 1 {
					t.Fatalf("%s: intensity %v out of range", name, v)
				}
			}
		}
	}
}

func TestEscapeShaderFallsBackToRuleBailout(t *testing.T) {
	shade := EscapeShader(Mandelbrot(), 0, 50)
	if got := shade(complex(2, 2)); got != 1.0/50 {
		t.Errorf("got %v, want %v", got, 1.0/50)
	}
}

func TestBurningShipFoldsSign(t *testing.T) {
	z := complex(-1.5, -0.5)
	if AbsQuadratic(z, 0) != Quadratic(complex(1.5, 0.5), 0) {
		t.Error("AbsQuadratic should square |Re z| + i|Im z|")
	}
}

func TestLookup(t *testing.T) {
	if _, err := Lookup("nope"); err == nil {
		t.Error("expected error for unknown fractal")
	}
	rule, err := Lookup("julia")
	if err != nil {
		t.Fatal(err)
	}
	if rule.Family != Parameter || rule.C != DefaultJuliaC {
		t.Errorf("unexpected julia rule %+v", rule)
	}
}
