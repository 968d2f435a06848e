package optim

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestAscendWave(t *testing.T) {
	p := Ascend(Wave, DefaultAscent())
	x, y, z := p.Last()

	if !p.Converged {
		t.Fatal("expected convergence")
	}
	if p.Iterations != 7 {
		t.Errorf("iterations = %d, want 7", p.Iterations)
	}
	if p.Step != 0.05 {
		t.Errorf("h = %v, want 0.05", p.Step)
	}
	if math.Abs(x+2.0205743) > 1e-6 || math.Abs(y-0.6626110) > 1e-6 || math.Abs(z-0.9993751) > 1e-6 {
		t.Errorf("last = (%v, %v, %v)", x, y, z)
	}
	if len(p.X) != p.Iterations+1 {
		t.Errorf("path has %d points for %d iterations", len(p.X), p.Iterations)
	}
	if got := p.Summary(); got != "x = -2.0206, y = 0.6626, z = 0.9994, h = 0.05, i = 7" {
		t.Errorf("summary = %q", got)
	}
}

func TestAscendMaxIter(t *testing.T) {
	cfg := DefaultAscent()
	cfg.MaxIter = 2
	p := Ascend(Wave, cfg)
	if p.Converged || p.Iterations != 2 {
		t.Errorf("converged = %v, iterations = %d", p.Converged, p.Iterations)
	}
}

func TestGridSearchMinimises(t *testing.T) {
	gs := NewGridSearch([]string{"a", "b"}, [][]float64{Linspace(-2, 2, 5), Linspace(-2, 2, 5)})
	best, val, err := gs.Search(context.Background(), func(_ context.Context, p map[string]float64) (float64, error) {
		if p["a"] == 2 {
			return 0, errors.New("skip")
		}
		return (p["a"]-1)*(p["a"]-1) + (p["b"]+1)*(p["b"]+1), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if best["a"] != 1 || best["b"] != -1 || val != 0 {
		t.Errorf("best = %v at %v", best, val)
	}
}

func TestGridSearchNoCandidate(t *testing.T) {
	gs := NewGridSearch([]string{"a"}, [][]float64{{1, 2}})
	_, _, err := gs.Search(context.Background(), func(context.Context, map[string]float64) (float64, error) {
		return math.NaN(), nil
	})
	if !errors.Is(err, ErrNoCandidate) {
		t.Errorf("err = %v, want ErrNoCandidate", err)
	}
}

func TestGridSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gs := NewGridSearch([]string{"a"}, [][]float64{{1}})
	if _, _, err := gs.Search(ctx, func(context.Context, map[string]float64) (float64, error) { return 0, nil }); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestBestStart(t *testing.T) {
	x, y, err := BestStart(context.Background(), Wave, Linspace(-5, 5, 21), Linspace(-5, 5, 21))
	if err != nil {
		t.Fatal(err)
	}
	if Wave(x, y) < 0.9 {
		t.Errorf("start (%v, %v) has f = %v", x, y, Wave(x, y))
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 3)
	if len(got) != 3 || got[0] != 0 || got[1] != 0.5 || got[2] != 1 {
		t.Errorf("Linspace = %v", got)
	}
	if Linspace(0, 1, 0) != nil {
		t.Error("expected nil for n = 0")
	}
	if got := Linspace(3, 9, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("Linspace(3, 9, 1) = %v", got)
	}
	if got := Linspace(-0.2, 1, 7); got[6] != 1 {
		t.Errorf("last value = %v, want exactly 1", got[6])
	}
}

func TestGridSearchTiesGoToFirstPoint(t *testing.T) {
	gs := NewGridSearch([]string{"a", "b"}, [][]float64{{0, 1}, {0, 1}})
	for _, w := range []int{1, 4} {
		gs.Workers = w
		best, _, err := gs.Search(context.Background(), func(context.Context, map[string]float64) (float64, error) {
			return 1, nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if best["a"] != 0 || best["b"] != 0 {
			t.Errorf("workers=%d: best = %v, want the first grid point", w, best)
		}
	}
}
