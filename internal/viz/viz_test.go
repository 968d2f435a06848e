package viz

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mathmodel/internal/dynamo"
	"github.com/san-kum/mathmodel/internal/export"
	"github.com/san-kum/mathmodel/internal/fractal"
	"github.com/san-kum/mathmodel/internal/render"
	"github.com/san-kum/mathmodel/internal/spatial"
)

func TestCanvasDots(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if got, want := c.String(), "\u2801\u2880\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !c.IsSet(3, 3) || c.IsSet(1, 1) {
		t.Error("IsSet disagrees with Set")
	}
	c.Unset(0, 0)
	if c.IsSet(0, 0) {
		t.Error("Unset left the dot on")
	}
	c.Clear()
	if got := c.String(); got != "\u2800\u2800\n" {
		t.Errorf("cleared canvas = %q", got)
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Line(0, 0, 7, 7)
	for i := 0; i < 8; i++ {
		if !c.IsSet(i, i) {
			t.Errorf("diagonal dot %d missing", i)
		}
	}
}

func TestPolylineFitsCanvas(t *testing.T) {
	g := NewWithT(t)
	c := NewCanvas(10, 5)
	c.Polyline([]float64{-3, 3}, []float64{-1, 1})

	w, h := c.Dots()
	g.Expect(w).To(Equal(20))
	g.Expect(h).To(Equal(20))
	// the wider axis spans the canvas, corners map to the extremes
	g.Expect(c.IsSet(0, 6)).To(BeTrue())
	g.Expect(c.IsSet(19, 0)).To(BeTrue())
}

func TestShadeAndRamp(t *testing.T) {
	g := NewWithT(t)
	grid := fractal.NewGrid(4, 4)
	for i := range grid.Values {
		grid.Values[i] = float64(i%4) / 3
	}
	cmap, err := export.LookupColormap("gray")
	g.Expect(err).NotTo(HaveOccurred())

	shaded := Shade(grid, cmap, 4, 2)
	g.Expect(strings.Split(shaded, "\n")).To(HaveLen(2))
	g.Expect(strings.Count(shaded, "▀")).To(Equal(8))

	g.Expect(Ramp(grid, 4, 1)).To(Equal(" -*@\n"))
	g.Expect(Shade(nil, cmap, 4, 2)).To(BeEmpty())
}

func TestWireframes(t *testing.T) {
	g := NewWithT(t)
	mesh := &spatial.Mesh{
		Vertices: []spatial.Point3{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}, {0, 0, 10}},
		Faces:    [][3]int{{0, 1, 2}, {0, 1, 3}},
	}
	w := MeshWireframe(mesh)
	g.Expect(w.Edges).To(HaveLen(5))
	for _, e := range w.Edges {
		for _, p := range e {
			for _, v := range p {
				g.Expect(v).To(BeNumerically(">=", -1))
				g.Expect(v).To(BeNumerically("<=", 1))
			}
		}
	}

	states := []dynamo.State{{0, 0, 0}, {1, 1, 1}, {2, 0, 1}, {3, 1, 0}}
	g.Expect(TrajectoryWireframe(states, 1).Edges).To(HaveLen(3))
	g.Expect(TrajectoryWireframe(states, 2).Edges).To(HaveLen(1))

	c := NewCanvas(20, 10)
	Draw(c, w, NewCamera())
	g.Expect(c.String()).NotTo(Equal(NewCanvas(20, 10).String()))
}

func TestCameraProjectCenter(t *testing.T) {
	x, y, _, ok := NewCamera().Project(spatial.Point3{}, 40, 20)
	if !ok || x != 20 || y != 10 {
		t.Errorf("origin projected to (%d, %d, %v)", x, y, ok)
	}
}

func press(e *Explorer, key string) *Explorer {
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ := e.Update(msg)
	return m.(*Explorer)
}

func TestExplorerKeys(t *testing.T) {
	g := NewWithT(t)
	home := fractal.Viewport{XMin: -2, XMax: 2, YMin: -1, YMax: 1}
	e := NewExplorer(context.Background(), render.New(render.WithWorkers(1)),
		Target{Rule: fractal.Mandelbrot(), Viewport: home, Iterations: 32},
		Target{Rule: fractal.Julia(fractal.DefaultJuliaC), Viewport: home, Iterations: 16},
	)

	e = press(e, "+")
	g.Expect(e.Viewport().XMax - e.Viewport().XMin).To(BeNumerically("~", 3.2, 1e-12))
	e = press(e, "l")
	g.Expect(real(e.Viewport().Center())).To(BeNumerically("~", 0.32, 1e-12))
	e = press(e, "]")
	g.Expect(e.Iterations()).To(Equal(64))
	e = press(e, "r")
	g.Expect(e.Viewport()).To(Equal(home))
	g.Expect(e.Iterations()).To(Equal(32))

	e = press(e, "tab")
	g.Expect(e.Target().Rule.Name).To(Equal("julia"))
	g.Expect(e.Iterations()).To(Equal(16))
}

func TestExplorerRenders(t *testing.T) {
	g := NewWithT(t)
	e := NewExplorer(context.Background(), render.New(render.WithWorkers(2)),
		Target{Rule: fractal.Mandelbrot(), Viewport: fractal.Viewport{XMin: -2, XMax: 1, YMin: -1, YMax: 1}, Iterations: 20})

	m, cmd := e.Update(tea.WindowSizeMsg{Width: 30, Height: 13})
	g.Expect(cmd).NotTo(BeNil())
	m, _ = m.Update(cmd())

	view := m.View()
	g.Expect(view).To(ContainSubstring("mandelbrot"))
	g.Expect(strings.Count(view, "▀")).To(Equal(30 * 10))
}

func TestExplorerDropsStaleFrames(t *testing.T) {
	e := NewExplorer(context.Background(), render.New(),
		Target{Rule: fractal.Mandelbrot(), Viewport: fractal.Viewport{XMin: -2, XMax: 1, YMin: -1, YMax: 1}, Iterations: 5})
	stale := e.render()
	fresh := e.render()
	e.Update(stale())
	if e.grid != nil {
		t.Fatal("stale frame was shown")
	}
	e.Update(fresh())
	if e.grid == nil {
		t.Fatal("fresh frame was dropped")
	}
}
