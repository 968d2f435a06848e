package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mathmodel/internal/export"
	"github.com/san-kum/mathmodel/internal/fractal"
	"github.com/san-kum/mathmodel/internal/render"
)

// Target is a fractal the explorer can switch to, with its home view.
type Target struct {
	Rule       fractal.Rule
	Viewport   fractal.Viewport
	Iterations int
	Bailout    float64
}

const (
	panStep      = 0.1
	zoomInStep   = 0.8
	maxExplorerN = 1 << 16
)

type renderedMsg struct {
	seq  int
	grid *fractal.Grid
	err  error
}

// Explorer is an interactive bubbletea model that renders the selected
// fractal into the terminal and lets the user pan and zoom.
type Explorer struct {
	targets    []Target
	current    int
	vp         fractal.Viewport
	iterations int
	theme      int
	cmap       *export.Colormap

	renderer  *render.Renderer
	ctx       context.Context
	seq       int
	grid      *fractal.Grid
	rendering bool
	err       error

	width, height int
}

func NewExplorer(ctx context.Context, r *render.Renderer, targets ...Target) *Explorer {
	e := &Explorer{targets: targets, renderer: r, ctx: ctx, width: 80, height: 24}
	e.home()
	e.setTheme(0)
	return e
}

func (e *Explorer) home() {
	if len(e.targets) == 0 {
		return
	}
	t := e.targets[e.current]
	e.vp, e.iterations = t.Viewport, t.Iterations
}

func (e *Explorer) setTheme(i int) {
	e.theme = i % len(Themes)
	cmap, err := export.LookupColormap(Themes[e.theme].Colormap)
	if err != nil {
		e.err = err
		return
	}
	e.cmap = cmap
}

// Viewport and Iterations report the view currently shown.
func (e *Explorer) Viewport() fractal.Viewport { return e.vp }
func (e *Explorer) Iterations() int            { return e.iterations }
func (e *Explorer) Target() Target             { return e.targets[e.current] }

// canvas is the render size: one column per cell, two rows per cell,
// leaving three lines for the header and the key hints.
func (e *Explorer) canvas() (cols, rows int) {
	return max(e.width, 1), max(e.height-3, 1)
}

func (e *Explorer) Init() tea.Cmd { return e.render() }

func (e *Explorer) render() tea.Cmd {
	if len(e.targets) == 0 {
		return nil
	}
	e.seq++
	e.rendering = true
	seq, t, vp, n := e.seq, e.targets[e.current], e.vp, e.iterations
	cols, rows := e.canvas()
	ctx, r := e.ctx, e.renderer
	return func() tea.Msg {
		shader := fractal.EscapeShader(t.Rule, t.Bailout, n)
		grid, err := r.Render(ctx, vp, cols, 2*rows, shader)
		return renderedMsg{seq: seq, grid: grid, err: err}
	}
}

func (e *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width, e.height = msg.Width, msg.Height
		return e, e.render()
	case renderedMsg:
		if msg.seq != e.seq {
			return e, nil
		}
		e.rendering = false
		e.grid, e.err = msg.grid, msg.err
		return e, nil
	case tea.KeyMsg:
		return e.key(msg)
	}
	return e, nil
}

func (e *Explorer) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return e, tea.Quit
	case "left", "h":
		e.vp = e.vp.Pan(-panStep, 0)
	case "right", "l":
		e.vp = e.vp.Pan(panStep, 0)
	case "up", "k":
		e.vp = e.vp.Pan(0, panStep)
	case "down", "j":
		e.vp = e.vp.Pan(0, -panStep)
	case "+", "=":
		e.vp = e.vp.Zoom(zoomInStep)
	case "-", "_":
		e.vp = e.vp.Zoom(1 / zoomInStep)
	case "]":
		e.iterations = min(max(e.iterations*2, 1), maxExplorerN)
	case "[":
		e.iterations = max(e.iterations/2, 1)
	case "tab":
		if len(e.targets) > 0 {
			e.current = (e.current + 1) % len(e.targets)
			e.home()
		}
	case "t":
		e.setTheme(e.theme + 1)
		return e, nil
	case "r":
		e.home()
	default:
		return e, nil
	}
	return e, e.render()
}

func (e *Explorer) View() string {
	st := Themes[e.theme].styles()
	if len(e.targets) == 0 {
		return st.err.Render("nothing to explore") + "\n"
	}
	t := e.targets[e.current]
	c := e.vp.Center()

	var b strings.Builder
	b.WriteString(st.title.Render(t.Rule.Name))
	b.WriteString(st.label.Render("  center "))
	b.WriteString(st.value.Render(fmt.Sprintf("%.6g%+.6gi", real(c), imag(c))))
	b.WriteString(st.label.Render("  width "))
	b.WriteString(st.value.Render(fmt.Sprintf("%.3g", e.vp.XMax-e.vp.XMin)))
	b.WriteString(st.label.Render("  iterations "))
	b.WriteString(st.value.Render(fmt.Sprint(e.iterations)))
	b.WriteString(st.label.Render("  theme "))
	b.WriteString(lipgloss.NewStyle().Foreground(Themes[e.theme].Accent).Render(Themes[e.theme].Name))
	if e.rendering {
		b.WriteString(st.hint.Render("  rendering..."))
	}
	b.WriteString("\n")

	cols, rows := e.canvas()
	switch {
	case e.err != nil:
		b.WriteString(st.err.Render(e.err.Error()))
	case e.grid != nil:
		b.WriteString(Shade(e.grid, e.cmap, cols, rows))
	}
	b.WriteString("\n")
	b.WriteString(st.hint.Render("arrows pan · +/- zoom · [/] iterations · tab fractal · t theme · r reset · q quit"))
	return b.String()
}

// Explore runs the explorer until the user quits.
func Explore(ctx context.Context, r *render.Renderer, targets ...Target) error {
	if len(targets) == 0 {
		return fmt.Errorf("explore: no fractals")
	}
	_, err := tea.NewProgram(NewExplorer(ctx, r, targets...), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
