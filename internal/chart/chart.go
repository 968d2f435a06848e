package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default figure size.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Series is a named sequence of points.
type Series struct {
	Name string
	XYs  plotter.XYs
}

// XY builds a series from parallel slices.
func XY(name string, xs, ys []float64) Series {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return Series{Name: name, XYs: pts}
}

// Indexed builds a series with x = 0, 1, 2, ...
func Indexed(name string, ys []float64) Series {
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i] = plotter.XY{X: float64(i), Y: y}
	}
	return Series{Name: name, XYs: pts}
}

// New returns a plot with title and axis labels set.
func New(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// Lines returns a plot with one plain line per series.
func Lines(title string, series ...Series) (*plot.Plot, error) {
	p := New(title, "x", "y")
	for i, s := range series {
		l, err := plotter.NewLine(s.XYs)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Width = vg.Points(0.5)
		p.Add(l)
		if s.Name != "" {
			p.Legend.Add(s.Name, l)
		}
	}
	return p, nil
}

// LinePoints returns a plot with lines and markers for every series.
func LinePoints(title string, series ...Series) (*plot.Plot, error) {
	p := New(title, "", "")
	p.Add(plotter.NewGrid())
	args := make([]interface{}, 0, 2*len(series))
	for _, s := range series {
		args = append(args, s.Name, s.XYs)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return nil, err
	}
	return p, nil
}

// Path adds a polyline in the given color.
func Path(p *plot.Plot, pts plotter.XYs, c color.Color, width vg.Length) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	p.Add(l)
	return nil
}

// Save writes p as an image whose format follows the path extension.
func Save(p *plot.Plot, path string, w, h vg.Length) error {
	if err := mkdirFor(path); err != nil {
		return err
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

// SaveTiles lays the plots out row by row and writes one PNG.
func SaveTiles(path string, plots [][]*plot.Plot, w, h vg.Length) error {
	if len(plots) == 0 || len(plots[0]) == 0 {
		return fmt.Errorf("save tiles %s: no plots", path)
	}
	img := vgimg.New(w, h)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i, p := range plots[j] {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}

	if err := mkdirFor(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write tiles %s: %w", path, err)
	}
	return f.Close()
}

func mkdirFor(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	return nil
}
