package gis

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/mathmodel/internal/chart"
)

// YRatio stretches latitude relative to longitude so the map is not
// squashed at these latitudes.
const YRatio = 1.5

var axisColor = color.RGBA{R: 0x8b, G: 0x8b, B: 0x8b, A: 0xff}

// Map renders a stack of layers read from Dir.
type Map struct {
	Dir    string
	Layers []Layer
	Logger *log.Logger
}

func NewMap(dir string, layers []Layer, logger *log.Logger) *Map {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Map{Dir: dir, Layers: layers, Logger: logger}
}

// Collect loads every visible layer and flattens it.
func (m *Map) Collect() ([]Shape, []Annotation, error) {
	var shapes []Shape
	var notes []Annotation
	for _, l := range m.Layers {
		if !l.Visible {
			m.Logger.Debug("skip hidden layer", "layer", l.Name)
			continue
		}
		fc, err := l.Load(m.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("layer %s: %w", l.Name, err)
		}
		s, a := l.Render(fc)
		m.Logger.Debug("layer loaded", "layer", l.Name, "features", len(fc.Features), "shapes", len(s), "labels", len(a))
		shapes = append(shapes, s...)
		notes = append(notes, a...)
	}
	if len(shapes) == 0 {
		return nil, nil, ErrNoShapes
	}
	return shapes, notes, nil
}

// Plot builds the map chart.
func (m *Map) Plot() (*plot.Plot, orb.Bound, error) {
	shapes, notes, err := m.Collect()
	if err != nil {
		return nil, orb.Bound{}, err
	}

	p := plot.New()
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = axisColor
		ax.LineStyle.Width = vg.Points(2)
	}

	bound := shapes[0].Points.Bound()
	for _, s := range shapes {
		bound = bound.Union(s.Points.Bound())
		if err := addShape(p, s); err != nil {
			return nil, orb.Bound{}, err
		}
	}

	if len(notes) > 0 {
		labels := plotter.XYLabels{XYs: make(plotter.XYs, len(notes)), Labels: make([]string, len(notes))}
		for i, a := range notes {
			labels.XYs[i] = plotter.XY{X: a.At[0], Y: a.At[1]}
			labels.Labels[i] = a.Text
		}
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, orb.Bound{}, err
		}
		for i := range l.TextStyle {
			l.TextStyle[i].Font.Size = vg.Points(7)
			l.TextStyle[i].XAlign = draw.XCenter
		}
		p.Add(l)
	}
	return p, bound, nil
}

func addShape(p *plot.Plot, s Shape) error {
	line, err := parseColor(s.Line)
	if err != nil {
		return err
	}
	xys := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		xys[i] = plotter.XY{X: pt[0], Y: pt[1]}
	}

	if !s.Closed {
		l, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		l.LineStyle.Color = line
		l.LineStyle.Width = vg.Points(s.Width)
		p.Add(l)
		return nil
	}

	fill, err := parseColor(s.Fill)
	if err != nil {
		return err
	}
	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return err
	}
	poly.Color = fill
	poly.LineStyle.Color = line
	poly.LineStyle.Width = vg.Points(s.Width)
	p.Add(poly)
	return nil
}

// Size returns the image height for the given width so that one degree of
// latitude is YRatio times as tall as one degree of longitude.
func Size(b orb.Bound, width vg.Length) vg.Length {
	dx, dy := b.Max[0]-b.Min[0], b.Max[1]-b.Min[1]
	if dx <= 0 || dy <= 0 {
		return width
	}
	h := width * vg.Length(YRatio*dy/dx)
	return vg.Length(math.Min(math.Max(float64(h), float64(width)/8), float64(width)*8))
}

// RenderMap writes the map as an image at path.
func (m *Map) RenderMap(path string, width vg.Length) error {
	p, bound, err := m.Plot()
	if err != nil {
		return err
	}
	height := Size(bound, width)
	m.Logger.Info("rendering map", "layers", len(m.Layers), "out", path, "width", width, "height", height)
	return chart.Save(p, path, width, height)
}
