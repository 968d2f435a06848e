package gis

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Shape is one drawable ring or polyline.
type Shape struct {
	Points orb.LineString
	Closed bool
	Fill   string
	Line   string
	Width  float64
}

// Annotation is a text label placed at a map coordinate.
type Annotation struct {
	Text string
	At   orb.Point
}

// Flatten expands a geometry into shapes. Unsupported geometry types yield
// nothing.
func (l Layer) Flatten(g orb.Geometry) []Shape {
	switch g := g.(type) {
	case orb.Polygon:
		return l.polygon(g)
	case orb.MultiPolygon:
		var out []Shape
		for _, p := range g {
			out = append(out, l.polygon(p)...)
		}
		return out
	case orb.LineString:
		return []Shape{l.line(g)}
	case orb.MultiLineString:
		out := make([]Shape, 0, len(g))
		for _, ls := range g {
			out = append(out, l.line(ls))
		}
		return out
	}
	return nil
}

func (l Layer) line(ls orb.LineString) Shape {
	return Shape{Points: ls, Line: l.Outer.Line, Width: l.Outer.Width}
}

func (l Layer) polygon(p orb.Polygon) []Shape {
	out := make([]Shape, 0, len(p))
	for i, ring := range p {
		s := Shape{Points: orb.LineString(ring), Closed: true, Fill: l.Inner.Fill, Line: l.Inner.Line, Width: l.Inner.Width}
		if i == 0 {
			s.Line, s.Width = l.Outer.Line, l.Outer.Width
			if l.Filled {
				s.Fill = l.Outer.Fill
			}
		}
		out = append(out, s)
	}
	return out
}

// Annotate labels a feature with its "name" property, centred over the top
// edge of its bounding box.
func Annotate(f *geojson.Feature) (Annotation, bool) {
	name, _ := f.Properties["name"].(string)
	if name == "" || f.Geometry == nil {
		return Annotation{}, false
	}
	b := f.Geometry.Bound()
	return Annotation{Text: name, At: orb.Point{(b.Min[0] + b.Max[0]) / 2, b.Max[1]}}, true
}

// Render flattens every feature of the collection. Hidden layers yield
// nothing; only named layers produce annotations.
func (l Layer) Render(fc *geojson.FeatureCollection) ([]Shape, []Annotation) {
	if !l.Visible || fc == nil {
		return nil, nil
	}
	var shapes []Shape
	var notes []Annotation
	for _, f := range fc.Features {
		shapes = append(shapes, l.Flatten(f.Geometry)...)
		if !l.Named {
			continue
		}
		if a, ok := Annotate(f); ok {
			notes = append(notes, a)
		}
	}
	return shapes, notes
}
