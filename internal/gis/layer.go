package gis

import (
	"fmt"
	"path/filepath"
)

// Style is the fill and stroke of one kind of ring.
type Style struct {
	Fill  string
	Line  string
	Width float64
}

// Layer describes how one GeoJSON file is drawn.
type Layer struct {
	Name    string
	Visible bool
	Filled  bool
	Named   bool
	Outer   Style
	Inner   Style

	// Dx and Dy shift coordinates before spherical projection; R and Z are
	// the sphere radius and viewing height.
	Dx, Dy float64
	R, Z   float64
}

// NewLayer returns a visible, filled layer with white styles and the
// default projection.
func NewLayer(name string) Layer {
	return Layer{
		Name:    name,
		Visible: true,
		Filled:  true,
		Outer:   Style{Fill: "#fff", Line: "#fff"},
		Inner:   Style{Fill: "#fff", Line: "#fff"},
		Dx:      36.8,
		Dy:      48.1,
		R:       100,
		Z:       1,
	}
}

// Path is the GeoJSON file backing the layer inside dir.
func (l Layer) Path(dir string) string {
	return filepath.Join(dir, l.Name+".geojson")
}

// DefaultLayers returns oblasts, cities, rivers and roads in drawing order.
func DefaultLayers(fillOblasts, showRoads bool) []Layer {
	oblasts := NewLayer("oblasts")
	oblasts.Filled = fillOblasts
	oblasts.Outer = Style{Fill: "#ebf2e7", Line: "#b46198", Width: 2}

	cities := NewLayer("cities")
	cities.Named = true
	cities.Outer = Style{Fill: "#a1a0a0", Line: "#656464", Width: 1}
	cities.Inner = Style{Fill: "#ebf2e7", Line: "#ebf2e7"}

	rivers := NewLayer("rivers")
	rivers.Outer = Style{Fill: "#9fcee5", Line: "#2a5eea", Width: 1}
	rivers.Inner = Style{Fill: "#ebf2e7", Line: "#2a5eea", Width: 1}

	roads := NewLayer("roads")
	roads.Visible = showRoads
	roads.Outer = Style{Line: "#ffb732", Width: 2}

	return []Layer{oblasts, cities, rivers, roads}
}

// LayerNames lists the default layer names.
func LayerNames() []string {
	return []string{"oblasts", "cities", "rivers", "roads"}
}

// Select picks the named layers out of all, keeping the requested order.
func Select(all []Layer, names ...string) ([]Layer, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Layer, len(all))
	for _, l := range all {
		byName[l.Name] = l
	}
	out := make([]Layer, 0, len(names))
	for _, name := range names {
		l, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLayer, name)
		}
		out = append(out, l)
	}
	return out, nil
}
