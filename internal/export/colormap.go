package export

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap maps an intensity in [0, 1] to a color by blending between
// evenly spaced key colors in Lab space.
type Colormap struct {
	Name  string
	stops []colorful.Color
}

func NewColormap(name string, hexStops ...string) (*Colormap, error) {
	if len(hexStops) < 2 {
		return nil, fmt.Errorf("colormap %s: need at least two stops", name)
	}
	cm := &Colormap{Name: name, stops: make([]colorful.Color, len(hexStops))}
	for i, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("colormap %s: %w", name, err)
		}
		cm.stops[i] = c
	}
	return cm, nil
}

func mustColormap(name string, hexStops ...string) *Colormap {
	cm, err := NewColormap(name, hexStops...)
	if err != nil {
		panic(err)
	}
	return cm
}

// At returns the color for t, clamped to [0, 1]. NaN maps to 0.
func (c *Colormap) At(t float64) color.RGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	seg := t * float64(len(c.stops)-1)
	i := int(seg)
	if i >= len(c.stops)-1 {
		i = len(c.stops) - 2
	}
	blended := c.stops[i].BlendLab(c.stops[i+1], seg-float64(i)).Clamped()
	r, g, b := blended.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

var colormaps = map[string]*Colormap{
	"inferno": mustColormap("inferno",
		"#000004", "#1f0c48", "#550f6d", "#88226a", "#ba3655",
		"#e35933", "#f98e09", "#f6c63c", "#fcffa4"),
	"cividis": mustColormap("cividis",
		"#00224e", "#123570", "#3b496c", "#575d6d", "#707173",
		"#8a8678", "#a59c74", "#c3b369", "#e1cc55", "#fee838"),
	"gray": mustColormap("gray", "#000000", "#ffffff"),
}

func LookupColormap(name string) (*Colormap, error) {
	cm, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q (have %v)", name, ColormapNames())
	}
	return cm, nil
}

func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for n := range colormaps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
