package gis

import (
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/san-kum/mathmodel/internal/export"
	"github.com/san-kum/mathmodel/internal/spatial"
)

// Solid is the spherical projection of one layer.
type Solid struct {
	Meshes []*spatial.Mesh
	Lines  [][]spatial.Point3
}

// shift moves points by (-Dx, -Dy) so the region sits at the pole.
func (l Layer) shift(pts []orb.Point) []orb.Point {
	out := make([]orb.Point, len(pts))
	for i, p := range pts {
		out[i] = orb.Point{p[0] - l.Dx, p[1] - l.Dy}
	}
	return out
}

// Project inflates every feature onto the layer's sphere. Polygons keep
// only their outer ring, which is meshed and outlined; LineStrings and
// MultiLineStrings become outlines.
func (l Layer) Project(fc *geojson.FeatureCollection, samples int, rng *rand.Rand) (*Solid, error) {
	s := &Solid{}
	if !l.Visible || fc == nil {
		return s, nil
	}
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			if err := l.projectRing(s, g, samples, rng); err != nil {
				return nil, err
			}
		case orb.MultiPolygon:
			for _, p := range g {
				if err := l.projectRing(s, p, samples, rng); err != nil {
					return nil, err
				}
			}
		case orb.LineString:
			s.Lines = append(s.Lines, spatial.Inflate(l.shift(g), l.R, l.Z))
		case orb.MultiLineString:
			for _, ls := range g {
				s.Lines = append(s.Lines, spatial.Inflate(l.shift(ls), l.R, l.Z))
			}
		}
	}
	return s, nil
}

func (l Layer) projectRing(s *Solid, p orb.Polygon, samples int, rng *rand.Rand) error {
	if len(p) == 0 {
		return nil
	}
	ring := l.shift(p[0])
	m, err := spatial.InflatedMesh(ring, l.R, l.Z, samples, rng)
	if err != nil {
		return fmt.Errorf("layer %s: %w", l.Name, err)
	}
	s.Meshes = append(s.Meshes, m)
	s.Lines = append(s.Lines, spatial.Inflate(ring, l.R, l.Z))
	return nil
}

// Objects converts the solid for OBJ export.
func (s *Solid) Objects(name string) []export.Object {
	fig := spatial.Figure{Name: name, Lines: s.Lines, Meshes: s.Meshes}
	return fig.Objects()
}

// Render3D projects every visible layer and writes one OBJ file.
func (m *Map) Render3D(path string, samples int, rng *rand.Rand) error {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	var objs []export.Object
	for _, l := range m.Layers {
		if !l.Visible {
			continue
		}
		fc, err := l.Load(m.Dir)
		if err != nil {
			return fmt.Errorf("layer %s: %w", l.Name, err)
		}
		solid, err := l.Project(fc, samples, rng)
		if err != nil {
			return err
		}
		m.Logger.Debug("layer projected", "layer", l.Name, "meshes", len(solid.Meshes), "lines", len(solid.Lines))
		objs = append(objs, solid.Objects(l.Name)...)
	}
	if len(objs) == 0 {
		return ErrNoShapes
	}
	m.Logger.Info("writing 3D map", "objects", len(objs), "out", path)
	return export.WriteOBJ(path, objs...)
}
