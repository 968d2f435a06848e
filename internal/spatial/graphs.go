package spatial

import (
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/san-kum/mathmodel/internal/export"
)

// Source supplies the traced outline, closed or open.
type Source func(closed bool) (orb.LineString, error)

// ImageSource traces path with the given threshold on every call.
func ImageSource(path string, threshold uint8) Source {
	return func(closed bool) (orb.LineString, error) {
		return LoadContour(path, threshold, closed)
	}
}

// Figure is the output of a named graph: either a plane outline or a set
// of 3D polylines and meshes.
type Figure struct {
	Name   string
	Plane  orb.LineString
	Lines  [][]Point3
	Meshes []*Mesh
}

func (f *Figure) Is3D() bool { return f.Plane == nil }

// Objects converts the 3D parts of the figure for OBJ export.
func (f *Figure) Objects() []export.Object {
	var objs []export.Object
	for i, line := range f.Lines {
		obj := export.Object{Name: fmt.Sprintf("%s_line%d", f.Name, i)}
		idx := make([]int, len(line))
		for j, p := range line {
			obj.Vertices = append(obj.Vertices, [3]float64(p))
			idx[j] = j
		}
		obj.Lines = [][]int{idx}
		objs = append(objs, obj)
	}
	for i, m := range f.Meshes {
		objs = append(objs, m.Object(fmt.Sprintf("%s_mesh%d", f.Name, i)))
	}
	return objs
}

// GraphOptions tunes the sphere and solid graphs.
type GraphOptions struct {
	Radius      float64
	Height      float64
	Samples     int
	ConeHeight  float64
	WallHeight  float64
	DualSpacing float64
	Rand        *rand.Rand
}

func DefaultGraphOptions() GraphOptions {
	return GraphOptions{
		Radius:      DefaultRadius,
		Height:      DefaultHeight,
		Samples:     DefaultSamples,
		ConeHeight:  30,
		WallHeight:  10,
		DualSpacing: 30,
	}
}

type graphFunc func(src Source, opts GraphOptions) (*Figure, error)

var graphOrder = []string{
	"frame-plane-2d",
	"frame-plane-3d",
	"frame-sphere",
	"surface-sphere",
	"surface-cone",
	"surface-cylinder",
	"surface-cone-dual",
}

var graphs = map[string]graphFunc{
	"frame-plane-2d": func(src Source, _ GraphOptions) (*Figure, error) {
		shape, err := src(true)
		if err != nil {
			return nil, err
		}
		return &Figure{Plane: shape}, nil
	},
	"frame-plane-3d": func(src Source, _ GraphOptions) (*Figure, error) {
		shape, err := src(true)
		if err != nil {
			return nil, err
		}
		line := make([]Point3, len(shape))
		for i, p := range shape {
			line[i] = Point3{p[0], p[1], 0}
		}
		return &Figure{Lines: [][]Point3{line}}, nil
	},
	"frame-sphere": func(src Source, opts GraphOptions) (*Figure, error) {
		shape, err := src(true)
		if err != nil {
			return nil, err
		}
		return &Figure{Lines: [][]Point3{Inflate(shape, opts.Radius, opts.Height)}}, nil
	},
	"surface-sphere": func(src Source, opts GraphOptions) (*Figure, error) {
		shape, err := src(true)
		if err != nil {
			return nil, err
		}
		rng := opts.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(1))
		}
		m, err := InflatedMesh(shape, opts.Radius, opts.Height, opts.Samples, rng)
		if err != nil {
			return nil, err
		}
		return &Figure{Meshes: []*Mesh{m}}, nil
	},
	"surface-cone": func(src Source, opts GraphOptions) (*Figure, error) {
		return solid(src, func(s []orb.Point) *Mesh { return Cone(s, opts.ConeHeight) })
	},
	"surface-cylinder": func(src Source, opts GraphOptions) (*Figure, error) {
		return solid(src, func(s []orb.Point) *Mesh { return Cylinder(s, opts.WallHeight) })
	},
	"surface-cone-dual": func(src Source, opts GraphOptions) (*Figure, error) {
		return solid(src, func(s []orb.Point) *Mesh { return DualCone(s, opts.DualSpacing) })
	},
}

func solid(src Source, build func([]orb.Point) *Mesh) (*Figure, error) {
	shape, err := src(false)
	if err != nil {
		return nil, err
	}
	if len(shape) < 3 {
		return nil, ErrDegenerate
	}
	return &Figure{Meshes: []*Mesh{build(shape)}}, nil
}

// Build runs the named graph against src.
func Build(name string, src Source, opts GraphOptions) (*Figure, error) {
	fn, ok := graphs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGraph, name)
	}
	fig, err := fn(src, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	fig.Name = name
	return fig, nil
}

// GraphNames lists the graphs in presentation order.
func GraphNames() []string {
	return append([]string(nil), graphOrder...)
}
