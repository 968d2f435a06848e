package viz

import (
	"math"
	"sort"

	"github.com/san-kum/mathmodel/internal/dynamo"
	"github.com/san-kum/mathmodel/internal/spatial"
)

// Camera orbits a wireframe centred on the origin.
type Camera struct {
	Distance         float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 4, RotX: -math.Pi / 3, RotZ: math.Pi / 6, Zoom: 1}
}

func (c *Camera) Rotate(dx, dy, dz float64) { c.RotX, c.RotY, c.RotZ = c.RotX+dx, c.RotY+dy, c.RotZ+dz }
func (c *Camera) ZoomIn()                   { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()                  { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p spatial.Point3) spatial.Point3 {
	x, y, z := p[0], p[1], p[2]
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	x, y = x*cz-y*sz, x*sz+y*cz
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	y, z = y*cx-z*sx, y*sx+z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	x, z = x*cy+z*sy, -x*sy+z*cy
	return spatial.Point3{x, y, z}
}

// Project maps a point of the unit cube onto a w x h dot plane. The depth
// grows away from the viewer; points behind the camera are not visible.
func (c *Camera) Project(p spatial.Point3, w, h int) (x, y int, depth float64, ok bool) {
	r := c.rotate(p)
	d := c.Distance - r[2]
	if d <= 0.1 {
		return 0, 0, 0, false
	}
	k := c.Distance / d * c.Zoom * float64(min(w, h)) / 2.2
	x = int(math.Round(r[0]*k)) + w/2
	y = int(math.Round(-r[1]*k)) + h/2
	return x, y, d, true
}

// Wireframe is a set of edges normalised into the unit cube.
type Wireframe struct {
	Edges [][2]spatial.Point3
}

func (w *Wireframe) add(a, b spatial.Point3) { w.Edges = append(w.Edges, [2]spatial.Point3{a, b}) }

// normalize centres the edges on the origin and scales the largest extent
// to 2.
func (w *Wireframe) normalize() *Wireframe {
	if len(w.Edges) == 0 {
		return w
	}
	lo := spatial.Point3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := spatial.Point3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, e := range w.Edges {
		for _, p := range e {
			for i := range p {
				lo[i], hi[i] = math.Min(lo[i], p[i]), math.Max(hi[i], p[i])
			}
		}
	}
	extent := 0.0
	var mid spatial.Point3
	for i := range mid {
		mid[i] = (lo[i] + hi[i]) / 2
		extent = math.Max(extent, hi[i]-lo[i])
	}
	if extent == 0 {
		extent = 1
	}
	for k := range w.Edges {
		for j := range w.Edges[k] {
			for i := range mid {
				w.Edges[k][j][i] = (w.Edges[k][j][i] - mid[i]) * 2 / extent
			}
		}
	}
	return w
}

// MeshWireframe returns the edges of every face of m.
func MeshWireframe(m *spatial.Mesh) *Wireframe {
	w := &Wireframe{}
	w.addMesh(m)
	return w.normalize()
}

func (w *Wireframe) addMesh(m *spatial.Mesh) {
	type key [2]int
	seen := map[key]bool{}
	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			if seen[key{a, b}] {
				continue
			}
			seen[key{a, b}] = true
			w.add(m.Vertices[a], m.Vertices[b])
		}
	}
}

// FigureWireframe merges the meshes and polylines of a spatial figure.
func FigureWireframe(f *spatial.Figure) *Wireframe {
	w := &Wireframe{}
	for _, m := range f.Meshes {
		w.addMesh(m)
	}
	for _, line := range f.Lines {
		for i := 1; i < len(line); i++ {
			w.add(line[i-1], line[i])
		}
	}
	return w.normalize()
}

// TrajectoryWireframe joins the first three components of consecutive
// valid states. Every stride-th state is used.
func TrajectoryWireframe(states []dynamo.State, stride int) *Wireframe {
	if stride < 1 {
		stride = 1
	}
	w := &Wireframe{}
	var prev spatial.Point3
	have := false
	for i := 0; i < len(states); i += stride {
		s := states[i]
		if len(s) < 3 || !s.IsValid() {
			have = false
			continue
		}
		p := spatial.Point3{s[0], s[1], s[2]}
		if have {
			w.add(prev, p)
		}
		prev, have = p, true
	}
	return w.normalize()
}

// Draw renders the wireframe far edges first.
func Draw(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	dw, dh := c.Dots()
	type seg struct {
		x0, y0, x1, y1 int
		depth          float64
	}
	segs := make([]seg, 0, len(w.Edges))
	for _, e := range w.Edges {
		x0, y0, d0, ok0 := cam.Project(e[0], dw, dh)
		x1, y1, d1, ok1 := cam.Project(e[1], dw, dh)
		if ok0 && ok1 {
			segs = append(segs, seg{x0, y0, x1, y1, (d0 + d1) / 2})
		}
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].depth > segs[j].depth })
	for _, s := range segs {
		c.Line(s.x0, s.y0, s.x1, s.y1)
	}
}
