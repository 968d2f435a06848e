package spatial

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/fogleman/delaunay"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/san-kum/mathmodel/internal/export"
)

// Default inflation parameters.
const (
	DefaultRadius  = 50.0
	DefaultHeight  = 20.0
	DefaultSamples = 1000
)

type Point3 [3]float64

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []Point3
	Faces    [][3]int
}

func (m *Mesh) Object(name string) export.Object {
	obj := export.Object{Name: name, Faces: m.Faces, Vertices: make([][3]float64, len(m.Vertices))}
	for i, v := range m.Vertices {
		obj.Vertices[i] = [3]float64(v)
	}
	return obj
}

// Inflate projects plane points onto a sphere of radius r:
// k = r / sqrt(x² + y² + (z + r)²) and the result is (x·k, y·k, z·k).
func Inflate(points []orb.Point, r, z float64) []Point3 {
	out := make([]Point3, len(points))
	for i, p := range points {
		k := r / math.Sqrt(p[0]*p[0]+p[1]*p[1]+(z+r)*(z+r))
		out[i] = Point3{p[0] * k, p[1] * k, z * k}
	}
	return out
}

// Triangulation is a planar triangulation restricted to a polygon.
type Triangulation struct {
	Points []orb.Point
	Faces  [][3]int
}

// Triangulate fills ring with up to samples random interior points drawn
// uniformly from its bounding box, triangulates boundary and interior
// points together and keeps the triangles whose edges stay inside the ring.
func Triangulate(ring []orb.Point, samples int, rng *rand.Rand) (*Triangulation, error) {
	ring = openRing(ring)
	if len(ring) < 3 {
		return nil, ErrDegenerate
	}
	poly := orb.Polygon{closeRing(ring)}
	bound := poly.Bound()

	points := append([]orb.Point(nil), ring...)
	for i := 0; i < samples; i++ {
		p := orb.Point{
			bound.Min[0] + rng.Float64()*(bound.Max[0]-bound.Min[0]),
			bound.Min[1] + rng.Float64()*(bound.Max[1]-bound.Min[1]),
		}
		if planar.PolygonContains(poly, p) {
			points = append(points, p)
		}
	}

	dpts := make([]delaunay.Point, len(points))
	for i, p := range points {
		dpts[i] = delaunay.Point{X: p[0], Y: p[1]}
	}
	tri, err := delaunay.Triangulate(dpts)
	if err != nil {
		return nil, fmt.Errorf("triangulate: %w", err)
	}

	out := &Triangulation{Points: points}
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		f := [3]int{tri.Triangles[i], tri.Triangles[i+1], tri.Triangles[i+2]}
		if triangleInside(poly, points[f[0]], points[f[1]], points[f[2]]) {
			out.Faces = append(out.Faces, f)
		}
	}
	return out, nil
}

// InflatedMesh triangulates ring and inflates the vertices with r and z.
func InflatedMesh(ring []orb.Point, r, z float64, samples int, rng *rand.Rand) (*Mesh, error) {
	t, err := Triangulate(ring, samples, rng)
	if err != nil {
		return nil, err
	}
	return &Mesh{Vertices: Inflate(t.Points, r, z), Faces: t.Faces}, nil
}

func triangleInside(poly orb.Polygon, a, b, c orb.Point) bool {
	return edgeInside(poly, a, b) && edgeInside(poly, b, c) && edgeInside(poly, c, a)
}

// edgeInside reports whether segment ab lies in the polygon or on its
// boundary: sample points along it are contained and it never properly
// crosses a boundary edge.
func edgeInside(poly orb.Polygon, a, b orb.Point) bool {
	for _, t := range []float64{0.25, 0.5, 0.75} {
		p := orb.Point{a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1])}
		if !planar.PolygonContains(poly, p) && !onBoundary(poly, p) {
			return false
		}
	}
	for _, ring := range poly {
		for i := 0; i+1 < len(ring); i++ {
			if properlyCross(a, b, ring[i], ring[i+1]) {
				return false
			}
		}
	}
	return true
}

func onBoundary(poly orb.Polygon, p orb.Point) bool {
	b := poly.Bound()
	eps := 1e-9 * math.Max(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1])
	for _, ring := range poly {
		for i := 0; i+1 < len(ring); i++ {
			if planar.DistanceFromSegment(ring[i], ring[i+1], p) <= eps {
				return true
			}
		}
	}
	return false
}

func orient(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func properlyCross(a, b, c, d orb.Point) bool {
	d1, d2 := orient(a, b, c), orient(a, b, d)
	d3, d4 := orient(c, d, a), orient(c, d, b)
	return d1*d2 < 0 && d3*d4 < 0
}

func openRing(pts []orb.Point) []orb.Point {
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		return pts[:n-1]
	}
	return pts
}

func closeRing(pts []orb.Point) orb.Ring {
	r := make(orb.Ring, len(pts), len(pts)+1)
	copy(r, pts)
	return append(r, pts[0])
}
