package spatial

import (
	"github.com/paulmach/orb"
)

func center(points []orb.Point) orb.Point {
	return orb.LineString(points).Bound().Center()
}

// Cone raises an apex of the given height over the bounding-box centre of
// the outline and fans a triangle from every outline edge to it.
func Cone(points []orb.Point, height float64) *Mesh {
	points = openRing(points)
	n := len(points)
	c := center(points)

	m := &Mesh{Vertices: make([]Point3, 0, n+1), Faces: make([][3]int, 0, n)}
	for _, p := range points {
		m.Vertices = append(m.Vertices, Point3{p[0], p[1], 0})
	}
	m.Vertices = append(m.Vertices, Point3{c[0], c[1], height})
	for i := 0; i < n; i++ {
		m.Faces = append(m.Faces, [3]int{i, (i + 1) % n, n})
	}
	return m
}

// DualCone places one copy of the outline at +height and one at -height
// and joins both to a shared apex at z = 0.
func DualCone(points []orb.Point, height float64) *Mesh {
	points = openRing(points)
	n := len(points)
	c := center(points)

	m := &Mesh{Vertices: make([]Point3, 0, 2*n+1), Faces: make([][3]int, 0, 2*n)}
	for _, z := range []float64{height, -height} {
		for _, p := range points {
			m.Vertices = append(m.Vertices, Point3{p[0], p[1], z})
		}
	}
	m.Vertices = append(m.Vertices, Point3{c[0], c[1], 0})
	for ring := 0; ring < 2; ring++ {
		for j := 0; j < n; j++ {
			m.Faces = append(m.Faces, [3]int{j + ring*n, (j+1)%n + ring*n, 2 * n})
		}
	}
	return m
}

// Cylinder doubles every outline point into a bottom (z = 0) and top
// (z = height) vertex and stitches consecutive triples into the side wall.
func Cylinder(points []orb.Point, height float64) *Mesh {
	points = openRing(points)
	total := 2 * len(points)

	m := &Mesh{Vertices: make([]Point3, 0, total), Faces: make([][3]int, 0, total)}
	for _, p := range points {
		m.Vertices = append(m.Vertices, Point3{p[0], p[1], 0}, Point3{p[0], p[1], height})
	}
	for i := 0; i < total; i++ {
		m.Faces = append(m.Faces, [3]int{i, (i + 1) % total, (i + 2) % total})
	}
	return m
}
