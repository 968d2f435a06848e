package spatial

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/paulmach/orb"
)

// Moore neighbourhood, clockwise from west in image coordinates.
var neighbours = [8]image.Point{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

type mask struct {
	w, h int
	on   []bool
}

func (m *mask) at(p image.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= m.w || p.Y >= m.h {
		return false
	}
	return m.on[p.Y*m.w+p.X]
}

// binarize converts img to gray and marks pixels brighter than threshold.
func binarize(img image.Image, threshold uint8) *mask {
	b := img.Bounds()
	m := &mask{w: b.Dx(), h: b.Dy(), on: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			m.on[y*m.w+x] = g.Y > threshold
		}
	}
	return m
}

func (m *mask) invert() *mask {
	inv := &mask{w: m.w, h: m.h, on: make([]bool, len(m.on))}
	for i, v := range m.on {
		inv.on[i] = !v
	}
	return inv
}

// components labels 8-connected regions and returns the raster-first pixel
// of each together with whether the region touches the image border.
func (m *mask) components() (starts []image.Point, border []bool) {
	seen := make([]bool, len(m.on))
	for i, v := range m.on {
		if !v || seen[i] {
			continue
		}
		start := image.Point{X: i % m.w, Y: i / m.w}
		touches := false
		queue := []image.Point{start}
		seen[i] = true
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			if p.X == 0 || p.Y == 0 || p.X == m.w-1 || p.Y == m.h-1 {
				touches = true
			}
			for _, d := range neighbours {
				n := p.Add(d)
				if m.at(n) && !seen[n.Y*m.w+n.X] {
					seen[n.Y*m.w+n.X] = true
					queue = append(queue, n)
				}
			}
		}
		starts = append(starts, start)
		border = append(border, touches)
	}
	return starts, border
}

func dirIndex(d image.Point) int {
	for i, n := range neighbours {
		if n == d {
			return i
		}
	}
	return 0
}

// trace follows the outer boundary of the region containing start, which
// must be its raster-first pixel, and returns the boundary pixels in order.
func (m *mask) trace(start image.Point) []image.Point {
	boundary := []image.Point{start}
	cur, back := start, 0 // entered from the west
	limit := 4*m.w*m.h + 8

	for i := 0; i < limit; i++ {
		next, found := cur, false
		var d int
		for k := 0; k < 8; k++ {
			d = (back + k) % 8
			if n := cur.Add(neighbours[d]); m.at(n) {
				next, found = n, true
				break
			}
		}
		if !found {
			return boundary
		}
		// leaving the start along the first edge again closes the loop
		if cur == start && len(boundary) > 1 && next == boundary[1] {
			break
		}

		prev := cur.Add(neighbours[(d+7)%8])
		back = dirIndex(prev.Sub(next))
		cur = next
		boundary = append(boundary, cur)
	}
	if n := len(boundary); n > 1 && boundary[n-1] == start {
		boundary = boundary[:n-1]
	}
	return boundary
}

// compress keeps only the end points of horizontal, vertical and diagonal
// runs of a closed boundary.
func compress(pts []image.Point) []image.Point {
	n := len(pts)
	if n < 3 {
		return pts
	}
	out := make([]image.Point, 0, n)
	for i := 0; i < n; i++ {
		in := pts[i].Sub(pts[(i+n-1)%n])
		outDir := pts[(i+1)%n].Sub(pts[i])
		if in != outDir {
			out = append(out, pts[i])
		}
	}
	if len(out) == 0 {
		return pts[:1]
	}
	return out
}

// Contour thresholds img (pixels brighter than threshold are foreground),
// traces the boundaries of the foreground regions and of the enclosed
// background holes, and returns the one with the most points after run
// compression. When closed is set the first point is repeated at the end.
func Contour(img image.Image, threshold uint8, closed bool) (orb.LineString, error) {
	fg := binarize(img, threshold)

	var best []image.Point
	consider := func(m *mask, holesOnly bool) {
		starts, border := m.components()
		for i, s := range starts {
			if holesOnly && border[i] {
				continue
			}
			c := compress(m.trace(s))
			if len(c) > len(best) {
				best = c
			}
		}
	}
	consider(fg, false)
	consider(fg.invert(), true)

	if len(best) == 0 {
		return nil, ErrNoContour
	}

	b := img.Bounds()
	ls := make(orb.LineString, 0, len(best)+1)
	for _, p := range best {
		ls = append(ls, orb.Point{float64(b.Min.X + p.X), float64(b.Min.Y + p.Y)})
	}
	if closed {
		ls = append(ls, ls[0])
	}
	return ls, nil
}

// LoadContour decodes a PNG or JPEG file and traces it with Contour.
func LoadContour(path string, threshold uint8, closed bool) (orb.LineString, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return Contour(img, threshold, closed)
}
