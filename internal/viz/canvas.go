package viz

import (
	"math"
	"strings"
)

// Braille cells hold 2x4 dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
const brailleBlank = 0x2800

var dotBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells addressed in dot coordinates, so a
// canvas of w x h cells is (2w) x (4h) dots.
type Canvas struct {
	Width, Height int
	cells         [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, cells: make([][]rune, h)}
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) { return 2 * c.Width, 4 * c.Height }

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/4, x/2
	return row, col, row < c.Height && col < c.Width
}

// Set turns on the dot at (x, y). Dots off the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if row, col, ok := c.cell(x, y); ok {
		c.cells[row][col] |= dotBits[y%4][x%2]
	}
}

func (c *Canvas) Unset(x, y int) {
	if row, col, ok := c.cell(x, y); ok {
		c.cells[row][col] &^= dotBits[y%4][x%2]
	}
}

func (c *Canvas) IsSet(x, y int) bool {
	row, col, ok := c.cell(x, y)
	return ok && c.cells[row][col]&dotBits[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = brailleBlank
		}
	}
}

// Line draws a segment with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Polyline fits xs, ys into the canvas, keeping the aspect ratio of the
// data, and joins consecutive points. Non-finite points break the line.
func (c *Canvas) Polyline(xs, ys []float64) {
	n := min(len(xs), len(ys))
	if n == 0 {
		return
	}
	fit := newFit(xs[:n], ys[:n], c)
	px, py, ok := 0, 0, false
	for i := 0; i < n; i++ {
		x, y, valid := fit.dot(xs[i], ys[i])
		if !valid {
			ok = false
			continue
		}
		if ok {
			c.Line(px, py, x, y)
		} else {
			c.Set(x, y)
		}
		px, py, ok = x, y, true
	}
}

type fit struct {
	x0, y0, scale float64
	w, h          int
}

func newFit(xs, ys []float64, c *Canvas) fit {
	xMin, xMax := bounds(xs)
	yMin, yMax := bounds(ys)
	w, h := c.Dots()
	spanX, spanY := xMax-xMin, yMax-yMin
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	scale := math.Min(float64(w-1)/spanX, float64(h-1)/spanY)
	return fit{x0: xMin, y0: yMax, scale: scale, w: w, h: h}
}

func (f fit) dot(x, y float64) (int, int, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	return int(math.Round((x - f.x0) * f.scale)), int(math.Round((f.y0 - y) * f.scale)), true
}

func bounds(vs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
