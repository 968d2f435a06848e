package cluster

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Merge joins clusters A and B at Height. Leaves are numbered 0..n-1 and
// the cluster formed by merge k is numbered n+k.
type Merge struct {
	A, B   int
	Height float64
	Size   int
}

// CompleteLinkage clusters the rows of m by Euclidean distance, merging at
// each step the pair whose farthest members are closest.
func CompleteLinkage(m mat.Matrix) []Merge {
	n, _ := m.Dims()
	if n < 2 {
		return nil
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = floats.Distance(rows[i], rows[j], 2)
		}
	}

	// active maps a slot to the cluster id it currently holds.
	active := make(map[int]int, n)
	size := make(map[int]int, n)
	for i := 0; i < n; i++ {
		active[i] = i
		size[i] = 1
	}

	merges := make([]Merge, 0, n-1)
	for k := 0; k < n-1; k++ {
		a, b := -1, -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if _, ok := active[i]; !ok {
				continue
			}
			for j := i + 1; j < n; j++ {
				if _, ok := active[j]; !ok {
					continue
				}
				if dist[i][j] < best {
					best, a, b = dist[i][j], i, j
				}
			}
		}

		ca, cb := active[a], active[b]
		id := n + k
		merges = append(merges, Merge{A: ca, B: cb, Height: best, Size: size[ca] + size[cb]})
		size[id] = size[ca] + size[cb]

		// slot a now holds the merged cluster
		for j := 0; j < n; j++ {
			d := math.Max(dist[a][j], dist[b][j])
			dist[a][j], dist[j][a] = d, d
		}
		active[a] = id
		delete(active, b)
	}
	return merges
}

// Segment is one line of a dendrogram drawing.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Dendrogram lays the merges out with leaves on the y axis at 0, 1, 2, ...
// and merge heights along x, as a tree opening to the left.
func Dendrogram(n int, merges []Merge) (order []int, segs []Segment) {
	if n == 0 {
		return nil, nil
	}
	children := make(map[int][2]int, len(merges))
	height := make(map[int]float64, len(merges))
	for k, mg := range merges {
		children[n+k] = [2]int{mg.A, mg.B}
		height[n+k] = mg.Height
	}
	root := n - 1
	if len(merges) > 0 {
		root = n + len(merges) - 1
	}

	pos := make(map[int]float64)
	var walk func(id int) float64
	walk = func(id int) float64 {
		c, ok := children[id]
		if !ok {
			pos[id] = float64(len(order))
			order = append(order, id)
			return pos[id]
		}
		ya, yb := walk(c[0]), walk(c[1])
		h := height[id]
		for _, ch := range c {
			segs = append(segs, Segment{X0: height[ch], Y0: pos[ch], X1: h, Y1: pos[ch]})
		}
		segs = append(segs, Segment{X0: h, Y0: ya, X1: h, Y1: yb})
		pos[id] = (ya + yb) / 2
		return pos[id]
	}
	walk(root)
	return order, segs
}
