package cluster

import (
	"errors"
	"math"
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"
)

func TestStandardize(t *testing.T) {
	g := NewWithT(t)
	m := mat.NewDense(4, 2, []float64{
		1, 5,
		2, 5,
		3, 5,
		4, 5,
	})
	z := Standardize(m)
	col := mat.Col(nil, 0, z)
	var sum, sq float64
	for _, v := range col {
		sum += v
		sq += v * v
	}
	g.Expect(sum).To(BeNumerically("~", 0, 1e-12))
	g.Expect(sq / 4).To(BeNumerically("~", 1, 1e-12))
	g.Expect(mat.Col(nil, 1, z)).To(Equal([]float64{0, 0, 0, 0}))
}

func TestStandard(t *testing.T) {
	d := DefaultDataset()
	got := Standard(d.Values)
	want := []float64{73, 59, 87, 87, 63}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Standard = %v, want %v", got, want)
		}
	}
}

func TestScoreWeights(t *testing.T) {
	z := mat.NewDense(2, 2, []float64{
		0, 1,
		1, 0,
	})
	tests := []struct {
		name    string
		weights []float64
		want    []float64
	}{
		{"unweighted", nil, []float64{1, 1}},
		{"weighted", []float64{1, 3}, []float64{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(z, tt.weights)
			if err != nil {
				t.Fatal(err)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("score[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}

	if _, err := Score(z, []float64{1}); !errors.Is(err, ErrBadWeight) {
		t.Errorf("err = %v, want ErrBadWeight", err)
	}
}

func TestRankingDefaultDataset(t *testing.T) {
	g := NewWithT(t)
	variants, err := Ranking(DefaultDataset())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(variants).To(HaveLen(3))

	want := []struct {
		best   int
		scores []float64
	}{
		{1, []float64{11.4715087, 11.3790476, 18.3808574, 19.3271028}},
		{0, []float64{25.7603204, 44.8038095, 42.6586679, 49.3084112}},
		{0, []float64{1.7173547, 2.9869206, 2.8439112, 3.2872274}},
	}
	for i, v := range variants {
		g.Expect(v.Best).To(Equal(want[i].best), v.Name)
		for j, s := range v.Scores {
			g.Expect(s).To(BeNumerically("~", want[i].scores[j], 1e-6), v.Name)
		}
	}
}

func TestLinearWeights(t *testing.T) {
	g := NewWithT(t)
	g.Expect(LinearWeights(5)).To(Equal([]float64{1, 2, 3, 4, 5}))
	g.Expect(LinearWeights(1)).To(Equal([]float64{1}))
	g.Expect(LinearWeights(0)).To(BeNil())

	n := Normalize([]float64{1, 3})
	g.Expect(n).To(Equal([]float64{0.25, 0.75}))
}

func withStandard(d Dataset) *mat.Dense {
	r, c := d.Values.Dims()
	m := mat.NewDense(r+1, c, nil)
	m.Copy(d.Values)
	m.SetRow(r, Standard(d.Values))
	return m
}

func TestCompleteLinkage(t *testing.T) {
	g := NewWithT(t)
	merges := CompleteLinkage(withStandard(DefaultDataset()))
	g.Expect(merges).To(HaveLen(4))

	want := []struct {
		a, b   int
		height float64
		size   int
	}{
		{0, 2, 7.4833148, 2},
		{1, 5, 13.7113092, 3},
		{3, 4, 15.7480157, 2},
		{6, 7, 48.7852437, 5},
	}
	for i, w := range want {
		m := merges[i]
		g.Expect([]int{m.A, m.B}).To(ConsistOf(w.a, w.b))
		g.Expect(m.Height).To(BeNumerically("~", w.height, 1e-6))
		g.Expect(m.Size).To(Equal(w.size))
	}
	g.Expect(CompleteLinkage(mat.NewDense(1, 2, nil))).To(BeNil())
}

func TestDendrogram(t *testing.T) {
	g := NewWithT(t)
	merges := CompleteLinkage(withStandard(DefaultDataset()))
	order, segs := Dendrogram(5, merges)

	g.Expect(order).To(HaveLen(5))
	g.Expect(order).To(ConsistOf(0, 1, 2, 3, 4))
	// two horizontal legs and one vertical join per merge
	g.Expect(segs).To(HaveLen(3 * len(merges)))

	top := 0.0
	for _, s := range segs {
		top = math.Max(top, math.Max(s.X0, s.X1))
	}
	g.Expect(top).To(BeNumerically("~", merges[len(merges)-1].Height, 1e-12))
}
