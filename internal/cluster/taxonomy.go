package cluster

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrEmpty     = errors.New("cluster: empty matrix")
	ErrBadWeight = errors.New("cluster: weights do not match features")
)

// Dataset is a matrix of objects (rows) by features (columns).
type Dataset struct {
	Objects  []string
	Features []string
	Values   *mat.Dense
}

// DefaultDataset returns four companies rated on five features.
func DefaultDataset() Dataset {
	return Dataset{
		Objects:  []string{"alpha", "beta", "gamma", "delta"},
		Features: []string{"experience", "finance", "innovation", "dynamics", "stability"},
		Values: mat.NewDense(4, 5, []float64{
			67, 57, 49, 81, 63,
			73, 59, 41, 87, 59,
			65, 57, 43, 77, 63,
			67, 55, 87, 73, 63,
		}),
	}
}

// Standardize centres every column and divides by its population standard
// deviation. Constant columns become zero.
func Standardize(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	z := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		mean, std := stat.PopMeanStdDev(col, nil)
		for i, v := range col {
			if std == 0 {
				z.Set(i, j, 0)
				continue
			}
			z.Set(i, j, (v-mean)/std)
		}
	}
	return z
}

// Standard is the reference object: the column-wise maximum.
func Standard(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, c)
	col := make([]float64, r)
	for j := range out {
		mat.Col(col, j, m)
		out[j] = floats.Max(col)
	}
	return out
}

// Score returns Σ_j w_j·(z_ij − max_i z_ij)² for every row. Nil weights
// count every feature once.
func Score(z mat.Matrix, weights []float64) ([]float64, error) {
	r, c := z.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmpty
	}
	if weights != nil && len(weights) != c {
		return nil, fmt.Errorf("%w: %d weights for %d features", ErrBadWeight, len(weights), c)
	}
	best := Standard(z)
	scores := make([]float64, r)
	for i := range scores {
		for j := 0; j < c; j++ {
			d := z.At(i, j) - best[j]
			w := 1.0
			if weights != nil {
				w = weights[j]
			}
			scores[i] += w * d * d
		}
	}
	return scores, nil
}

// LinearWeights returns n weights spaced evenly from 1 to n.
func LinearWeights(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{1}
	}
	return floats.Span(make([]float64, n), 1, float64(n))
}

// Normalize scales weights to sum to one.
func Normalize(weights []float64) []float64 {
	out := append([]float64(nil), weights...)
	if sum := floats.Sum(out); sum != 0 {
		floats.Scale(1/sum, out)
	}
	return out
}

// Variant is one scoring of the dataset.
type Variant struct {
	Name   string
	Scores []float64
	Best   int
}

// Ranking scores the dataset unweighted, with linear weights and with the
// same weights normalised.
func Ranking(d Dataset) ([]Variant, error) {
	if d.Values == nil {
		return nil, ErrEmpty
	}
	_, c := d.Values.Dims()
	z := Standardize(d.Values)
	weights := LinearWeights(c)

	cases := []struct {
		name    string
		weights []float64
	}{
		{"unweighted", nil},
		{"weighted", weights},
		{"weighted normalised", Normalize(weights)},
	}
	out := make([]Variant, 0, len(cases))
	for _, cs := range cases {
		scores, err := Score(z, cs.weights)
		if err != nil {
			return nil, err
		}
		out = append(out, Variant{Name: cs.name, Scores: scores, Best: floats.MinIdx(scores)})
	}
	return out, nil
}
