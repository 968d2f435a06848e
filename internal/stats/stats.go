// Package stats summarises paired samples: population moments, sample
// covariance and Pearson correlation.
package stats

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrEmpty          = errors.New("stats: empty sample")
	ErrLengthMismatch = errors.New("stats: samples differ in length")
)

// Sample is a named series of observations.
type Sample struct {
	Name   string
	Values []float64
}

// DefaultSamples are the two series shipped with the stats command.
func DefaultSamples() (Sample, Sample) {
	x0 := Sample{Name: "x0", Values: []float64{95, 116, 150, 87, 52, 156, 173, 41, 54, 197, 149, 16, 92, 198, 108, 39, 124}}
	x1 := Sample{Name: "x1", Values: []float64{114, 110, 99, 109, 128, 112, 85, 107, 142, 114, 71, 104, 155, 118, 58, 99, 167}}
	return x0, x1
}

// Summary holds population moments (divisor n).
type Summary struct {
	Name string
	Mean float64
	Var  float64
	Std  float64
}

func Describe(s Sample) (Summary, error) {
	if len(s.Values) == 0 {
		return Summary{}, fmt.Errorf("%s: %w", s.Name, ErrEmpty)
	}
	mean, variance := stat.PopMeanVariance(s.Values, nil)
	return Summary{Name: s.Name, Mean: mean, Var: variance, Std: stat.PopStdDev(s.Values, nil)}, nil
}

// Pair is the joint statistics of two samples.
type Pair struct {
	Covariance  float64 // sample covariance, divisor n-1
	Correlation float64
}

func Compare(x, y Sample) (Pair, error) {
	if len(x.Values) == 0 || len(y.Values) == 0 {
		return Pair{}, ErrEmpty
	}
	if len(x.Values) != len(y.Values) {
		return Pair{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x.Values), len(y.Values))
	}
	return Pair{
		Covariance:  stat.Covariance(x.Values, y.Values, nil),
		Correlation: stat.Correlation(x.Values, y.Values, nil),
	}, nil
}

// Title formats the pair the way the chart header shows it.
func (p Pair) Title() string {
	return fmt.Sprintf("cov = %.4f, cor = %.4f", p.Covariance, p.Correlation)
}

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table renders summaries side by side: one column per sample and one row
// per statistic, in a bordered ASCII table with right-aligned numbers.
func Table(summaries ...Summary) string {
	headers := []string{""}
	rows := [][]string{{"mean"}, {"var"}, {"std"}}
	for _, s := range summaries {
		headers = append(headers, s.Name)
		rows[0] = append(rows[0], format(s.Mean))
		rows[1] = append(rows[1], format(s.Var))
		rows[2] = append(rows[2], format(s.Std))
	}
	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 || row == table.HeaderRow {
				return cellStyle
			}
			return cellStyle.Align(lipgloss.Right)
		})
	return t.Render()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}
