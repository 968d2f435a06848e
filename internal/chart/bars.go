package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// BarGroup is one named set of bar heights, one per category.
type BarGroup struct {
	Name   string
	Values []float64
}

// Bars draws grouped bars side by side over the categories.
func Bars(title string, categories []string, groups ...BarGroup) (*plot.Plot, error) {
	p := New(title, "", "")
	p.Legend.Top = true
	width := vg.Points(60) / vg.Length(max(len(groups), 1))
	for i, g := range groups {
		if len(g.Values) != len(categories) {
			return nil, fmt.Errorf("bar group %q: %d values for %d categories", g.Name, len(g.Values), len(categories))
		}
		b, err := plotter.NewBarChart(plotter.Values(g.Values), width)
		if err != nil {
			return nil, fmt.Errorf("bar group %q: %w", g.Name, err)
		}
		b.LineStyle.Width = vg.Length(0)
		b.Color = plotutil.Color(i)
		b.Offset = width * (vg.Length(i) - vg.Length(len(groups)-1)/2)
		p.Add(b)
		p.Legend.Add(g.Name, b)
	}
	p.NominalX(categories...)
	return p, nil
}
