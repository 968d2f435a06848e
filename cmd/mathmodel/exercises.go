package main

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/mathmodel/internal/chart"
	"github.com/san-kum/mathmodel/internal/cluster"
	"github.com/san-kum/mathmodel/internal/export"
	"github.com/san-kum/mathmodel/internal/optim"
	"github.com/san-kum/mathmodel/internal/stats"
)

var (
	statsOut    string
	clusterDir  string
	gradientOut string
	startX      float64
	startY      float64
	bestStart   bool
	ascent      = optim.DefaultAscent()
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "describe and compare two samples",
		RunE: func(_ *cobra.Command, _ []string) error {
			x, y := stats.DefaultSamples()
			sx, err := stats.Describe(x)
			if err != nil {
				return err
			}
			sy, err := stats.Describe(y)
			if err != nil {
				return err
			}
			pair, err := stats.Compare(x, y)
			if err != nil {
				return err
			}
			fmt.Println(stats.Table(sx, sy))
			fmt.Println(pair.Title())

			p, err := chart.LinePoints(pair.Title(), chart.Indexed(x.Name, x.Values), chart.Indexed(y.Name, y.Values))
			if err != nil {
				return err
			}
			if err := chart.Save(p, statsOut, chart.DefaultWidth, chart.DefaultHeight); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", statsOut)
			return nil
		},
	}
	cmd.Flags().StringVarP(&statsOut, "output", "o", "images/statistics.png", "output PNG")
	return cmd
}

func clusterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "rank objects with the taxonomic method",
		RunE:  runCluster,
	}
	cmd.Flags().StringVar(&clusterDir, "out", "images", "output directory")
	return cmd
}

func runCluster(_ *cobra.Command, _ []string) error {
	d := cluster.DefaultDataset()
	variants, err := cluster.Ranking(d)
	if err != nil {
		return err
	}

	scores := make([]chart.BarGroup, len(variants))
	profiles := make([]chart.BarGroup, 0, len(variants)+1)
	for i, v := range variants {
		scores[i] = chart.BarGroup{Name: v.Name, Values: v.Scores}
		profiles = append(profiles, chart.BarGroup{Name: v.Name, Values: mat.Row(nil, v.Best, d.Values)})
		fmt.Printf("%-26s best: %s\n", v.Name, d.Objects[v.Best])
	}
	standard := cluster.Standard(d.Values)
	profiles = append(profiles, chart.BarGroup{Name: "standard", Values: standard})

	p, err := chart.Bars("scores", d.Objects, scores...)
	if err != nil {
		return err
	}
	if err := saveCluster(p, "scores.png"); err != nil {
		return err
	}
	if p, err = chart.Bars("profiles", d.Features, profiles...); err != nil {
		return err
	}
	if err := saveCluster(p, "profiles.png"); err != nil {
		return err
	}

	r, c := d.Values.Dims()
	all := mat.NewDense(r+1, c, nil)
	for i := 0; i < r; i++ {
		all.SetRow(i, mat.Row(nil, i, d.Values))
	}
	all.SetRow(r, standard)
	labels := append(append([]string(nil), d.Objects...), "standard")
	if p, err = dendrogram(all, labels); err != nil {
		return err
	}
	return saveCluster(p, "dendrogram.png")
}

func saveCluster(p *plot.Plot, name string) error {
	path := filepath.Join(clusterDir, name)
	if err := chart.Save(p, path, 2*chart.DefaultWidth, 1.5*chart.DefaultHeight); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

// dendrogram draws the complete-linkage tree of the rows with the leaves
// on the y axis and merge distances along x.
func dendrogram(m mat.Matrix, labels []string) (*plot.Plot, error) {
	n, _ := m.Dims()
	merges := cluster.CompleteLinkage(m)
	order, segs := cluster.Dendrogram(n, merges)

	p := chart.New("dendrogram", "distance", "")
	for _, s := range segs {
		pts := plotter.XYs{{X: s.X0, Y: s.Y0}, {X: s.X1, Y: s.Y1}}
		if err := chart.Path(p, pts, plotutil.Color(0), vg.Points(1.5)); err != nil {
			return nil, err
		}
	}
	names := make([]string, len(order))
	for i, leaf := range order {
		names[i] = labels[leaf]
	}
	p.NominalY(names...)
	p.X.Min = 0
	return p, nil
}

func gradientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "climb sin(x-9)·sin(y-5.4) with finite differences",
		RunE:  runGradient,
	}
	cmd.Flags().StringVarP(&gradientOut, "output", "o", "images/gradient.png", "output PNG")
	cmd.Flags().Float64Var(&startX, "x0", 0, "start x")
	cmd.Flags().Float64Var(&startY, "y0", 0, "start y")
	cmd.Flags().BoolVar(&bestStart, "best", false, "start from the highest point of a coarse grid")
	cmd.Flags().Float64Var(&ascent.Step, "step", ascent.Step, "initial difference step")
	cmd.Flags().Float64Var(&ascent.Tolerance, "tol", ascent.Tolerance, "stop once z changes less than this")
	cmd.Flags().IntVar(&ascent.MaxIter, "max-iter", ascent.MaxIter, "iteration limit")
	return cmd
}

func runGradient(cmd *cobra.Command, _ []string) error {
	ac := ascent
	ac.X0, ac.Y0 = startX, startY
	if bestStart {
		grid := optim.Linspace(-5, 5, 21)
		x, y, err := optim.BestStart(cmd.Context(), optim.Wave, grid, grid)
		if err != nil {
			return err
		}
		ac.X0, ac.Y0 = x, y
		logger.Info("grid start", "x", x, "y", y)
	}

	path := optim.Ascend(optim.Wave, ac)
	if !path.Converged {
		logger.Warn("ascent stopped at the iteration limit", "iterations", path.Iterations)
	}
	fmt.Println(path.Summary())

	cmap, err := export.LookupColormap("cividis")
	if err != nil {
		return err
	}
	pts := make(plotter.XYs, len(path.X))
	for i := range path.X {
		pts[i] = plotter.XY{X: path.X[i], Y: path.Y[i]}
	}
	red := color.RGBA{R: 0xff, A: 0xff}

	near := chart.HeatMap(path.Summary(), chart.Sample(optim.Wave, -2, 2, -0.2, 1, 100, 100), cmap)
	wide := chart.HeatMap("sin(x - 9)·sin(y - 5.4)", chart.Sample(optim.Wave, -5, 5, -5, 5, 200, 200), cmap)
	for _, p := range []*plot.Plot{near, wide} {
		if err := chart.Path(p, pts, red, vg.Points(1.5)); err != nil {
			return err
		}
	}
	if err := chart.SaveTiles(gradientOut, [][]*plot.Plot{{near, wide}}, 2*chart.DefaultWidth, chart.DefaultHeight); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", gradientOut)
	return nil
}
