package main

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/mathmodel/internal/chart"
	"github.com/san-kum/mathmodel/internal/export"
	"github.com/san-kum/mathmodel/internal/spatial"
	"github.com/san-kum/mathmodel/internal/viz"
)

var (
	graphName  string
	imagePath  string
	threshold  uint8
	spatialOut string
	samples    int
	seed       int64
)

func spatialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spatial",
		Short: "trace a shape from an image and build plane, sphere and solid graphs",
		RunE:  runSpatial,
	}
	cmd.Flags().StringVarP(&graphName, "graph", "g", "frame-plane-2d",
		fmt.Sprintf("graph name (available ones: %s)", strings.Join(spatial.GraphNames(), ", ")))
	cmd.Flags().StringVar(&imagePath, "image", "images/shape.png", "image holding the shape")
	cmd.Flags().Uint8Var(&threshold, "threshold", 200, "foreground threshold")
	cmd.Flags().StringVarP(&spatialOut, "output", "o", "", "output file (PNG for 2D graphs, OBJ otherwise)")
	cmd.Flags().IntVar(&samples, "samples", spatial.DefaultSamples, "random interior points of sphere surfaces")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&preview, "preview", false, "draw 3D graphs in the terminal")
	return cmd
}

func runSpatial(cmd *cobra.Command, _ []string) error {
	opts := spatial.DefaultGraphOptions()
	opts.Samples = samples
	opts.Rand = rand.New(rand.NewSource(seed))

	fig, err := spatial.Build(graphName, spatial.ImageSource(imagePath, threshold), opts)
	if errors.Is(err, spatial.ErrUnknownGraph) {
		return unknown("graph", graphName, spatial.GraphNames())
	}
	if err != nil {
		return err
	}

	out := spatialOut
	if !fig.Is3D() {
		if out == "" {
			out = filepath.Join("images", fig.Name+".png")
		}
		if err := planePNG(fig, out); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d points)\n", out, len(fig.Plane))
		return nil
	}

	if out == "" {
		out = filepath.Join("images", fig.Name+".obj")
	}
	objs := fig.Objects()
	if err := export.WriteOBJ(out, objs...); err != nil {
		return err
	}
	logger.Debug("figure written", "graph", fig.Name, "objects", len(objs), "meshes", len(fig.Meshes), "lines", len(fig.Lines))
	fmt.Printf("wrote %s (%d objects)\n", out, len(objs))

	if preview {
		c := viz.NewCanvas(60, 20)
		viz.Draw(c, viz.FigureWireframe(fig), viz.NewCamera())
		fmt.Print(c.String())
	}
	return nil
}

// planePNG draws the outline in red with equal axis scales.
func planePNG(fig *spatial.Figure, path string) error {
	pts := make(plotter.XYs, len(fig.Plane))
	for i, p := range fig.Plane {
		// image rows grow downwards
		pts[i] = plotter.XY{X: p[0], Y: -p[1]}
	}
	p := chart.New(fig.Name, "", "")
	if err := chart.Path(p, pts, color.RGBA{R: 0xff, A: 0xff}, vg.Points(1)); err != nil {
		return err
	}
	b := fig.Plane.Bound()
	w := chart.DefaultHeight * vg.Length(b.Max[0]-b.Min[0]+1) / vg.Length(b.Max[1]-b.Min[1]+1)
	return chart.Save(p, path, max(w, vg.Inch), chart.DefaultHeight)
}
