package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/san-kum/mathmodel/internal/analysis"
	"github.com/san-kum/mathmodel/internal/attractor"
	"github.com/san-kum/mathmodel/internal/chart"
	"github.com/san-kum/mathmodel/internal/config"
	"github.com/san-kum/mathmodel/internal/dynamo"
	"github.com/san-kum/mathmodel/internal/export"
	"github.com/san-kum/mathmodel/internal/integrators"
	"github.com/san-kum/mathmodel/internal/storage"
	"github.com/san-kum/mathmodel/internal/viz"
)

var (
	systemName string
	panelsOut  string
	svgOut     string
	jsonOut    string
	preview    bool
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

func attractorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attractor",
		Short: "integrate a strange attractor with four methods",
		Long: "Integrates the system with RK23, RK45, RK4 and Euler, draws the x-y\n" +
			"projections side by side and records the RK45 run.\n\nSystems:\n" + attractorList(),
		RunE: runAttractor,
	}
	cmd.Flags().StringVarP(&systemName, "system", "f", "rossler", "attractor name")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVarP(&panelsOut, "output", "o", "images/attractor.png", "output PNG of the projections")
	cmd.Flags().StringVar(&svgOut, "svg", "", "also write the RK45 x-y projection as SVG")
	cmd.Flags().StringVar(&jsonOut, "json", "", "also write the RK45 trajectory as JSON (- for stdout)")
	cmd.Flags().BoolVar(&preview, "preview", false, "draw the RK45 trajectory in the terminal")
	cmd.Flags().StringVar(&sweepParam, "sweep", "", "sweep this parameter and plot the x peaks")
	cmd.Flags().Float64Var(&sweepMin, "sweep-min", 2, "sweep start")
	cmd.Flags().Float64Var(&sweepMax, "sweep-max", 6, "sweep end")
	cmd.Flags().IntVar(&sweepSteps, "sweep-steps", 60, "sweep samples")
	return cmd
}

func attractorList() string {
	var b strings.Builder
	for _, name := range attractor.Names() {
		fmt.Fprintf(&b, "  %-10s %s\n", name, attractor.Summary(name))
	}
	return b.String()
}

func runAttractor(cmd *cobra.Command, _ []string) error {
	ac := cfg.Attractor
	if preset != "" {
		p := config.GetPreset("attractor", preset)
		if p == nil {
			return unknown("preset", preset, config.ListPresets("attractor"))
		}
		ac = p.Attractor
	}
	if cmd.Flags().Changed("system") {
		ac.System, ac.Params = systemName, nil
	}

	sys, err := attractor.Lookup(ac.System)
	if err != nil {
		return unknown("attractor", ac.System, attractor.Names())
	}
	for name, v := range ac.Params {
		if err := sys.SetParam(name, v); err != nil {
			return err
		}
	}
	x0 := dynamo.State(ac.Initial)
	if len(x0) != sys.StateDim() {
		return fmt.Errorf("%w: %d initial values for a %d-dimensional system", dynamo.ErrDimensionMismatch, len(x0), sys.StateDim())
	}

	runs := attractor.Panels(ac.Span, ac.Tolerance)
	if ac.EulerSteps > 1 {
		runs[len(runs)-1].Config = attractor.EulerConfig(ac.Span, ac.EulerSteps)
	}

	logger.Info("integrating", "system", ac.System, "span", ac.Span, "methods", len(runs))
	start := time.Now()
	results, err := dynamo.NewEnsemble(sys, runs...).Run(cmd.Context(), x0)
	if err != nil {
		return err
	}
	for i, res := range results {
		logger.Debug("integrated", "method", runs[i].Name, "steps", res.StepsTaken, "rejected", res.Rejected)
	}

	plots := make([][]*plot.Plot, 2)
	for i, res := range results {
		p, err := chart.Lines(runs[i].Name, chart.XY("", res.Component(0), res.Component(1)))
		if err != nil {
			return err
		}
		plots[i/2] = append(plots[i/2], p)
	}
	if err := chart.SaveTiles(panelsOut, plots, 2*chart.DefaultWidth, 2*chart.DefaultHeight); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", panelsOut)

	reference := results[1]
	artifacts := []string{panelsOut}
	if svgOut != "" {
		pts := make([]export.Point, len(reference.States))
		for i, s := range reference.States {
			pts[i] = export.Point{X: s[0], Y: s[1]}
		}
		if err := export.WriteSVG(svgOut, pts, 800, 800, "#1f77b4"); err != nil {
			return err
		}
		artifacts = append(artifacts, svgOut)
		fmt.Printf("wrote %s\n", svgOut)
	}
	if jsonOut != "" {
		states := make([][]float64, len(reference.States))
		for i, s := range reference.States {
			states[i] = s
		}
		err := export.WriteTrajectory(jsonOut, export.Trajectory{
			System: ac.System, Integrator: "rk45", Span: ac.Span,
			Times: reference.Times, States: states,
		})
		if err != nil {
			return err
		}
		if jsonOut != "-" {
			artifacts = append(artifacts, jsonOut)
		}
	}

	lambda := analysis.LyapunovExponent(sys, integrators.NewRK4(), x0, 0.01, ac.Span[1]-ac.Span[0], 1e-8)
	fmt.Printf("largest lyapunov exponent: %.4f\n", lambda)

	if preview {
		c := viz.NewCanvas(60, 20)
		viz.Draw(c, viz.TrajectoryWireframe(reference.States, 1), viz.NewCamera())
		fmt.Print(c.String())
		fmt.Println(asciigraph.Plot(reference.Component(0),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("x(t), rk45"),
		))
	}

	if sweepParam != "" {
		points, err := analysis.Sweep(sys, integrators.NewRK4(), x0, analysis.SweepConfig{
			Param: sweepParam, Min: sweepMin, Max: sweepMax, Steps: sweepSteps,
			Component: 0, Dt: 0.01, Transient: 100, Record: 100,
		})
		if err != nil {
			return err
		}
		fmt.Println(analysis.SweepToASCII(points, 80, 20))
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	params := sys.Params()
	runID, err := st.Save(storage.RunMetadata{
		Kind:       "attractor",
		Name:       ac.System,
		Integrator: "rk45",
		Span:       ac.Span,
		Params:     params,
		Metrics: map[string]float64{
			"lyapunov": lambda,
			"steps":    float64(reference.StepsTaken),
			"rejected": float64(reference.Rejected),
			"seconds":  time.Since(start).Seconds(),
		},
		Artifacts: artifacts,
	}, reference)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}
