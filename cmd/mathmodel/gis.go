package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/mathmodel/internal/gis"
	"github.com/san-kum/mathmodel/internal/spatial"
)

var (
	noOblastFill bool
	hideRoads    bool
	layersDir    string
	mapOut       string
	mapWidth     float64
	threeD       bool
	gisSamples   int

	cleanupPreset string
	minArea       float64
	tolerance     float64
)

func gisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gis",
		Short: "draw the oblast, city, river and road layers",
		RunE:  runGIS,
	}
	cmd.Flags().BoolVarP(&noOblastFill, "oblasts", "o", false, "do not fill oblasts")
	cmd.Flags().BoolVarP(&hideRoads, "roads", "r", false, "hide roads")
	cmd.Flags().StringVar(&layersDir, "dir", "layers", "directory of <layer>.geojson files")
	cmd.Flags().StringVar(&mapOut, "out", "", "output file (default images/map.png, or images/map.obj with --3d)")
	cmd.Flags().Float64Var(&mapWidth, "width", 10, "map width in inches")
	cmd.Flags().BoolVar(&threeD, "3d", false, "project the layers onto a sphere and write OBJ")
	cmd.Flags().IntVar(&gisSamples, "samples", spatial.DefaultSamples, "random interior points per 3D polygon")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func runGIS(_ *cobra.Command, _ []string) error {
	m := gis.NewMap(layersDir, gis.DefaultLayers(!noOblastFill, !hideRoads), logger.WithPrefix("gis"))

	out := mapOut
	if threeD {
		if out == "" {
			out = "images/map.obj"
		}
		if err := m.Render3D(out, gisSamples, rand.New(rand.NewSource(seed))); err != nil {
			return err
		}
	} else {
		if out == "" {
			out = "images/map.png"
		}
		if err := m.RenderMap(out, vg.Length(mapWidth)*vg.Inch); err != nil {
			return err
		}
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func cleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "drop small features from the layers and write <layer>x.geojson",
		RunE:  runCleanup,
	}
	cmd.Flags().StringVar(&layersDir, "dir", "layers", "directory of <layer>.geojson files")
	cmd.Flags().StringVar(&cleanupPreset, "preset", "rivers", "rivers (area only) or optimize (simplify oblasts and rivers)")
	cmd.Flags().Float64Var(&minArea, "min-area", 0, "minimum geodesic area in square metres (0 keeps the preset's)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "Douglas-Peucker tolerance in degrees (0 keeps the preset's)")
	return cmd
}

func runCleanup(cmd *cobra.Command, _ []string) error {
	var opts gis.CleanupOptions
	switch cleanupPreset {
	case "rivers":
		opts = gis.RiverCleanup()
	case "optimize":
		opts = gis.OptimizeCleanup()
	default:
		return unknown("cleanup preset", cleanupPreset, []string{"optimize", "rivers"})
	}
	if cmd.Flags().Changed("min-area") {
		opts.MinArea = minArea
	}
	if cmd.Flags().Changed("tolerance") {
		opts.Tolerance = tolerance
	}
	opts.Logger = logger.WithPrefix("cleanup")

	results, err := gis.Cleanup(layersDir, opts)
	for _, r := range results {
		fmt.Printf("%-8s %5d -> %5d  %s\n", r.Layer, r.Before, r.After, r.Path)
	}
	return err
}
