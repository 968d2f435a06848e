package gis

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
)

// CleanupOptions controls which features survive a cleanup pass.
type CleanupOptions struct {
	Layers []string
	// MinArea is the geodesic area threshold in square metres.
	MinArea float64
	// Tolerance enables Douglas-Peucker simplification (in degrees) when
	// positive. Areas are measured after simplification.
	Tolerance float64
	// Whitelist keeps features by id regardless of area.
	Whitelist []string
	Logger    *log.Logger
}

// RiverCleanup drops river features under one square kilometre.
func RiverCleanup() CleanupOptions {
	return CleanupOptions{Layers: []string{"rivers"}, MinArea: 1e6}
}

// OptimizeCleanup simplifies oblasts and rivers and keeps features over
// 15 km² plus the two whitelisted relations.
func OptimizeCleanup() CleanupOptions {
	return CleanupOptions{
		Layers:    []string{"oblasts", "rivers"},
		MinArea:   15e6,
		Tolerance: 0.008,
		Whitelist: []string{"relation/2081686", "relation/7388499"},
	}
}

// CleanupResult reports what happened to one layer.
type CleanupResult struct {
	Layer  string
	Path   string
	Before int
	After  int
}

// Filter applies opts to fc in place.
func Filter(fc *geojson.FeatureCollection, opts CleanupOptions) {
	keep := make(map[string]bool, len(opts.Whitelist))
	for _, id := range opts.Whitelist {
		keep[id] = true
	}
	var dp *simplify.DouglasPeuckerSimplifier
	if opts.Tolerance > 0 {
		dp = simplify.DouglasPeucker(opts.Tolerance)
	}

	features := fc.Features[:0]
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		if dp != nil {
			f.Geometry = simplified(dp, f.Geometry)
		}
		if geo.Area(f.Geometry) >= opts.MinArea || (f.ID != nil && keep[fmt.Sprint(f.ID)]) {
			features = append(features, f)
		}
	}
	fc.Features = features
}

// Cleanup filters every configured layer in dir and writes <name>x.geojson
// next to the source, indented by two spaces.
func Cleanup(dir string, opts CleanupOptions) ([]CleanupResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var results []CleanupResult
	for _, name := range opts.Layers {
		fc, err := ReadCollection(filepath.Join(dir, name+".geojson"))
		if err != nil {
			return results, fmt.Errorf("layer %s: %w", name, err)
		}
		before := len(fc.Features)
		Filter(fc, opts)

		data, err := json.MarshalIndent(fc, "", "  ")
		if err != nil {
			return results, fmt.Errorf("encode %s: %w", name, err)
		}
		out := filepath.Join(dir, name+"x.geojson")
		if err := os.WriteFile(out, data, 0644); err != nil {
			return results, fmt.Errorf("write %s: %w", out, err)
		}
		logger.Info("layer cleaned", "layer", name, "before", before, "after", len(fc.Features), "out", out)
		results = append(results, CleanupResult{Layer: name, Path: out, Before: before, After: len(fc.Features)})
	}
	return results, nil
}

// simplified keeps the original geometry when simplification collapses it.
func simplified(dp *simplify.DouglasPeuckerSimplifier, g orb.Geometry) orb.Geometry {
	s := dp.Simplify(orb.Clone(g))
	if s == nil || (geo.Area(s) == 0 && geo.Area(g) > 0) {
		return g
	}
	return s
}
