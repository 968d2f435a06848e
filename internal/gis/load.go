package gis

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// Load reads the layer's feature collection from dir.
func (l Layer) Load(dir string) (*geojson.FeatureCollection, error) {
	return ReadCollection(l.Path(dir))
}

func ReadCollection(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layer: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}
