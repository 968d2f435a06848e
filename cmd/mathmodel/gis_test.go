package main

import (
	"strconv"
	"testing"

	"github.com/san-kum/mathmodel/internal/spatial"
)

func TestGISSamplesDefault(t *testing.T) {
	f := gisCmd().Flags().Lookup("samples")
	if f == nil {
		t.Fatal("gis has no --samples flag")
	}
	if want := strconv.Itoa(spatial.DefaultSamples); f.DefValue != want {
		t.Errorf("--samples default = %s, want %s", f.DefValue, want)
	}
}
