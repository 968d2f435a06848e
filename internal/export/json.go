package export

import (
	"encoding/json"
	"io"
	"os"
)

// Trajectory is the JSON form of an integrated attractor run.
type Trajectory struct {
	System     string      `json:"system"`
	Integrator string      `json:"integrator"`
	Span       [2]float64  `json:"span"`
	Steps      int         `json:"steps"`
	Times      []float64   `json:"times"`
	States     [][]float64 `json:"states"`
}

func EncodeTrajectory(w io.Writer, t Trajectory) error {
	t.Steps = len(t.Times)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

// WriteTrajectory writes t to path, or to stdout when path is "-".
func WriteTrajectory(path string, t Trajectory) error {
	if path == "-" {
		return EncodeTrajectory(os.Stdout, t)
	}
	return writeFile(path, func(f *os.File) error {
		return EncodeTrajectory(f, t)
	})
}
