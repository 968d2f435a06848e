package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mathmodel/internal/fractal"
)

const (
	DefaultWidth      = 1000
	DefaultHeight     = 500
	DefaultIterations = 100
	DefaultColormap   = "inferno"
	DefaultDataDir    = ".mathmodel"
	DefaultLogLevel   = "info"
	DefaultTolerance  = 1e-6
)

type Config struct {
	Fractal   FractalConfig   `yaml:"fractal"`
	Animation AnimationConfig `yaml:"animation"`
	Attractor AttractorConfig `yaml:"attractor"`
	LogLevel  string          `yaml:"log_level"`
	DataDir   string          `yaml:"data_dir"`
}

// FractalConfig describes one still image. Name is an escape-time rule or
// "lyapunov".
type FractalConfig struct {
	Name        string           `yaml:"name"`
	Width       int              `yaml:"width"`
	Height      int              `yaml:"height"`
	Iterations  int              `yaml:"iterations"`
	Bailout     float64          `yaml:"bailout"`
	CRe         float64          `yaml:"c_re"`
	CIm         float64          `yaml:"c_im"`
	Viewport    fractal.Viewport `yaml:"viewport"`
	Colormap    string           `yaml:"colormap"`
	Sequence    string           `yaml:"sequence"`
	Workers     int              `yaml:"workers"`
	RowsPerTask int              `yaml:"rows_per_task"`
}

// C is the fixed constant of parameter-family rules.
func (f FractalConfig) C() complex128 { return complex(f.CRe, f.CIm) }

// AnimationConfig describes the rotating Julia animation: frame i uses
// c = Radius·e^(iθ) with θ spread evenly over [0, 2π].
type AnimationConfig struct {
	Frames     int              `yaml:"frames"`
	Width      int              `yaml:"width"`
	Height     int              `yaml:"height"`
	Iterations int              `yaml:"iterations"`
	Bailout    float64          `yaml:"bailout"`
	Radius     float64          `yaml:"radius"`
	Viewport   fractal.Viewport `yaml:"viewport"`
	Delay      int              `yaml:"delay"` // hundredths of a second
}

type AttractorConfig struct {
	System     string             `yaml:"system"`
	Span       [2]float64         `yaml:"span"`
	Initial    []float64          `yaml:"initial"`
	Tolerance  float64            `yaml:"tolerance"`
	EulerSteps int                `yaml:"euler_steps"`
	Params     map[string]float64 `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	attractor := AttractorPresets["rossler"]
	attractor.Initial = append([]float64(nil), attractor.Initial...)
	return &Config{
		Fractal:   FractalPresets["julia"],
		Animation: AnimationPresets["julia-anim"],
		Attractor: attractor,
		LogLevel:  DefaultLogLevel,
		DataDir:   DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
