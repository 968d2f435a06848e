// Package storage keeps a directory per recorded run: metadata.json and,
// for integrations, states.csv with one row per stored state.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/mathmodel/internal/dynamo"
)

var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile = "metadata.json"
	statesFile   = "states.csv"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one recorded fractal render or attractor run.
type RunMetadata struct {
	ID         string             `json:"id"`
	Kind       string             `json:"kind"`
	Name       string             `json:"name"`
	Timestamp  time.Time          `json:"timestamp"`
	Integrator string             `json:"integrator,omitempty"`
	Span       [2]float64         `json:"span,omitempty"`
	Params     map[string]float64 `json:"params,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
	Artifacts  []string           `json:"artifacts,omitempty"`
}

// Save records meta under a fresh id and, when result is non-nil, its
// states as CSV. The id and timestamp fields of meta are overwritten.
func (s *Store) Save(meta RunMetadata, result *dynamo.Result) (string, error) {
	meta.Timestamp = s.now()
	meta.ID = fmt.Sprintf("%s_%s_%d", meta.Kind, meta.Name, meta.Timestamp.UnixNano())
	dir := s.runDir(meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, metadataFile), append(data, '\n'), 0644); err != nil {
		return "", err
	}

	if result != nil {
		if err := writeStates(filepath.Join(dir, statesFile), result); err != nil {
			return "", fmt.Errorf("write states: %w", err)
		}
	}
	return meta.ID, nil
}

func (s *Store) runDir(id string) string { return filepath.Join(s.baseDir, id) }

func writeStates(path string, result *dynamo.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if len(result.States) > 0 {
		header := make([]string, 0, len(result.States[0])+1)
		header = append(header, "time")
		for i := range result.States[0] {
			header = append(header, "x"+strconv.Itoa(i))
		}
		w.Write(header)
	}
	for i, state := range result.States {
		row := make([]string, 0, len(state)+1)
		row = append(row, formatFloat(result.Times[i]))
		for _, v := range state {
			row = append(row, formatFloat(v))
		}
		w.Write(row)
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

// List returns every readable run, oldest first. A missing base directory
// holds no runs.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []RunMetadata{}, nil
	}
	if err != nil {
		return nil, err
	}

	runs := []RunMetadata{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if meta, err := s.Load(e.Name()); err == nil {
			runs = append(runs, *meta)
		}
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.runDir(runID), metadataFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, err
	}

	meta := &RunMetadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, fmt.Errorf("decode %s: %w", runID, err)
	}
	return meta, nil
}

// LoadStates reads back the states and times saved with a run. Rows whose
// time does not parse are skipped, as are unparsable components.
func (s *Store) LoadStates(runID string) (states [][]float64, times []float64, err error) {
	f, err := os.Open(filepath.Join(s.runDir(runID), statesFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: no states for %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	states, times = [][]float64{}, []float64{}
	if len(records) < 2 {
		return states, times, nil
	}
	for _, rec := range records[1:] {
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		state := make([]float64, 0, len(rec)-1)
		for _, field := range rec[1:] {
			if v, err := strconv.ParseFloat(field, 64); err == nil {
				state = append(state, v)
			}
		}
		times = append(times, t)
		states = append(states, state)
	}
	return states, times, nil
}
