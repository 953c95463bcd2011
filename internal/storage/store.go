// Package storage persists benchmark runs under a data directory so past
// measurements can be listed, plotted, and exported.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/dispatchbench/internal/bench"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// ResultRecord is the persisted form of one repetition's result. Rate
// counters are stored already resolved to per-second values.
type ResultRecord struct {
	Name       string             `json:"name"`
	Repetition int                `json:"repetition"`
	Iterations int                `json:"iterations"`
	ElapsedMs  float64            `json:"elapsed_ms"`
	Counters   map[string]float64 `json:"counters"`
	Label      string             `json:"label"`
}

type RunMetadata struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Results   []ResultRecord `json:"results"`
}

// ToRecord converts a harness result into its persisted form.
func ToRecord(r bench.Result) ResultRecord {
	counters := make(map[string]float64, len(r.Counters))
	for name := range r.Counters {
		counters[name] = r.CounterValue(name)
	}
	return ResultRecord{
		Name:       r.Name,
		Repetition: r.Repetition,
		Iterations: r.Iterations,
		ElapsedMs:  float64(r.Elapsed) / float64(time.Millisecond),
		Counters:   counters,
		Label:      r.Label,
	}
}

// Save writes one run: metadata.json with every result, and samples.csv
// with the per-repetition elapsed times. Returns the run id.
func (s *Store) Save(results []bench.Result) (string, error) {
	runID := fmt.Sprintf("bench_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Results:   make([]ResultRecord, 0, len(results)),
	}
	for _, r := range results {
		meta.Results = append(meta.Results, ToRecord(r))
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"benchmark", "repetition", "elapsed_ms"}); err != nil {
		return "", err
	}
	for _, r := range results {
		row := []string{
			r.Name,
			strconv.Itoa(r.Repetition),
			strconv.FormatFloat(float64(r.Elapsed)/float64(time.Millisecond), 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s not found: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples returns the per-repetition elapsed milliseconds for each
// benchmark in a run, in repetition order.
func (s *Store) LoadSamples(runID string) (map[string][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, fmt.Errorf("run %s has no samples: %w", runID, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	samples := make(map[string][]float64)
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}
		ms, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("bad sample row %d: %w", i, err)
		}
		samples[row[0]] = append(samples[row[0]], ms)
	}
	return samples, nil
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
