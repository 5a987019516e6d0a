package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/springview/internal/sim"
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

type RunMetadata struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Timestamp    time.Time          `json:"timestamp"`
	Springiness  float64            `json:"springiness"`
	DampingRatio float64            `json:"damping_ratio"`
	Start        float64            `json:"start"`
	Target       float64            `json:"target"`
	StepMs       int64              `json:"step_ms"`
	MaxMs        int64              `json:"max_ms"`
	Steps        int                `json:"steps"`
	RestAt       int64              `json:"rest_at_ms"`
	Metrics      map[string]float64 `json:"metrics"`
}

var traceHeader = []string{"t_ms", "position", "velocity", "target"}

func newMetadata(name string, sc sim.Scenario, result *sim.Result) RunMetadata {
	now := time.Now()
	return RunMetadata{
		ID:           fmt.Sprintf("%s_%d", name, now.UnixNano()),
		Name:         name,
		Timestamp:    now,
		Springiness:  sc.Springiness,
		DampingRatio: sc.DampingRatio,
		Start:        sc.Start,
		Target:       sc.Target,
		StepMs:       sc.StepMs,
		MaxMs:        sc.MaxMs,
		Steps:        result.Steps,
		RestAt:       result.RestAt,
		Metrics:      result.Metrics,
	}
}

// Save writes metadata.json and trace.csv into a fresh run directory and
// returns the run id.
func (s *Store) Save(name string, sc sim.Scenario, result *sim.Result) (string, error) {
	meta := newMetadata(name, sc, result)
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
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

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteTrace(csvFile, result.Samples); err != nil {
		return "", err
	}

	log.Debug("run saved", "id", meta.ID, "samples", len(result.Samples))
	return meta.ID, nil
}

// WriteTrace writes samples as CSV with a header row.
func WriteTrace(out io.Writer, samples []sim.Sample) error {
	w := csv.NewWriter(out)
	if err := w.Write(traceHeader); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			strconv.FormatInt(smp.Time, 10),
			strconv.FormatFloat(smp.Position, 'f', 6, 64),
			strconv.FormatFloat(smp.Velocity, 'f', 6, 64),
			strconv.FormatFloat(smp.Target, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			log.Debug("skipping run", "dir", entry.Name(), "err", err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]sim.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadTrace(file)
}

// ReadTrace parses a trace written by WriteTrace. Malformed rows are skipped.
func ReadTrace(in io.Reader) ([]sim.Sample, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(traceHeader) {
			continue
		}
		t, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			continue
		}
		vals := make([]float64, 3)
		ok := true
		for j := range vals {
			if vals[j], err = strconv.ParseFloat(record[j+1], 64); err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		samples = append(samples, sim.Sample{Time: t, Position: vals[0], Velocity: vals[1], Target: vals[2]})
	}
	return samples, nil
}
