package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/springview/internal/sim"
)

type ExportData struct {
	Name         string             `json:"name"`
	Springiness  float64            `json:"springiness"`
	DampingRatio float64            `json:"damping_ratio"`
	StepMs       int64              `json:"step_ms"`
	Steps        int                `json:"steps"`
	RestAt       int64              `json:"rest_at_ms"`
	Samples      []sim.Sample       `json:"samples"`
	Metrics      map[string]float64 `json:"metrics"`
}

func newExport(name string, sc sim.Scenario, result *sim.Result) ExportData {
	return ExportData{
		Name:         name,
		Springiness:  sc.Springiness,
		DampingRatio: sc.DampingRatio,
		StepMs:       sc.StepMs,
		Steps:        result.Steps,
		RestAt:       result.RestAt,
		Samples:      result.Samples,
		Metrics:      result.Metrics,
	}
}

func ExportJSON(path, name string, sc sim.Scenario, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return EncodeJSON(file, name, sc, result)
}

func EncodeJSON(w io.Writer, name string, sc sim.Scenario, result *sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExport(name, sc, result))
}

func ExportCSV(path string, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteTrace(file, result.Samples)
}
