package config

import (
	"fmt"
	"os"

	"github.com/san-kum/springview/internal/dynamo"
	"github.com/san-kum/springview/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSpringiness  = 80.0
	DefaultDampingRatio = 0.8
	DefaultTarget       = 100.0
	DefaultStepMs       = 16
	DefaultMaxMs        = 5000
)

type Config struct {
	Name         string         `yaml:"name"`
	Springiness  float64        `yaml:"springiness"`
	DampingRatio float64        `yaml:"damping_ratio"`
	Start        float64        `yaml:"start"`
	Target       float64        `yaml:"target"`
	Velocity     float64        `yaml:"velocity"`
	StepMs       int64          `yaml:"step_ms"`
	MaxMs        int64          `yaml:"max_ms"`
	Retargets    []sim.Retarget `yaml:"retargets,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:         "spring",
		Springiness:  DefaultSpringiness,
		DampingRatio: DefaultDampingRatio,
		Target:       DefaultTarget,
		StepMs:       DefaultStepMs,
		MaxMs:        DefaultMaxMs,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Validate checks the spring coefficients and the frame cadence.
func (c *Config) Validate() error {
	if _, err := dynamo.New(c.Springiness, c.DampingRatio); err != nil {
		return err
	}
	if c.StepMs <= 0 {
		return fmt.Errorf("step_ms must be positive, got %d", c.StepMs)
	}
	if c.MaxMs < c.StepMs {
		return fmt.Errorf("max_ms must be at least step_ms, got %d", c.MaxMs)
	}
	return nil
}

func (c *Config) Scenario() sim.Scenario {
	return sim.Scenario{
		Springiness:  c.Springiness,
		DampingRatio: c.DampingRatio,
		Start:        c.Start,
		Target:       c.Target,
		Velocity:     c.Velocity,
		StepMs:       c.StepMs,
		MaxMs:        c.MaxMs,
		Retargets:    append([]sim.Retarget(nil), c.Retargets...),
	}
}
