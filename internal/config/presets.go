package config

import (
	"sort"

	"github.com/san-kum/springview/internal/sim"
)

// Presets mirror the springs the widgets animate with.
var Presets = map[string]*Config{
	"chart": {
		Name: "chart", Springiness: 80, DampingRatio: 0.8,
		Start: 0, Target: 100, StepMs: 20, MaxMs: 5000,
	},
	"chooser": {
		Name: "chooser", Springiness: 120, DampingRatio: 0.8,
		Start: 0, Target: 240, StepMs: 15, MaxMs: 5000,
	},
	"color": {
		Name: "color", Springiness: 50, DampingRatio: 0.8,
		Start: 0, Target: 255, StepMs: 15, MaxMs: 5000,
	},
	"bouncy": {
		Name: "bouncy", Springiness: 120, DampingRatio: 0.3,
		Start: 0, Target: 100, StepMs: 16, MaxMs: 8000,
	},
	"redirect": {
		Name: "redirect", Springiness: 120, DampingRatio: 0.8,
		Start: 0, Target: 240, StepMs: 15, MaxMs: 5000,
		Retargets: []sim.Retarget{{At: 120, Target: 80}},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Retargets = append([]sim.Retarget(nil), p.Retargets...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
