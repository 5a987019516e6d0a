package sim

// Sample is the spring state observed after one frame.
type Sample struct {
	Time     int64   `json:"t_ms"`
	Position float64 `json:"position"`
	Velocity float64 `json:"velocity"`
	Target   float64 `json:"target"`
}

// Retarget moves the spring's target at a given time into the run.
type Retarget struct {
	At     int64   `json:"at_ms" yaml:"at_ms"`
	Target float64 `json:"target" yaml:"target"`
}

// Scenario describes one spring run on a fixed frame cadence.
type Scenario struct {
	Springiness  float64
	DampingRatio float64
	Start        float64
	Target       float64
	Velocity     float64
	StepMs       int64
	MaxMs        int64
	Retargets    []Retarget
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(s Sample)
}

type Result struct {
	Samples []Sample
	RestAt  int64
	Steps   int
	Metrics map[string]float64
}

// Rested reports whether the run ended with the spring at rest rather than
// by running out of time.
func (r *Result) Rested() bool { return r.RestAt >= 0 }
