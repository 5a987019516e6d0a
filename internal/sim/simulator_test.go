package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/springview/internal/dynamo"
)

func chartScenario() Scenario {
	return Scenario{
		Springiness:  80,
		DampingRatio: 0.8,
		Start:        0,
		Target:       100,
		StepMs:       20,
		MaxMs:        10000,
	}
}

func TestSimulatorRun(t *testing.T) {
	s := New()
	result, err := s.Run(context.Background(), chartScenario())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !result.Rested() {
		t.Fatal("expected spring to come to rest")
	}
	if len(result.Samples) != result.Steps+1 {
		t.Errorf("expected %d samples, got %d", result.Steps+1, len(result.Samples))
	}
	last := result.Samples[len(result.Samples)-1]
	if last.Time != result.RestAt {
		t.Errorf("last sample at %d, rest at %d", last.Time, result.RestAt)
	}
	if math.Abs(last.Position-100) > 2 {
		t.Errorf("final position %.4f, want about 100", last.Position)
	}
	if result.Samples[0].Position != 0 || result.Samples[0].Time != 0 {
		t.Errorf("first sample should be the initial state, got %+v", result.Samples[0])
	}
}

func TestSimulatorRetarget(t *testing.T) {
	sc := chartScenario()
	sc.Retargets = []Retarget{{At: 500, Target: 30}, {At: 200, Target: 150}}

	result, err := New().Run(context.Background(), sc)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, smp := range result.Samples {
		want := 100.0
		switch {
		case smp.Time >= 500:
			want = 30
		case smp.Time >= 200:
			want = 150
		}
		if smp.Target != want {
			t.Fatalf("t=%d target %.1f, want %.1f", smp.Time, smp.Target, want)
		}
	}
	if result.RestAt < 500 {
		t.Errorf("run rested at %d before the last retarget", result.RestAt)
	}
}

func TestSimulatorTimesOut(t *testing.T) {
	sc := chartScenario()
	sc.MaxMs = 100

	result, err := New().Run(context.Background(), sc)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Rested() {
		t.Error("spring cannot rest within 100ms")
	}
	if result.Steps != 5 {
		t.Errorf("expected 5 steps, got %d", result.Steps)
	}
}

func TestSimulatorInvalidScenario(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"zero step", func(s *Scenario) { s.StepMs = 0 }},
		{"negative step", func(s *Scenario) { s.StepMs = -16 }},
		{"duration below step", func(s *Scenario) { s.MaxMs = 10 }},
		{"retarget after end", func(s *Scenario) { s.Retargets = []Retarget{{At: 20000, Target: 1}} }},
		{"zero springiness", func(s *Scenario) { s.Springiness = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := chartScenario()
			tt.mutate(&sc)
			if _, err := New().Run(context.Background(), sc); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	sc := chartScenario()
	sc.Springiness = -1
	if _, err := New().Run(context.Background(), sc); !errors.Is(err, dynamo.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestSimulatorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New().Run(ctx, chartScenario())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result == nil || len(result.Samples) != 1 {
		t.Error("expected partial result with the initial sample")
	}
}

type testMetric struct {
	count int
	peak  float64
}

func (t *testMetric) Name() string { return "test" }
func (t *testMetric) Observe(s Sample) {
	t.count++
	t.peak = math.Max(t.peak, s.Position)
}
func (t *testMetric) Value() float64 { return t.peak }
func (t *testMetric) Reset() {
	t.count = 0
	t.peak = 0
}

type countingObserver struct{ frames int }

func (c *countingObserver) OnFrame(Sample) { c.frames++ }

func TestSimulatorMetrics(t *testing.T) {
	s := New()
	metric := &testMetric{}
	obs := &countingObserver{}
	s.AddMetric(metric)
	s.AddObserver(obs)

	result, err := s.Run(context.Background(), chartScenario())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, ok := result.Metrics["test"]; !ok {
		t.Error("metric not found in result")
	}
	if metric.count != len(result.Samples) || obs.frames != len(result.Samples) {
		t.Errorf("expected %d observations, got metric=%d observer=%d", len(result.Samples), metric.count, obs.frames)
	}
	if result.Metrics["test"] <= 99 {
		t.Errorf("peak %.3f never reached the target", result.Metrics["test"])
	}
}

func TestSweep(t *testing.T) {
	ratios := []float64{0.3, 0.8, 1.0}
	sw := NewSweep(chartScenario(), func() []Metric { return []Metric{&testMetric{}} })

	results, err := sw.Run(context.Background(), ratios)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != len(ratios) {
		t.Fatalf("expected %d results, got %d", len(ratios), len(results))
	}
	if results[0].Metrics["test"] <= results[2].Metrics["test"] {
		t.Errorf("lighter damping should overshoot more: %.3f vs %.3f", results[0].Metrics["test"], results[2].Metrics["test"])
	}

	bad := chartScenario()
	bad.StepMs = 0
	if _, err := NewSweep(bad, nil).Run(context.Background(), ratios); err == nil {
		t.Error("expected error from invalid base scenario")
	}
}
