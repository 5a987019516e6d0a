package sim

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/san-kum/springview/internal/anim"
	"github.com/san-kum/springview/internal/dynamo"
)

type Simulator struct {
	metrics   []Metric
	observers []Observer
}

func New() *Simulator {
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run drives one spring frame by frame until it comes to rest after its last
// retarget, or until MaxMs of simulated time have passed.
func (s *Simulator) Run(ctx context.Context, sc Scenario) (*Result, error) {
	if err := validateScenario(sc); err != nil {
		return nil, err
	}

	d, err := dynamo.New(sc.Springiness, sc.DampingRatio)
	if err != nil {
		return nil, err
	}

	retargets := append([]Retarget(nil), sc.Retargets...)
	sort.SliceStable(retargets, func(i, j int) bool { return retargets[i].At < retargets[j].At })

	clock := anim.NewManualClock(0)
	d.SetPosition(sc.Start, 0)
	d.SetVelocity(sc.Velocity, 0)
	d.SetTargetPosition(sc.Target, 0)

	steps := int(sc.MaxMs / sc.StepMs)
	result := &Result{
		Samples: make([]Sample, 0, steps+1),
		RestAt:  -1,
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.observe(result, sample(d, 0))

	next := 0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		now := clock.Advance(sc.StepMs)
		for next < len(retargets) && retargets[next].At <= now {
			d.SetTargetPosition(retargets[next].Target, now)
			log.Debug("retarget", "t", now, "target", retargets[next].Target)
			next++
		}

		d.Update(now)
		result.Steps++
		s.observe(result, sample(d, now))

		if next == len(retargets) && d.IsAtRest() {
			result.RestAt = now
			break
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	log.Debug("run finished", "steps", result.Steps, "rest_at", result.RestAt)
	return result, nil
}

func (s *Simulator) observe(r *Result, smp Sample) {
	r.Samples = append(r.Samples, smp)
	for _, m := range s.metrics {
		m.Observe(smp)
	}
	for _, obs := range s.observers {
		obs.OnFrame(smp)
	}
}

func sample(d *dynamo.Dynamics, now int64) Sample {
	return Sample{
		Time:     now,
		Position: d.Position(),
		Velocity: d.Velocity(),
		Target:   d.TargetPosition(),
	}
}

func validateScenario(sc Scenario) error {
	if sc.StepMs <= 0 {
		return fmt.Errorf("step must be positive, got %dms", sc.StepMs)
	}
	if sc.MaxMs < sc.StepMs {
		return fmt.Errorf("duration must cover at least one step, got %dms", sc.MaxMs)
	}
	for _, r := range sc.Retargets {
		if r.At < 0 || r.At > sc.MaxMs {
			return fmt.Errorf("retarget at %dms outside run of %dms", r.At, sc.MaxMs)
		}
	}
	return nil
}
