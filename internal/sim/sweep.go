package sim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sweep runs the base scenario once per damping ratio, concurrently. Each run
// owns its own spring and metrics, built by newMetrics.
type Sweep struct {
	base       Scenario
	newMetrics func() []Metric
}

func NewSweep(base Scenario, newMetrics func() []Metric) *Sweep {
	return &Sweep{base: base, newMetrics: newMetrics}
}

// Run returns one result per ratio, in the order given.
func (sw *Sweep) Run(ctx context.Context, ratios []float64) ([]*Result, error) {
	results := make([]*Result, len(ratios))

	g, ctx := errgroup.WithContext(ctx)
	for i, ratio := range ratios {
		i, ratio := i, ratio
		g.Go(func() error {
			sc := sw.base
			sc.DampingRatio = ratio

			s := New()
			if sw.newMetrics != nil {
				for _, m := range sw.newMetrics() {
					s.AddMetric(m)
				}
			}

			r, err := s.Run(ctx, sc)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
