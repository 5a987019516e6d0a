package metrics

import (
	"math"

	"github.com/san-kum/springview/internal/dynamo"
	"github.com/san-kum/springview/internal/sim"
)

// SettleTime reports the time, in milliseconds, from which every observed
// sample stayed within dynamo.Tolerance of its target on both sides, or -1 if
// the run never settled.
type SettleTime struct {
	name  string
	since int64
}

func NewSettleTime() *SettleTime {
	return &SettleTime{
		name:  "settle_ms",
		since: -1,
	}
}

func (s *SettleTime) Name() string {
	return s.name
}

func (s *SettleTime) Observe(smp sim.Sample) {
	settled := math.Abs(smp.Target-smp.Position) < dynamo.Tolerance && math.Abs(smp.Velocity) < dynamo.Tolerance
	switch {
	case !settled:
		s.since = -1
	case s.since < 0:
		s.since = smp.Time
	}
}

func (s *SettleTime) Value() float64 {
	return float64(s.since)
}

func (s *SettleTime) Reset() {
	s.since = -1
}
