package metrics

import (
	"math"

	"github.com/san-kum/springview/internal/sim"
)

// Overshoot is the largest excursion past the target, as a fraction of the
// distance the spring set out to travel. A retarget starts a new leg measured
// from the position at that moment.
type Overshoot struct {
	name    string
	started bool
	origin  float64
	target  float64
	peak    float64
}

func NewOvershoot() *Overshoot {
	return &Overshoot{
		name: "overshoot",
	}
}

func (o *Overshoot) Name() string {
	return o.name
}

func (o *Overshoot) Observe(smp sim.Sample) {
	if !o.started || smp.Target != o.target {
		o.started = true
		o.origin = smp.Position
		o.target = smp.Target
		return
	}

	gap := o.target - o.origin
	if gap == 0 {
		return
	}
	past := (smp.Position - o.target) / math.Abs(gap)
	if gap < 0 {
		past = -past
	}
	if past > o.peak {
		o.peak = past
	}
}

func (o *Overshoot) Value() float64 {
	return o.peak
}

func (o *Overshoot) Reset() {
	o.started = false
	o.origin = 0
	o.target = 0
	o.peak = 0
}
