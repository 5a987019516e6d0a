package metrics

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/springview/internal/sim"
)

// Reference measures how far the frame-by-frame Euler spring strays from the
// closed-form damped oscillator with the same stiffness and damping ratio.
// It reports the largest absolute position difference seen.
type Reference struct {
	name     string
	spring   harmonica.Spring
	started  bool
	pos, vel float64
	maxDev   float64
}

func NewReference(springiness, dampingRatio float64, stepMs int64) *Reference {
	return &Reference{
		name:   "reference_deviation",
		spring: harmonica.NewSpring(float64(stepMs)/1000, math.Sqrt(springiness), dampingRatio),
	}
}

func (r *Reference) Name() string {
	return r.name
}

func (r *Reference) Observe(smp sim.Sample) {
	if !r.started {
		r.started = true
		r.pos, r.vel = smp.Position, smp.Velocity
		return
	}
	r.pos, r.vel = r.spring.Update(r.pos, r.vel, smp.Target)
	if dev := math.Abs(smp.Position - r.pos); dev > r.maxDev {
		r.maxDev = dev
	}
}

// Position is the reference spring's current position.
func (r *Reference) Position() float64 {
	return r.pos
}

func (r *Reference) Value() float64 {
	return r.maxDev
}

func (r *Reference) Reset() {
	r.started = false
	r.pos, r.vel = 0, 0
	r.maxDev = 0
}
