package dynamo

import (
	"fmt"
	"math"
)

const (
	// Tolerance is the threshold below which velocity and displacement count as zero.
	Tolerance = 0.01

	// MaxStep bounds the elapsed time integrated by a single Update, in milliseconds.
	MaxStep = 50
)

// Dynamics is a damped spring pulling a scalar position toward a target.
type Dynamics struct {
	position    float64
	velocity    float64
	target      float64
	springiness float64
	damping     float64
	lastTime    int64
}

// New returns a spring with stiffness springiness and damping derived from
// dampingRatio, where 1 is critical damping.
func New(springiness, dampingRatio float64) (*Dynamics, error) {
	if err := validate(springiness, dampingRatio); err != nil {
		return nil, err
	}
	return &Dynamics{
		springiness: springiness,
		damping:     dampingRatio * 2 * math.Sqrt(springiness),
	}, nil
}

func mustNew(springiness, dampingRatio float64) *Dynamics {
	d, err := New(springiness, dampingRatio)
	if err != nil {
		panic(err)
	}
	return d
}

func validate(springiness, dampingRatio float64) error {
	if math.IsNaN(springiness) || math.IsInf(springiness, 0) || springiness <= 0 {
		return fmt.Errorf("%w: springiness must be positive and finite, got %v", ErrInvalidConfiguration, springiness)
	}
	if math.IsNaN(dampingRatio) || math.IsInf(dampingRatio, 0) || dampingRatio < 0 {
		return fmt.Errorf("%w: damping ratio must be non-negative and finite, got %v", ErrInvalidConfiguration, dampingRatio)
	}
	return nil
}

func (d *Dynamics) touch(now int64) {
	if now > d.lastTime {
		d.lastTime = now
	}
}

// SetPosition snaps the position without touching velocity.
func (d *Dynamics) SetPosition(position float64, now int64) {
	d.position = position
	d.touch(now)
}

func (d *Dynamics) SetVelocity(velocity float64, now int64) {
	d.velocity = velocity
	d.touch(now)
}

// SetTargetPosition redirects the spring. Position and velocity carry over, so
// retargeting mid-flight bends the motion instead of restarting it.
func (d *Dynamics) SetTargetPosition(target float64, now int64) {
	d.target = target
	d.touch(now)
}

// Update advances the spring from the last recorded time to now. At most
// MaxStep milliseconds are integrated per call; a clock that repeated or went
// backward integrates nothing.
func (d *Dynamics) Update(now int64) {
	elapsed := now - d.lastTime
	if elapsed <= 0 {
		return
	}
	if elapsed > MaxStep {
		elapsed = MaxStep
	}
	dt := float64(elapsed) / 1000

	x := d.position - d.target
	acceleration := -d.springiness*x - d.damping*d.velocity

	d.velocity += acceleration * dt
	d.position += d.velocity * dt

	d.lastTime = now
}

// IsAtRest reports whether the spring may stop receiving frames. The
// displacement test is one-sided: a position past the target counts as
// arrived. Use IsSettled for the symmetric check.
func (d *Dynamics) IsAtRest() bool {
	standingStill := math.Abs(d.velocity) < Tolerance
	atTarget := d.target-d.position < Tolerance
	return standingStill && atTarget
}

// IsSettled reports whether the spring is still and within Tolerance of the
// target on either side.
func (d *Dynamics) IsSettled() bool {
	return math.Abs(d.velocity) < Tolerance && math.Abs(d.target-d.position) < Tolerance
}

func (d *Dynamics) Position() float64       { return d.position }
func (d *Dynamics) TargetPosition() float64 { return d.target }
func (d *Dynamics) Velocity() float64       { return d.velocity }
func (d *Dynamics) LastTime() int64         { return d.lastTime }
func (d *Dynamics) Springiness() float64    { return d.springiness }
func (d *Dynamics) Damping() float64        { return d.damping }
