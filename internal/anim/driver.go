package anim

import "time"

// Animator is anything advanced once per frame that can tell when it has
// stopped moving.
type Animator interface {
	Update(now int64)
	IsAtRest() bool
}

// Frame is a request to call Tick again after Delay. Gen identifies the frame
// chain it belongs to.
type Frame struct {
	Gen   uint64
	Delay time.Duration
}

// Driver runs the frame loop for a group of animators sharing one cadence.
type Driver struct {
	delay     time.Duration
	gen       uint64
	pending   bool
	animators []Animator
}

func NewDriver(delay time.Duration, animators ...Animator) *Driver {
	return &Driver{delay: delay, animators: animators}
}

func (d *Driver) Add(a Animator) { d.animators = append(d.animators, a) }

func (d *Driver) Delay() time.Duration { return d.delay }

func (d *Driver) Generation() uint64 { return d.gen }

// Pending reports whether a frame chain is live.
func (d *Driver) Pending() bool { return d.pending }

// Restart supersedes any outstanding frame and returns one to post
// immediately.
func (d *Driver) Restart() Frame {
	d.gen++
	d.pending = true
	return Frame{Gen: d.gen}
}

// Cancel drops the live frame chain, if any.
func (d *Driver) Cancel() {
	d.gen++
	d.pending = false
}

// Tick runs one frame at time now. Frames from a superseded chain are
// ignored. The returned frame should be posted only when ok is true.
func (d *Driver) Tick(f Frame, now int64) (Frame, bool) {
	if !d.pending || f.Gen != d.gen {
		return Frame{}, false
	}

	again := false
	for _, a := range d.animators {
		a.Update(now)
		if !a.IsAtRest() {
			again = true
		}
	}

	if !again {
		d.pending = false
		return Frame{}, false
	}
	return Frame{Gen: d.gen, Delay: d.delay}, true
}

// Ticker is anything that advances on a frame and asks for the next one.
// Driver and the widgets built on it satisfy it.
type Ticker interface {
	Tick(f Frame, now int64) (Frame, bool)
}

// RunFrames ticks t against clock until it rests or limit frames have run,
// advancing the clock by each frame's delay. A limit of zero or less runs
// until rest. It returns the number of frames ticked. Useful for headless
// hosts and tests.
func RunFrames(t Ticker, clock *ManualClock, f Frame, limit int) int {
	n := 0
	for ; limit <= 0 || n < limit; n++ {
		next, ok := t.Tick(f, clock.NowMillis())
		if !ok {
			return n + 1
		}
		clock.Advance(next.Delay.Milliseconds())
		f = next
	}
	return n
}
