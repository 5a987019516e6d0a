package anim

import (
	"testing"
	"time"

	"github.com/san-kum/springview/internal/dynamo"
)

type countingAnimator struct {
	updates   int
	restAfter int
	lastNow   int64
}

func (c *countingAnimator) Update(now int64) {
	c.updates++
	c.lastNow = now
}

func (c *countingAnimator) IsAtRest() bool { return c.updates >= c.restAfter }

func TestDriver_RunsUntilRest(t *testing.T) {
	a := &countingAnimator{restAfter: 3}
	d := NewDriver(20*time.Millisecond, a)

	f := d.Restart()
	if f.Delay != 0 {
		t.Errorf("first frame delay = %v, want immediate", f.Delay)
	}

	next, ok := d.Tick(f, 0)
	if !ok || next.Delay != 20*time.Millisecond {
		t.Fatalf("expected follow-up frame, got %+v ok=%v", next, ok)
	}
	next, ok = d.Tick(next, 20)
	if !ok {
		t.Fatal("expected third frame")
	}
	if _, ok = d.Tick(next, 40); ok {
		t.Error("expected chain to stop at rest")
	}
	if d.Pending() {
		t.Error("driver still pending after rest")
	}
	if a.updates != 3 || a.lastNow != 40 {
		t.Errorf("updates=%d lastNow=%d", a.updates, a.lastNow)
	}
}

func TestDriver_StaleFrameIgnored(t *testing.T) {
	a := &countingAnimator{restAfter: 100}
	d := NewDriver(15*time.Millisecond, a)

	old := d.Restart()
	next, _ := d.Tick(old, 0)

	fresh := d.Restart()
	if fresh.Gen == next.Gen {
		t.Fatal("restart should start a new generation")
	}

	if _, ok := d.Tick(next, 15); ok {
		t.Error("stale frame should not reschedule")
	}
	if a.updates != 1 {
		t.Errorf("stale frame updated animators: %d updates", a.updates)
	}

	if _, ok := d.Tick(fresh, 15); !ok {
		t.Error("fresh frame should run")
	}
}

func TestDriver_Cancel(t *testing.T) {
	a := &countingAnimator{restAfter: 100}
	d := NewDriver(15*time.Millisecond, a)

	f := d.Restart()
	d.Cancel()
	if d.Pending() {
		t.Error("cancelled driver still pending")
	}
	if _, ok := d.Tick(f, 0); ok || a.updates != 0 {
		t.Error("cancelled frame ran")
	}
}

func TestRunFrames_SpringComesToRest(t *testing.T) {
	spring, _ := dynamo.New(120, 0.8)
	color := dynamo.NewColorDynamics()
	clock := NewManualClock(1000)

	spring.SetPosition(0, clock.NowMillis())
	spring.SetTargetPosition(240, clock.NowMillis())
	color.SetColor(dynamo.ARGB(0xFF, 0xFF, 0xFF, 0xFF), clock.NowMillis())
	color.SetTargetColor(dynamo.ARGB(0xFF, 0x99, 0x33, 0xCC), clock.NowMillis())

	d := NewDriver(15*time.Millisecond, spring, color)
	n := RunFrames(d, clock, d.Restart(), 10000)

	if n >= 10000 {
		t.Fatal("animation never came to rest")
	}
	if !spring.IsAtRest() || !color.IsAtRest() {
		t.Error("driver stopped before animators rested")
	}
	if clock.NowMillis() != 1000+int64(n-1)*15 {
		t.Errorf("clock = %d after %d frames", clock.NowMillis(), n)
	}
}

func TestManualClock_IgnoresNegativeSteps(t *testing.T) {
	c := NewManualClock(10)
	c.Advance(-5)
	if c.NowMillis() != 10 {
		t.Errorf("clock moved backward to %d", c.NowMillis())
	}
	if c.Advance(5) != 15 {
		t.Errorf("advance returned %d", c.NowMillis())
	}
}
