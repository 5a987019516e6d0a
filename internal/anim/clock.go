package anim

import "time"

// Clock supplies the monotonically non-decreasing millisecond timestamps the
// motion engine integrates against.
type Clock interface {
	NowMillis() int64
}

// SystemClock reads the monotonic clock relative to its creation.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to.
type ManualClock struct {
	now int64
}

func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) NowMillis() int64 { return c.now }

// Advance moves the clock forward by ms and returns the new time. Negative
// steps are ignored.
func (c *ManualClock) Advance(ms int64) int64 {
	if ms > 0 {
		c.now += ms
	}
	return c.now
}
