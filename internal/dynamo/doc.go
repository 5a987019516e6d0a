// Package dynamo provides the spring-damper motion engine used by the widgets.
//
// Every animated quantity is a single degree-of-freedom damped spring advanced
// by forward Euler integration, one call per frame:
//
//   - [Dynamics]: scalar position driven toward a target
//   - [ColorDynamics]: four [Dynamics] channels behind a packed ARGB [Color]
//   - [Set]: ordered, index-aligned [Dynamics] values with an "any active" query
//
// # Example
//
//	d, _ := dynamo.New(120, 0.8)
//	d.SetPosition(0, now)
//	d.SetTargetPosition(240, now)
//	for !d.IsAtRest() {
//	    now += 15
//	    d.Update(now)
//	}
//
// Time is an int64 millisecond timestamp supplied by the caller. The engine
// never reads a clock or schedules work itself.
//
// # Thread Safety
//
// Values are NOT thread-safe. They are owned by one widget and touched only
// from its animation goroutine.
package dynamo
