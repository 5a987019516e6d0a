// Package anim schedules animation frames for widgets driven by the motion
// engine.
//
// A [Driver] owns the animated values of one widget. Restarting it cancels
// any frame still in flight by bumping a generation counter, so at most one
// frame chain per widget is live. Hosts deliver frames however they like
// (a bubbletea tick, a timer) and hand them back to [Driver.Tick].
package anim
