package viz

import (
	"github.com/san-kum/springview/internal/sim"
)

// Bounds is the data range mapped onto the canvas.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// PhaseBounds spans every sample's position and velocity. Flat ranges are
// widened to one unit.
func PhaseBounds(samples []sim.Sample) Bounds {
	if len(samples) == 0 {
		return Bounds{MaxX: 1, MaxY: 1}
	}
	b := Bounds{
		MinX: samples[0].Position, MaxX: samples[0].Position,
		MinY: samples[0].Velocity, MaxY: samples[0].Velocity,
	}
	for _, s := range samples[1:] {
		b.MinX = min(b.MinX, s.Position)
		b.MaxX = max(b.MaxX, s.Position)
		b.MinY = min(b.MinY, s.Velocity)
		b.MaxY = max(b.MaxY, s.Velocity)
	}
	if b.MaxX == b.MinX {
		b.MaxX++
	}
	if b.MaxY == b.MinY {
		b.MaxY++
	}
	return b
}

// Project maps (x, y) to sub-pixel coordinates, y growing downward.
func (b Bounds) Project(c *Canvas, x, y float64) (px, py int) {
	w, h := c.PixelSize()
	px = int((x - b.MinX) / (b.MaxX - b.MinX) * float64(w-1))
	py = int((b.MaxY - y) / (b.MaxY - b.MinY) * float64(h-1))
	return px, py
}

// Phase draws the trace as velocity against position on a w x h cell
// canvas, joining consecutive samples.
func Phase(samples []sim.Sample, w, h int) *Canvas {
	c := NewCanvas(w, h)
	if len(samples) == 0 {
		return c
	}
	b := PhaseBounds(samples)
	px, py := b.Project(c, samples[0].Position, samples[0].Velocity)
	c.Set(px, py)
	for _, s := range samples[1:] {
		x, y := b.Project(c, s.Position, s.Velocity)
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
	return c
}
