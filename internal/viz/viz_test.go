package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/springview/internal/sim"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if c.Grid[0][0] != brailleBlank|0x1 {
		t.Errorf("cell 0 = %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != brailleBlank|0x80 {
		t.Errorf("cell 1 = %U", c.Grid[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(1, 0) {
		t.Error("IsSet disagrees with Set")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)
	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("pixel %d not set", x)
		}
	}
	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("clear left pixels set")
	}
}

func TestPhase(t *testing.T) {
	samples := []sim.Sample{
		{Position: 0, Velocity: 0},
		{Position: 50, Velocity: 10},
		{Position: 100, Velocity: 0},
	}
	c := Phase(samples, 20, 5)

	b := PhaseBounds(samples)
	if b.MinX != 0 || b.MaxX != 100 || b.MaxY != 10 {
		t.Errorf("unexpected bounds %+v", b)
	}

	w, h := c.PixelSize()
	if !c.IsSet(0, h-1) || !c.IsSet(w-1, h-1) || !c.IsSet(px(c, b, 50), 0) {
		t.Error("phase curve misses its samples")
	}
	if lines := strings.Count(c.String(), "\n"); lines != 5 {
		t.Errorf("expected 5 rows, got %d", lines)
	}
}

func px(c *Canvas, b Bounds, x float64) int {
	p, _ := b.Project(c, x, 0)
	return p
}

func TestPhaseBounds_Flat(t *testing.T) {
	b := PhaseBounds([]sim.Sample{{Position: 3, Velocity: 0}})
	if b.MaxX-b.MinX != 1 || b.MaxY-b.MinY != 1 {
		t.Errorf("flat range not widened: %+v", b)
	}
}
