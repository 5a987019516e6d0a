package dynamo

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	colorSpringiness  = 50
	colorDampingRatio = 0.8
)

// Color is a packed 32-bit ARGB value.
type Color uint32

func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseHex reads "#rrggbb" as an opaque color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return ARGB(0xFF, r, g, b), nil
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Hex formats the color channels as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// ColorDynamics animates a color by springing each ARGB channel independently.
type ColorDynamics struct {
	alpha, red, green, blue *Dynamics
}

func NewColorDynamics() *ColorDynamics {
	return &ColorDynamics{
		alpha: mustNew(colorSpringiness, colorDampingRatio),
		red:   mustNew(colorSpringiness, colorDampingRatio),
		green: mustNew(colorSpringiness, colorDampingRatio),
		blue:  mustNew(colorSpringiness, colorDampingRatio),
	}
}

// Color returns the current blend. Channels overshooting during the
// transition are clamped to [0, 255].
func (c *ColorDynamics) Color() Color {
	return ARGB(
		clampChannel(c.alpha.Position()),
		clampChannel(c.red.Position()),
		clampChannel(c.green.Position()),
		clampChannel(c.blue.Position()),
	)
}

// SetColor snaps to color with no transition.
func (c *ColorDynamics) SetColor(color Color, now int64) {
	c.alpha.SetPosition(float64(color.A()), now)
	c.red.SetPosition(float64(color.R()), now)
	c.green.SetPosition(float64(color.G()), now)
	c.blue.SetPosition(float64(color.B()), now)
}

func (c *ColorDynamics) SetTargetColor(color Color, now int64) {
	c.alpha.SetTargetPosition(float64(color.A()), now)
	c.red.SetTargetPosition(float64(color.R()), now)
	c.green.SetTargetPosition(float64(color.G()), now)
	c.blue.SetTargetPosition(float64(color.B()), now)
}

func (c *ColorDynamics) Update(now int64) {
	c.alpha.Update(now)
	c.red.Update(now)
	c.green.Update(now)
	c.blue.Update(now)
}

func (c *ColorDynamics) IsAtRest() bool {
	return c.alpha.IsAtRest() && c.red.IsAtRest() && c.green.IsAtRest() && c.blue.IsAtRest()
}

func clampChannel(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 0xFF:
		return 0xFF
	default:
		return uint8(v)
	}
}
