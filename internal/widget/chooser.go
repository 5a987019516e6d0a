package widget

import (
	"fmt"
	"time"

	"github.com/san-kum/springview/internal/anim"
	"github.com/san-kum/springview/internal/dynamo"
)

const (
	ChooserSpringiness  = 120
	ChooserDampingRatio = 0.8
	ChooserFrameDelay   = 15 * time.Millisecond
)

// DefaultItemColor is used for items added without a color.
var DefaultItemColor = dynamo.ARGB(0xFF, 0xFF, 0xFF, 0xFF)

type Item struct {
	Label string
	Color dynamo.Color
}

// Chooser is a row of equal-width tabs with an indicator bar that slides and
// recolors toward the chosen tab.
type Chooser struct {
	items    []Item
	width    float64
	selected int
	offset   *dynamo.Dynamics
	color    *dynamo.ColorDynamics
	driver   *anim.Driver
	onChosen func(int)
}

func NewChooser() *Chooser {
	offset, err := dynamo.New(ChooserSpringiness, ChooserDampingRatio)
	if err != nil {
		panic(err)
	}
	color := dynamo.NewColorDynamics()
	return &Chooser{
		selected: -1,
		offset:   offset,
		color:    color,
		driver:   anim.NewDriver(ChooserFrameDelay, offset, color),
	}
}

// OnChosen registers fn to be called when the user picks an item.
func (c *Chooser) OnChosen(fn func(int)) { c.onChosen = fn }

// Add appends an item. The first item sets the indicator color outright.
func (c *Chooser) Add(item Item, now int64) {
	if item.Color == 0 {
		item.Color = DefaultItemColor
	}
	c.items = append(c.items, item)
	if len(c.items) == 1 {
		c.color.SetColor(item.Color, now)
	}
}

func (c *Chooser) Items() []Item { return c.items }

// Resize sets the total width shared by the items.
func (c *Chooser) Resize(width float64) { c.width = width }

// ItemWidth is the whole-pixel width of one item and of the indicator.
func (c *Chooser) ItemWidth() float64 {
	if len(c.items) == 0 {
		return 0
	}
	return float64(int(c.width) / len(c.items))
}

// ItemLeft is the left edge of item i.
func (c *Chooser) ItemLeft(i int) float64 {
	return float64(i) * c.ItemWidth()
}

// Choose moves the indicator to item i and notifies the listener.
func (c *Chooser) Choose(i int, now int64) (anim.Frame, error) {
	f, err := c.SetSelected(i, now)
	if err != nil {
		return f, err
	}
	if c.onChosen != nil {
		c.onChosen(i)
	}
	return f, nil
}

// SetSelected moves the indicator to item i without notifying the listener.
func (c *Chooser) SetSelected(i int, now int64) (anim.Frame, error) {
	if i < 0 || i >= len(c.items) {
		return anim.Frame{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.items))
	}
	c.selected = i
	c.offset.SetTargetPosition(c.ItemLeft(i), now)
	c.color.SetTargetColor(c.items[i].Color, now)
	return c.driver.Restart(), nil
}

// Tick advances the indicator for frame f.
func (c *Chooser) Tick(f anim.Frame, now int64) (anim.Frame, bool) {
	return c.driver.Tick(f, now)
}

func (c *Chooser) Animating() bool { return c.driver.Pending() }

func (c *Chooser) Selected() int { return c.selected }

// Offset is the indicator's current left edge.
func (c *Chooser) Offset() float64 { return c.offset.Position() }

// Color is the indicator's current blended color.
func (c *Chooser) Color() dynamo.Color { return c.color.Color() }
