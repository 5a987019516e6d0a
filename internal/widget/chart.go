package widget

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/springview/internal/anim"
	"github.com/san-kum/springview/internal/dynamo"
)

const (
	ChartSpringiness  = 80
	ChartDampingRatio = 0.8
	ChartFrameDelay   = 20 * time.Millisecond

	fullCircle = 360.0
)

// Slice is one wedge of the chart as it should be drawn this frame.
type Slice struct {
	Start    float64 // degrees
	Sweep    float64 // degrees
	Color    dynamo.Color
	Label    string
	Value    int
	Selected bool
}

// Chart is the state behind an animated pie chart with a legend row. Each
// value springs toward its slice size when new data arrives.
type Chart struct {
	unit     string
	values   []int
	labels   []string
	total    int
	selected int
	slices   *dynamo.Set
	driver   *anim.Driver
	onSelect func(int)
}

func NewChart(unit string) *Chart {
	slices, err := dynamo.NewSet(ChartSpringiness, ChartDampingRatio)
	if err != nil {
		panic(err)
	}
	return &Chart{
		unit:     unit,
		selected: -1,
		slices:   slices,
		driver:   anim.NewDriver(ChartFrameDelay, slices),
	}
}

// OnSelected registers fn to be called with the selected index after every
// touch on the pie or legend.
func (c *Chart) OnSelected(fn func(int)) { c.onSelect = fn }

// SetData replaces the chart contents. A different number of values restarts
// every slice from zero; the same number retargets the slices in flight.
func (c *Chart) SetData(values []int, labels []string, now int64) (anim.Frame, error) {
	if len(values) != len(labels) {
		return anim.Frame{}, fmt.Errorf("%w: %d values, %d labels", ErrDataMismatch, len(values), len(labels))
	}

	targets := make([]float64, len(values))
	total := 0
	for i, v := range values {
		if v < 0 {
			return anim.Frame{}, fmt.Errorf("%w: %q = %d", ErrNegativeValue, labels[i], v)
		}
		targets[i] = float64(v)
		total += v
	}

	c.values = append(c.values[:0], values...)
	c.labels = append(c.labels[:0], labels...)
	c.total = total
	c.selected = -1
	c.slices.Init(targets, now)

	return c.driver.Restart(), nil
}

// Tick advances the slice springs for frame f.
func (c *Chart) Tick(f anim.Frame, now int64) (anim.Frame, bool) {
	return c.driver.Tick(f, now)
}

func (c *Chart) Animating() bool { return c.driver.Pending() }

// Total is the sum of the raw values, regardless of animation progress.
func (c *Chart) Total() int { return c.total }

func (c *Chart) Len() int { return len(c.values) }

func (c *Chart) CenterText() string {
	return fmt.Sprintf("%d %s", c.total, c.unit)
}

func (c *Chart) Selected() int { return c.selected }

// Slices lays the current slice positions around the circle, normalised by
// their animated sum.
func (c *Chart) Slices() []Slice {
	out := make([]Slice, len(c.values))
	sum := c.slices.Sum()
	start := 0.0
	for i := range c.values {
		sweep := 0.0
		if sum > 0 {
			sweep = c.slices.At(i).Position() / sum * fullCircle
		}
		out[i] = Slice{
			Start:    start,
			Sweep:    sweep,
			Color:    PaletteColor(i),
			Label:    c.labels[i],
			Value:    c.values[i],
			Selected: i == c.selected,
		}
		start += sweep
	}
	return out
}

// SelectAngle selects the slice under deg, measured clockwise from the
// positive x axis. The selection is left alone when no slice covers deg.
func (c *Chart) SelectAngle(deg float64) int {
	deg = math.Mod(math.Mod(deg, fullCircle)+fullCircle, fullCircle)
	cum := 0.0
	for i, s := range c.Slices() {
		cum += s.Sweep
		if cum > deg {
			c.selected = i
			break
		}
	}
	c.notify()
	return c.selected
}

// SelectPoint selects the slice under (x, y) relative to the pie center.
func (c *Chart) SelectPoint(x, y float64) int {
	deg := math.Atan2(y, x) / (2 * math.Pi) * fullCircle
	return c.SelectAngle(deg)
}

// SelectLegend selects the legend column containing x, where the legend row
// spans [0, width) split evenly between slices.
func (c *Chart) SelectLegend(x, width float64) int {
	n := len(c.values)
	if n == 0 {
		return c.selected
	}
	column := width / float64(n)
	for i := n; i > 0; i-- {
		if x > column*float64(i-1) {
			c.selected = i - 1
			break
		}
	}
	c.notify()
	return c.selected
}

// ExplodeOffset returns the translation pushing slice i out of the pie by
// shift along its bisector. Only the selected slice moves.
func (c *Chart) ExplodeOffset(i int, shift float64) (dx, dy float64) {
	if i != c.selected || i < 0 || i >= len(c.values) {
		return 0, 0
	}
	s := c.Slices()[i]
	mid := (s.Start + s.Sweep/2) * math.Pi / 180
	return math.Cos(mid) * shift, math.Sin(mid) * shift
}

func (c *Chart) notify() {
	if c.onSelect != nil {
		c.onSelect(c.selected)
	}
}
