package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/springview/internal/anim"
	"github.com/san-kum/springview/internal/widget"
)

const (
	margin      = 2
	pieRadius   = 6
	defaultCols = 64
	maxSlices   = 12
)

// Row layout of View, used for mouse hit testing.
const (
	rowTabs      = 3
	rowIndicator = 4
	rowPieTop    = 6
	rowLegend    = rowPieTop + 2*pieRadius + 3
)

type owner int

const (
	ownerChart owner = iota
	ownerChooser
)

// frameMsg carries a scheduled animation frame back to the widget that asked
// for it.
type frameMsg struct {
	owner owner
	frame anim.Frame
}

type dataset struct {
	name   string
	labels []string
	values []int
}

type model struct {
	clock   anim.Clock
	theme   Theme
	st      styles
	rng     *rand.Rand
	chooser *widget.Chooser
	chart   *widget.Chart
	data    []dataset
	after   func(time.Duration, tea.Msg) tea.Cmd
	width   int
	height  int
}

func NewDemo(clock anim.Clock, theme Theme, seed int64) *model {
	m := &model{
		clock:   clock,
		theme:   theme,
		st:      theme.styles(),
		rng:     rand.New(rand.NewSource(seed)),
		chooser: widget.NewChooser(),
		chart:   widget.NewChart("MB"),
		after:   tick,
		width:   defaultCols,
		height:  24,
	}

	names := []string{"phone", "sd card", "cloud"}
	now := clock.NowMillis()
	for i, name := range names {
		m.data = append(m.data, m.randomDataset(name, 3+i))
		m.chooser.Add(widget.Item{Label: name, Color: widget.PaletteColor(i)}, now)
	}
	m.chooser.Resize(float64(m.width - 2*margin))
	m.chooser.OnChosen(func(i int) { log.Debug("tab chosen", "index", i) })
	m.chart.OnSelected(func(i int) { log.Debug("slice selected", "index", i) })
	return m
}

// Run starts the interactive demo on the terminal.
func Run(theme string, seed int64) error {
	p := tea.NewProgram(
		NewDemo(anim.NewSystemClock(), GetTheme(theme), seed),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

func tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func (m model) schedule(o owner, f anim.Frame) tea.Cmd {
	return m.after(f.Delay, frameMsg{owner: o, frame: f})
}

func (m model) randomDataset(name string, n int) dataset {
	d := dataset{name: name}
	for i := 0; i < n; i++ {
		d.labels = append(d.labels, fmt.Sprintf("%s %d", name, i+1))
		d.values = append(d.values, 100+m.rng.Intn(900))
	}
	return d
}

func (m model) Init() tea.Cmd {
	return m.choose(0)
}

// choose moves the chooser to tab i and loads its dataset into the chart.
func (m model) choose(i int) tea.Cmd {
	if i < 0 || i >= len(m.data) {
		return nil
	}
	now := m.clock.NowMillis()
	cf, err := m.chooser.Choose(i, now)
	if err != nil {
		return nil
	}
	return tea.Batch(m.schedule(ownerChooser, cf), m.load(now))
}

func (m model) load(now int64) tea.Cmd {
	d := m.data[m.chooser.Selected()]
	f, err := m.chart.SetData(d.values, d.labels, now)
	if err != nil {
		log.Error("set data", "err", err)
		return nil
	}
	return m.schedule(ownerChart, f)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chooser.Resize(float64(m.width - 2*margin))
		if sel := m.chooser.Selected(); sel >= 0 {
			f, err := m.chooser.SetSelected(sel, m.clock.NowMillis())
			if err == nil {
				return m, m.schedule(ownerChooser, f)
			}
		}
		return m, nil
	case frameMsg:
		now := m.clock.NowMillis()
		var next anim.Frame
		var ok bool
		switch msg.owner {
		case ownerChart:
			next, ok = m.chart.Tick(msg.frame, now)
		case ownerChooser:
			next, ok = m.chooser.Tick(msg.frame, now)
		}
		if ok {
			return m, m.schedule(msg.owner, next)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	sel := m.chooser.Selected()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		return m, m.choose(sel - 1)
	case "right", "l":
		return m, m.choose(sel + 1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return m, m.choose(int(msg.String()[0] - '1'))
	case "n":
		d := m.current()
		if d == nil {
			return m, nil
		}
		for i := range d.values {
			d.values[i] = 100 + m.rng.Intn(900)
		}
		return m, m.load(m.clock.NowMillis())
	case "a":
		d := m.current()
		if d == nil {
			return m, nil
		}
		if len(d.values) >= maxSlices {
			return m, nil
		}
		d.labels = append(d.labels, fmt.Sprintf("%s %d", d.name, len(d.labels)+1))
		d.values = append(d.values, 100+m.rng.Intn(900))
		return m, m.load(m.clock.NowMillis())
	case "x":
		d := m.current()
		if d == nil {
			return m, nil
		}
		if len(d.values) <= 1 {
			return m, nil
		}
		d.labels = d.labels[:len(d.labels)-1]
		d.values = d.values[:len(d.values)-1]
		return m, m.load(m.clock.NowMillis())
	case "tab":
		m.cycleSlice()
	}
	return m, nil
}

func (m model) current() *dataset {
	sel := m.chooser.Selected()
	if sel < 0 || sel >= len(m.data) {
		return nil
	}
	return &m.data[sel]
}

// cycleSlice selects the slice after the current one by touching its middle.
func (m model) cycleSlice() {
	slices := m.chart.Slices()
	if len(slices) == 0 {
		return
	}
	next := (m.chart.Selected() + 1) % len(slices)
	s := slices[next]
	m.chart.SelectAngle(s.Start + s.Sweep/2)
}

func (m model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	x := msg.X - margin
	switch {
	case msg.Y == rowTabs || msg.Y == rowIndicator:
		w := int(m.chooser.ItemWidth())
		if w <= 0 || x < 0 {
			return nil
		}
		return m.choose(x / w)
	case msg.Y >= rowPieTop && msg.Y <= rowPieTop+2*pieRadius:
		dx, dy := pieCoords(msg.X, msg.Y)
		if dx*dx+dy*dy <= pieRadius*pieRadius {
			m.chart.SelectPoint(dx, dy)
		}
	case msg.Y == rowLegend:
		if x >= 0 {
			m.chart.SelectLegend(float64(x), float64(m.width-2*margin))
		}
	}
	return nil
}

// pieCoords maps a terminal cell to pie space. Cells are twice as tall as
// they are wide.
func pieCoords(col, row int) (dx, dy float64) {
	cx := margin + 2*pieRadius
	cy := rowPieTop + pieRadius
	return float64(col-cx) / 2, float64(row - cy)
}
