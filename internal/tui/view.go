package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/springview/internal/dynamo"
	"github.com/san-kum/springview/internal/widget"
)

const explodeShift = 1.0

func (m model) View() string {
	var b strings.Builder
	pad := strings.Repeat(" ", margin)
	inner := m.width - 2*margin

	b.WriteString("\n")
	b.WriteString(pad + m.st.title.Render("s p r i n g v i e w") + "\n")
	b.WriteString("\n")
	b.WriteString(pad + m.viewTabs() + "\n")
	b.WriteString(pad + m.viewIndicator() + "\n")
	b.WriteString("\n")

	for _, line := range m.viewPie() {
		b.WriteString(pad + line + "\n")
	}
	b.WriteString(pad + m.st.text.Render(center(m.chart.CenterText(), 4*pieRadius+1)) + "\n")
	b.WriteString("\n")
	b.WriteString(pad + m.viewLegend(inner) + "\n")
	b.WriteString("\n")
	b.WriteString(pad + m.st.dim.Render("←→ tab   n new values   a add   x remove   tab select   q quit") + "\n")

	return b.String()
}

func (m model) viewTabs() string {
	w := int(m.chooser.ItemWidth())
	if w <= 0 {
		return ""
	}
	var b strings.Builder
	for i, it := range m.chooser.Items() {
		label := center(it.Label, w)
		if i == m.chooser.Selected() {
			b.WriteString(m.st.text.Bold(true).Render(label))
		} else {
			b.WriteString(m.st.dim.Render(label))
		}
	}
	return b.String()
}

func (m model) viewIndicator() string {
	w := int(m.chooser.ItemWidth())
	if w <= 0 {
		return ""
	}
	left := int(math.Round(m.chooser.Offset()))
	if left < 0 {
		left = 0
	}
	bar := lipgloss.NewStyle().Foreground(colorOf(m.chooser.Color())).Render(strings.Repeat("━", w))
	return strings.Repeat(" ", left) + bar
}

// viewPie rasterizes the chart onto a character grid. The selected slice is
// drawn pushed out along its bisector.
func (m model) viewPie() []string {
	slices := m.chart.Slices()
	sel := m.chart.Selected()
	ex, ey := m.chart.ExplodeOffset(sel, explodeShift)

	rows := 2*pieRadius + 1
	cols := 4*pieRadius + 1
	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			dx, dy := pieCoords(c+margin, r+rowPieTop)
			i := sliceAt(slices, dx-ex, dy-ey)
			if i != sel {
				i = sliceAt(slices, dx, dy)
				if i == sel {
					i = -1
				}
			}
			if i < 0 {
				b.WriteString(" ")
				continue
			}
			glyph := "█"
			if i == sel {
				glyph = "▓"
			}
			b.WriteString(lipgloss.NewStyle().Foreground(colorOf(slices[i].Color)).Render(glyph))
		}
		lines[r] = b.String()
	}
	return lines
}

func sliceAt(slices []widget.Slice, dx, dy float64) int {
	if dx*dx+dy*dy > pieRadius*pieRadius {
		return -1
	}
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	for i, s := range slices {
		if deg >= s.Start && deg < s.Start+s.Sweep {
			return i
		}
	}
	return -1
}

func (m model) viewLegend(width int) string {
	slices := m.chart.Slices()
	if len(slices) == 0 || width <= 0 {
		return ""
	}
	col := width / len(slices)
	var b strings.Builder
	for i, s := range slices {
		swatch := lipgloss.NewStyle().Foreground(colorOf(s.Color)).Render("■")
		label := truncate(s.Label, col-2)
		style := m.st.dim
		if i == m.chart.Selected() {
			style = m.st.hot
		}
		b.WriteString(swatch + " " + style.Render(label) + strings.Repeat(" ", max(0, col-2-len(label))))
	}
	return b.String()
}

func colorOf(c dynamo.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func center(s string, w int) string {
	s = truncate(s, w)
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if len(s) > w {
		return s[:w]
	}
	return s
}
