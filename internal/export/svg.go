package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/springview/internal/sim"
	"github.com/san-kum/springview/internal/widget"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`

// TraceSVG plots position over time with the target drawn as a dashed step
// line.
func TraceSVG(samples []sim.Sample, width, height int, stroke string) string {
	if len(samples) < 2 {
		return ""
	}

	minT, maxT := samples[0].Time, samples[len(samples)-1].Time
	minY, maxY := samples[0].Position, samples[0].Position
	for _, s := range samples {
		minY = math.Min(minY, math.Min(s.Position, s.Target))
		maxY = math.Max(maxY, math.Max(s.Position, s.Target))
	}

	rangeT := float64(maxT - minT)
	rangeY := maxY - minY
	if rangeT == 0 {
		rangeT = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	project := func(t int64, v float64) (float64, float64) {
		x := float64(t-minT) / rangeT * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, width, height, width, height)

	sb.WriteString(`<path fill="none" stroke="#666666" stroke-dasharray="4 3" d="`)
	for i, s := range samples {
		x, y := project(s.Time, s.Target)
		if i == 0 {
			fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
		} else {
			_, prev := project(s.Time, samples[i-1].Target)
			fmt.Fprintf(&sb, " L%.1f,%.1f L%.1f,%.1f", x, prev, x, y)
		}
	}
	sb.WriteString("\"/>\n")

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="`, stroke)
	for i, s := range samples {
		x, y := project(s.Time, s.Position)
		if i == 0 {
			fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString("\"/>\n</svg>")
	return sb.String()
}

// ChartSVG draws chart slices as pie wedges of the given diameter. The
// selected slice is pushed out by explode along its bisector.
func ChartSVG(chart *widget.Chart, size int, explode float64) string {
	pad := int(math.Ceil(explode))
	full := size + 2*pad
	r := float64(size) / 2
	cx, cy := float64(full)/2, float64(full)/2

	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, full, full, full, full)

	for i, s := range chart.Slices() {
		if s.Sweep <= 0 {
			continue
		}
		dx, dy := chart.ExplodeOffset(i, explode)
		ox, oy := cx+dx, cy+dy
		fill := s.Color.Hex()

		if s.Sweep >= 360-1e-9 {
			fmt.Fprintf(&sb, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"%s\"/>\n", ox, oy, r, fill)
			continue
		}

		a0 := s.Start * math.Pi / 180
		a1 := (s.Start + s.Sweep) * math.Pi / 180
		large := 0
		if s.Sweep > 180 {
			large = 1
		}
		fmt.Fprintf(&sb, "<path fill=\"%s\" d=\"M%.2f,%.2f L%.2f,%.2f A%.2f,%.2f 0 %d 1 %.2f,%.2f Z\"/>\n",
			fill, ox, oy,
			ox+r*math.Cos(a0), oy+r*math.Sin(a0),
			r, r, large,
			ox+r*math.Cos(a1), oy+r*math.Sin(a1))
	}

	fmt.Fprintf(&sb, "<text x=\"%.2f\" y=\"%.2f\" fill=\"#ffffff\" text-anchor=\"middle\">%s</text>\n",
		cx, cy, chart.CenterText())
	sb.WriteString("</svg>")
	return sb.String()
}
