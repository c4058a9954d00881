// Package chart draws the dashboard charts as inline SVG.
package chart

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

const (
	colorFlood = "#FF4B4B"
	colorSafe  = "#3DDC84"
	colorBars  = "#1f77b4"
	colorText  = "#000000"

	HistogramBins = 30
)

// Threshold is a dashed marker on the risk gauge.
type Threshold struct {
	Value float64
	Label string
	Color string
}

var GaugeThresholds = []Threshold{
	{30, "Low", "green"},
	{60, "Medium", "orange"},
	{90, "High", "red"},
}

// Clamp limits a percentage to 0..100 for drawing.
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

type svg struct {
	b strings.Builder
}

func newSVG(w, h int, title string) *svg {
	s := &svg{}
	fmt.Fprintf(&s.b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-label="%s">`, w, h, template.HTMLEscapeString(title))
	fmt.Fprintf(&s.b, `<text x="%d" y="18" text-anchor="middle" font-size="14" fill="%s">%s</text>`, w/2, colorText, template.HTMLEscapeString(title))
	return s
}

func (s *svg) add(format string, args ...any) { fmt.Fprintf(&s.b, format, args...) }

func (s *svg) html() template.HTML {
	s.b.WriteString(`</svg>`)
	return template.HTML(s.b.String())
}

// Donut shows flood probability against the safe remainder.
func Donut(probability float64) template.HTML {
	const (
		cx, cy = 110.0, 125.0
		radius = 80.0
		ring   = radius * 0.4
	)
	p := Clamp(probability)
	mid := radius - ring/2
	circ := 2 * math.Pi * mid
	arc := circ * p / 100

	s := newSVG(220, 240, "Flood Probability")
	s.add(`<circle class="safe" cx="%.0f" cy="%.0f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f"/>`, cx, cy, mid, colorSafe, ring)
	s.add(`<circle class="flood" cx="%.0f" cy="%.0f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f" stroke-dasharray="%.2f %.2f" transform="rotate(-90 %.0f %.0f)"/>`,
		cx, cy, mid, colorFlood, ring, arc, circ-arc, cx, cy)
	s.add(`<text x="%.0f" y="%.0f" text-anchor="middle" font-size="16" fill="%s">%.1f%%</text>`, cx, cy+5, colorText, probability)
	s.add(`<text x="20" y="232" font-size="12" fill="%s">&#9632; Flood</text>`, colorFlood)
	s.add(`<text x="150" y="232" font-size="12" fill="%s">&#9632; Safe</text>`, colorSafe)
	return s.html()
}

const (
	axisLeft  = 20.0
	axisRight = 400.0
)

func axisX(v float64) float64 { return axisLeft + (axisRight-axisLeft)*Clamp(v)/100 }

// Gauge draws the risk score as a bar on a 0..100 axis with threshold markers.
func Gauge(score float64) template.HTML {
	s := newSVG(420, 130, "Risk Level Gauge")
	s.add(`<rect x="%.0f" y="40" width="%.0f" height="24" fill="#f0f2f6"/>`, axisLeft, axisRight-axisLeft)
	s.add(`<rect class="bar" x="%.0f" y="43" width="%.2f" height="18" fill="%s"/>`, axisLeft, axisX(score)-axisLeft, colorFlood)
	for _, t := range GaugeThresholds {
		x := axisX(t.Value)
		s.add(`<line class="threshold" x1="%.2f" y1="34" x2="%.2f" y2="70" stroke="%s" stroke-dasharray="4 3"/>`, x, x, t.Color)
		s.add(`<text x="%.2f" y="30" text-anchor="middle" font-size="10" fill="%s">%s</text>`, x, t.Color, t.Label)
	}
	writeAxis(s, 82)
	return s.html()
}

// Bin returns the histogram bin holding score, or -1 when it is off the axis.
func Bin(score float64) int {
	if math.IsNaN(score) || score < 0 || score > 100 {
		return -1
	}
	i := int(score * HistogramBins / 100)
	if i >= HistogramBins {
		i = HistogramBins - 1
	}
	return i
}

// Histogram places the single risk score in 30 bins over 0..100 with a dashed
// marker at the exact value. zone goes into the title.
func Histogram(score float64, zone string) template.HTML {
	const top, bottom = 30.0, 110.0
	s := newSVG(420, 160, "Risk Severity: "+zone)
	width := (axisRight - axisLeft) / HistogramBins
	if hit := Bin(score); hit >= 0 {
		s.add(`<rect class="bin" x="%.2f" y="%.0f" width="%.2f" height="%.0f" fill="%s"/>`,
			axisLeft+float64(hit)*width, top, width, bottom-top, colorBars)
	}
	x := axisX(score)
	s.add(`<line class="marker" x1="%.2f" y1="%.0f" x2="%.2f" y2="%.0f" stroke="red" stroke-dasharray="5 3"/>`, x, top-4, x, bottom)
	writeAxis(s, bottom)
	return s.html()
}

func writeAxis(s *svg, y float64) {
	s.add(`<line x1="%.0f" y1="%.0f" x2="%.0f" y2="%.0f" stroke="%s"/>`, axisLeft, y, axisRight, y, colorText)
	for v := 0; v <= 100; v += 20 {
		x := axisX(float64(v))
		s.add(`<text x="%.2f" y="%.0f" text-anchor="middle" font-size="10" fill="%s">%d</text>`, x, y+14, colorText, v)
	}
	s.add(`<text x="%.0f" y="%.0f" text-anchor="middle" font-size="11" fill="%s">Risk Score (%%)</text>`, (axisLeft+axisRight)/2, y+30, colorText)
}
