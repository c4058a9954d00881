// Package term renders dashboard results for a terminal.
package term

import (
	"fmt"
	"io"
	"math"
	"strings"

	"floodwatch/internal/chart"
	"floodwatch/internal/view"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorFlood   = lipgloss.Color("#FF4B4B")
	colorSuccess = lipgloss.Color("#3DDC84")
	colorInfo    = lipgloss.Color("#2196F3")
	colorMuted   = lipgloss.Color("#666666")

	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorFlood).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	metricStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#e1e4e8")).
			Padding(0, 1).
			Width(24)
	barStyle = lipgloss.NewStyle().Foreground(colorFlood)
)

type Renderer struct {
	out   io.Writer
	width int
	style string
}

// New returns a renderer wrapping text at width. style is a glamour style
// name; empty picks one from the terminal background.
func New(out io.Writer, width int, style string) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{out: out, width: width, style: style}
}

func (r *Renderer) Assessment(a *view.Assessment) {
	fmt.Fprintln(r.out, successStyle.Render("Prediction completed!"))
	fmt.Fprintln(r.out, titleStyle.Render("Flood Risk Assessment"))

	boxes := make([]string, 0, len(a.Metrics))
	for _, m := range a.Metrics {
		boxes = append(boxes, metricStyle.Render(m.Label+"\n"+titleStyle.Render(m.Value)))
	}
	fmt.Fprintln(r.out, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))

	fmt.Fprintln(r.out, titleStyle.Render("Risk Level Gauge"))
	fmt.Fprintln(r.out, GaugeBar(a.RiskScore, 40))

	fmt.Fprintln(r.out, titleStyle.Render("Model Consensus"))
	for _, v := range a.Votes {
		fmt.Fprintf(r.out, "  - %s\n", v)
	}
	fmt.Fprintf(r.out, "%s %s\n", titleStyle.Render("Risk Severity:"), a.Severity)
}

func (r *Renderer) Alert(a *view.Alert) {
	if a == nil {
		return
	}
	fmt.Fprintln(r.out, errorStyle.Render(a.Message))
	if a.Detail != "" {
		fmt.Fprintln(r.out, mutedStyle.Render(a.Detail))
	}
	if a.Hint != "" {
		fmt.Fprintln(r.out, hintStyle.Render(a.Hint))
	}
}

// Answer renders Markdown. On renderer failure the text is printed as is.
func (r *Renderer) Answer(md string) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(r.width)}
	if r.style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(r.style))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		_, werr := fmt.Fprintln(r.out, md)
		return werr
	}
	out, err := tr.Render(md)
	if err != nil {
		out = md + "\n"
	}
	_, err = io.WriteString(r.out, out)
	return err
}

// GaugeBar draws score on a 0..100 bar of width cells with the threshold
// positions marked underneath.
func GaugeBar(score float64, width int) string {
	filled := int(math.Round(chart.Clamp(score) / 100 * float64(width)))
	bar := barStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)

	ticks := []rune(strings.Repeat(" ", width+1))
	labels := make([]string, 0, len(chart.GaugeThresholds))
	for _, t := range chart.GaugeThresholds {
		ticks[int(t.Value)*width/100] = '^'
		labels = append(labels, fmt.Sprintf("%s %.0f", t.Label, t.Value))
	}
	return fmt.Sprintf("|%s| %s\n %s\n %s", bar, view.FormatPercent(score),
		strings.TrimRight(string(ticks), " "), mutedStyle.Render(strings.Join(labels, " · ")))
}
