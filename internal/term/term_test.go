package term

import (
	"bytes"
	"strings"
	"testing"

	"floodwatch/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaugeBar(t *testing.T) {
	out := GaugeBar(50, 40)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, 20, strings.Count(lines[0], "█"))
	assert.Equal(t, 20, strings.Count(lines[0], "░"))
	assert.Contains(t, lines[0], "50.0%")
	assert.Equal(t, 3, strings.Count(lines[1], "^"))
	assert.Contains(t, lines[2], "Low 30")
	assert.Contains(t, lines[2], "High 90")
}

func TestGaugeBar_Clamped(t *testing.T) {
	out := GaugeBar(140, 10)
	assert.Equal(t, 10, strings.Count(out, "█"))
	assert.Equal(t, 0, strings.Count(out, "░"))
	assert.Contains(t, out, "140.0%")
}

func TestAssessment(t *testing.T) {
	var buf bytes.Buffer
	a := &view.Assessment{
		RiskScore: 20,
		Metrics: []view.Metric{
			{Label: "Flood Probability", Value: "12.5%"},
			{Label: "Risk Score", Value: "20.0%"},
			{Label: "Flood Predicted", Value: "NO"},
		},
		Votes:    []string{"RF: NO FLOOD"},
		Severity: "Low",
	}
	New(&buf, 80, "notty").Assessment(a)
	out := buf.String()

	assert.Contains(t, out, "Prediction completed!")
	assert.Contains(t, out, "12.5%")
	assert.Contains(t, out, "NO")
	assert.Contains(t, out, "- RF: NO FLOOD")
	assert.Contains(t, out, "Low")
}

func TestAlert(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 80, "notty")
	r.Alert(nil)
	assert.Empty(t, buf.String())

	r.Alert(&view.Alert{Message: "API returned status code: 503", Detail: "busy", Hint: "later"})
	out := buf.String()
	assert.Contains(t, out, "API returned status code: 503")
	assert.Contains(t, out, "busy")
	assert.Contains(t, out, "later")
}

func TestAnswer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, 60, "notty").Answer("# Planting\n\nSow after the **first rains**."))

	out := buf.String()
	assert.Contains(t, out, "Planting")
	assert.Contains(t, out, "first rains")
}
