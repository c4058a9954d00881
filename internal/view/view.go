// Package view turns dispatcher results into what the pages and the terminal
// client display. It knows nothing about HTML.
package view

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"floodwatch/internal/model"
	"floodwatch/internal/service"
)

// State is the lifecycle of one submission. Submitting only exists while the
// request blocks; a rendered page is always Idle, Success or Error.
type State int

const (
	Idle State = iota
	Submitting
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Error:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Help  string `json:"help"`
}

// Assessment is a successful prediction ready for display.
type Assessment struct {
	Probability float64
	RiskScore   float64
	Flood       bool
	Metrics     []Metric
	Votes       []string
	Severity    string
	InputJSON   string
	RawJSON     string
}

func FormatPercent(v float64) string { return fmt.Sprintf("%.1f%%", v) }

func FloodLabel(flood bool) string {
	if flood {
		return "YES"
	}
	return "NO"
}

// SeverityZone buckets a risk score into right-closed bins (0,30], (30,60],
// (60,100]. Scores outside (0,100] are Unclassified.
func SeverityZone(score float64) string {
	switch {
	case score > 0 && score <= 30:
		return "Low"
	case score > 30 && score <= 60:
		return "Medium"
	case score > 60 && score <= 100:
		return "High"
	}
	return "Unclassified"
}

func NewAssessment(in model.FloodInput, p *model.Prediction) *Assessment {
	return &Assessment{
		Probability: p.FloodProbability,
		RiskScore:   p.RiskScore,
		Flood:       p.FinalFlood,
		Metrics: []Metric{
			{Label: "Flood Probability", Value: FormatPercent(p.FloodProbability), Help: "Probability of flood occurrence"},
			{Label: "Risk Score", Value: FormatPercent(p.RiskScore), Help: "Composite risk score from all models"},
			{Label: "Flood Predicted", Value: FloodLabel(p.FinalFlood), Help: "Final prediction from ensemble model"},
		},
		Votes:     p.ModelVotes,
		Severity:  SeverityZone(p.RiskScore),
		InputJSON: prettyJSON(in),
		RawJSON:   indentRaw(p.Raw),
	}
}

func prettyJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

func indentRaw(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// Alert is a rendered failure. Detail carries a raw status body, Hint a
// static next step.
type Alert struct {
	Kind    string
	Message string
	Detail  string
	Hint    string
}

// Wording differs per tool; the classification does not.
type Wording struct {
	Service   string
	Hint      string
	EmptyText string
}

var (
	PredictWording = Wording{
		Service: "prediction service",
		Hint:    "Please ensure the backend API is available",
	}
	AskWording = Wording{
		Service:   "assistant",
		Hint:      "Please try again in a moment",
		EmptyText: "Please enter a question.",
	}
)

func NewAlert(err error, w Wording) *Alert {
	if err == nil {
		return nil
	}
	a := &Alert{Kind: service.Kind(err)}
	var te *service.TransportError
	var se *service.StatusError
	var re *service.ResponseError
	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		a.Message = w.EmptyText
	case errors.As(err, &te):
		a.Message = fmt.Sprintf("Failed to connect to %s: %v", w.Service, te)
		a.Hint = w.Hint
	case errors.As(err, &se):
		a.Message = fmt.Sprintf("API returned status code: %d", se.Code)
		a.Detail = se.Body
	case errors.As(err, &re):
		a.Message = fmt.Sprintf("The %s returned an unexpected response: %v", w.Service, re)
	default:
		a.Message = fmt.Sprintf("Something went wrong: %v", err)
	}
	return a
}
