// Package web holds the embedded page templates and stylesheet.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"floodwatch/internal/chart"
	"floodwatch/internal/model"
	"floodwatch/internal/view"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

var (
	md     = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy = bluemonday.UGCPolicy()
)

func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"donut":     chart.Donut,
		"gauge":     chart.Gauge,
		"histogram": chart.Histogram,
		"markdown":  Markdown,
	}
}

// Markdown renders an answer to sanitised HTML. Unrenderable input is shown
// as escaped text.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}

type Lag struct {
	Name  string
	Label string
	Value int
}

type FloodPage struct {
	State  view.State
	Input  model.FloodInput
	Lags   []Lag
	Months []int
	Result *view.Assessment
	Alert  *view.Alert
}

func NewFloodPage(in model.FloodInput) FloodPage {
	labels := []string{"Flood Yesterday?", "Flood 2 Days Ago?", "Flood 3 Days Ago?", "Flood 4 Days Ago?", "Flood 5 Days Ago?"}
	lags := make([]Lag, 0, len(labels))
	for i, v := range in.Lags() {
		lags = append(lags, Lag{Name: fmt.Sprintf("flood_lag_%d", i+1), Label: labels[i], Value: v})
	}
	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}
	return FloodPage{State: view.Idle, Input: in, Lags: lags, Months: months}
}

type AskPage struct {
	State  view.State
	Query  string
	Answer string
	Alert  *view.Alert
}
