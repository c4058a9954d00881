package service

import (
	"context"
	"encoding/json"
	"time"

	"floodwatch/internal/model"
)

type PredictService struct {
	ep endpoint
}

func NewPredictService(url string, timeout time.Duration) *PredictService {
	return &PredictService{ep: newEndpoint("predict", url, timeout)}
}

// Predict posts the sensor form and reads the four fields the dashboard shows.
// Any missing or mistyped field is returned as a *ResponseError.
func (s *PredictService) Predict(ctx context.Context, in model.FloodInput) (*model.Prediction, error) {
	data, err := s.ep.post(ctx, in)
	if err != nil {
		return nil, err
	}
	return decodePrediction(data)
}

func decodePrediction(data []byte) (*model.Prediction, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &ResponseError{Err: err}
	}

	p := &model.Prediction{Raw: json.RawMessage(data)}
	targets := []struct {
		key string
		dst any
	}{
		{"flood_probability_percent", &p.FloodProbability},
		{"flood_risk_score_percent", &p.RiskScore},
		{"final_flood", &p.FinalFlood},
		{"model_votes", &p.ModelVotes},
	}
	for _, t := range targets {
		raw, ok := fields[t.key]
		if !ok || string(raw) == "null" {
			return nil, &ResponseError{Field: t.key, Err: errMissing}
		}
		if err := json.Unmarshal(raw, t.dst); err != nil {
			return nil, &ResponseError{Field: t.key, Err: err}
		}
	}
	return p, nil
}
