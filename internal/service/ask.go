package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"floodwatch/internal/model"
)

// NoResponse is shown when a well-formed reply carries neither answer key.
const NoResponse = "No response."

type AskService struct {
	ep endpoint
}

func NewAskService(url string, timeout time.Duration) *AskService {
	return &AskService{ep: newEndpoint("ask", url, timeout)}
}

// Ask sends the question as typed. A blank question is rejected before any
// request is made.
func (s *AskService) Ask(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}
	data, err := s.ep.post(ctx, model.AskRequest{Query: query})
	if err != nil {
		return "", err
	}
	return decodeAnswer(data)
}

func decodeAnswer(data []byte) (string, error) {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return "", &ResponseError{Err: err}
	}
	for _, key := range []string{"response", "answer"} {
		if s, ok := body[key].(string); ok && s != "" {
			return s, nil
		}
	}
	return NoResponse, nil
}
