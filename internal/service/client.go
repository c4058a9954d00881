package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"floodwatch/internal/logger"
)

// endpoint issues exactly one JSON POST per call. No retries.
type endpoint struct {
	name   string
	url    string
	client *http.Client
}

func newEndpoint(name, url string, timeout time.Duration) endpoint {
	return endpoint{name: name, url: url, client: &http.Client{Timeout: timeout}}
}

// post returns the body of a 200 reply.
func (e endpoint) post(ctx context.Context, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		logger.Warn(e.name+".transport", "url", e.url, "err", err, "ms", time.Since(start).Milliseconds())
		return nil, &TransportError{URL: e.url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn(e.name+".transport", "url", e.url, "err", err, "ms", time.Since(start).Milliseconds())
		return nil, &TransportError{URL: e.url, Err: fmt.Errorf("read body: %w", err)}
	}
	logger.Info(e.name+".reply", "url", e.url, "status", resp.StatusCode, "bytes", len(data), "ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
