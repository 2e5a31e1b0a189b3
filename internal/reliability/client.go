package reliability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const analyzePath = "/api/reliability/analyze"

// Client talks to the remote reliability analysis service. Construct it with
// NewClient and inject it where needed; there is no shared global instance.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Analyze attempts the remote analysis (one retry), then falls back to the
// local approximation. It always returns a complete Analysis.
func (c *Client) Analyze(ctx context.Context, req AnalysisRequest) Analysis {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		result, err := c.remote(ctx, req)
		if err == nil {
			return result
		}
		lastErr = err
	}
	log.Warn().Err(lastErr).Str("equipment", req.Equipment.ID).
		Msg("remote reliability analysis unavailable, using local approximation")
	return Fallback(req)
}

func (c *Client) remote(ctx context.Context, req AnalysisRequest) (Analysis, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Analysis{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return Analysis{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Analysis{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return Analysis{}, fmt.Errorf("analyze failed: %s", resp.Status)
	}

	var out Analysis
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Analysis{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
