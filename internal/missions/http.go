package missions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxResponseBytes bounds the body read from the content service.
const maxResponseBytes = 64 << 10

// HTTPProvider fetches missions from a JSON endpoint. It POSTs
// {"run_count": n} and expects {"missions": [...]} back.
type HTTPProvider struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

// NewHTTPProvider creates a provider with a bounded request timeout.
func NewHTTPProvider(endpoint, apiKey string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPProvider{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Client:   &http.Client{Timeout: timeout},
	}
}

type missionsRequest struct {
	RunCount int `json:"run_count"`
}

type missionsResponse struct {
	Missions []Mission `json:"missions"`
}

// Missions implements Provider.
func (p *HTTPProvider) Missions(ctx context.Context, runCount int) ([]Mission, error) {
	if p == nil || p.Endpoint == "" || p.APIKey == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(missionsRequest{RunCount: runCount})
	if err != nil {
		return nil, fmt.Errorf("missions: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("missions: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("missions: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("missions: unexpected status %s", resp.Status)
	}

	var out missionsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("missions: decode response: %w", err)
	}
	return out.Missions, nil
}
