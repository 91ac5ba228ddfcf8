// Package suggest provides AI copy suggestions for the editor. The
// suggestion flow is best-effort: a failed or empty result never
// blocks editing, the UI just reports that none are available.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Suggestion is one proposed message/button-text pair
type Suggestion struct {
	Message    string `json:"message"`
	ButtonText string `json:"buttonText"`
}

// Suggester produces copy suggestions for a target page and button URL
type Suggester interface {
	Suggest(ctx context.Context, targetURL, buttonURL string) ([]Suggestion, error)
}

// HTTPSuggester calls an external suggestion endpoint
type HTTPSuggester struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSuggester creates a suggester against the given endpoint
func NewHTTPSuggester(endpoint string) *HTTPSuggester {
	return &HTTPSuggester{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type suggestRequest struct {
	TargetURL string `json:"targetUrl"`
	ButtonURL string `json:"buttonUrl"`
}

type suggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Suggest asks the endpoint for copy ideas. Zero to N results.
func (s *HTTPSuggester) Suggest(ctx context.Context, targetURL, buttonURL string) ([]Suggestion, error) {
	body, _ := json.Marshal(suggestRequest{TargetURL: targetURL, ButtonURL: buttonURL})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggestion endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion endpoint returned %d", resp.StatusCode)
	}

	var parsed suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return parsed.Suggestions, nil
}

// StaticSuggester serves a small canned set when no endpoint is
// configured, so the editor flow works out of the box.
type StaticSuggester struct{}

// Suggest returns the canned suggestions
func (StaticSuggester) Suggest(ctx context.Context, targetURL, buttonURL string) ([]Suggestion, error) {
	return []Suggestion{
		{Message: "Like what you're reading?", ButtonText: "Learn more"},
		{Message: "Ready to take the next step?", ButtonText: "Get started"},
		{Message: "Don't miss out on this.", ButtonText: "Check it out"},
	}, nil
}
