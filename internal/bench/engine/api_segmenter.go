package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/DjordjeVuckovic/docseg/internal/bench/suite"
	"github.com/DjordjeVuckovic/docseg/internal/types/span"
)

// APISegmenter asks a remote segmentation service to split a case.
type APISegmenter struct {
	name    string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

type APIOption func(*APISegmenter)

// WithRateLimit spaces requests so no more than rps are sent per second.
func WithRateLimit(rps float64) APIOption {
	return func(s *APISegmenter) {
		if rps > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

func NewAPISegmenter(name, baseURL string, opts ...APIOption) *APISegmenter {
	s := &APISegmenter{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type apiRequest struct {
	CaseID string `json:"case_id"`
	Pages  int    `json:"pages"`
}

type apiResponse struct {
	Spans []span.Span `json:"spans"`
}

func (s *APISegmenter) Segment(ctx context.Context, c *suite.Case) ([]span.Span, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("api rate limit: %w", err)
		}
	}

	payload, err := json.Marshal(apiRequest{CaseID: c.ID, Pages: c.Pages})
	if err != nil {
		return nil, fmt.Errorf("api encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("api create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, string(body))
	}

	var out apiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("api parse response: %w", err)
	}
	if err := span.ValidateAll(out.Spans); err != nil {
		return nil, fmt.Errorf("api response: %w", err)
	}
	if out.Spans == nil {
		out.Spans = []span.Span{}
	}
	return out.Spans, nil
}

func (s *APISegmenter) Name() string { return s.name }
func (s *APISegmenter) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
