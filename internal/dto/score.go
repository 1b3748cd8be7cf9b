package dto

import (
	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/docseg/internal/bench/matching"
	"github.com/DjordjeVuckovic/docseg/internal/bench/metrics"
	"github.com/DjordjeVuckovic/docseg/internal/types/span"
)

// SpansRequest carries the two span collections to compare.
type SpansRequest struct {
	TrueSpans []span.Span `json:"true_spans"`
	PredSpans []span.Span `json:"pred_spans"`
}

type EvaluateRequest struct {
	SpansRequest
	// IoUThreshold overrides the server default when set.
	IoUThreshold *float64 `json:"iou_threshold,omitempty"`
}

type MatchResponse struct {
	RequestID uuid.UUID       `json:"request_id"`
	N         int             `json:"n"`
	Pairs     []matching.Pair `json:"pairs"`
	Score     float64         `json:"score"`
}

type ScoreResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	N         int       `json:"n"`
	Score     float64   `json:"score"`
}

type EvaluateResponse struct {
	RequestID    uuid.UUID `json:"request_id"`
	N            int       `json:"n"`
	IoUThreshold float64   `json:"iou_threshold"`
	metrics.ScoreSet
}

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}
