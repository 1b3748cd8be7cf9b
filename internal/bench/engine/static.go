package engine

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/docseg/internal/bench/suite"
	"github.com/DjordjeVuckovic/docseg/internal/types/span"
)

var ErrNoPrediction = errors.New("no prediction for system")

// StaticSegmenter replays the predictions stored in the suite under its name.
type StaticSegmenter struct {
	name string
}

func NewStaticSegmenter(name string) *StaticSegmenter {
	return &StaticSegmenter{name: name}
}

func (s *StaticSegmenter) Segment(_ context.Context, c *suite.Case) ([]span.Span, error) {
	spans, ok, err := c.PredictionSpans(s.name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoPrediction
	}
	return spans, nil
}

func (s *StaticSegmenter) Name() string { return s.name }
func (s *StaticSegmenter) Close() error { return nil }
