package engine

import (
	"context"

	"github.com/DjordjeVuckovic/docseg/internal/bench/suite"
	"github.com/DjordjeVuckovic/docseg/internal/types/span"
)

// Segmenter produces the predicted document spans for a suite case.
type Segmenter interface {
	Segment(ctx context.Context, c *suite.Case) ([]span.Span, error)
	Name() string
	Close() error
}
