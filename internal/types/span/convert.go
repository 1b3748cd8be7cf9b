package span

import (
	"fmt"

	"github.com/DjordjeVuckovic/docseg/internal/apperr"
)

// FromBoundaries turns a list of document start pages into spans covering
// pages [0, pageCount). starts must begin at 0 and be strictly increasing.
func FromBoundaries(starts []int, pageCount int) ([]Span, error) {
	if pageCount <= 0 {
		if len(starts) == 0 {
			return []Span{}, nil
		}
		return nil, apperr.NewValidation(fmt.Sprintf("boundaries given for page count %d", pageCount))
	}
	if len(starts) == 0 {
		return nil, apperr.NewValidation("no boundaries given for a non-empty page sequence")
	}
	if starts[0] != 0 {
		return nil, apperr.NewValidation(fmt.Sprintf("first boundary must be 0, got %d", starts[0]))
	}

	spans := make([]Span, 0, len(starts))
	for i, start := range starts {
		if start >= pageCount {
			return nil, apperr.NewValidation(fmt.Sprintf("boundary %d is outside %d pages", start, pageCount))
		}
		end := pageCount - 1
		if i+1 < len(starts) {
			next := starts[i+1]
			if next <= start {
				return nil, apperr.NewValidation(fmt.Sprintf("boundaries must be strictly increasing: %d after %d", next, start))
			}
			end = next - 1
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans, nil
}

// FromPageCounts lays documents with the given page counts one after another,
// starting at page 0.
func FromPageCounts(counts []int) ([]Span, error) {
	spans := make([]Span, 0, len(counts))
	next := 0
	for i, c := range counts {
		if c <= 0 {
			return nil, apperr.NewValidation(fmt.Sprintf("document %d has %d pages", i, c))
		}
		spans = append(spans, Span{Start: next, End: next + c - 1})
		next += c
	}
	return spans, nil
}

// ValidateAll checks every span and reports the first malformed one with its position.
func ValidateAll(spans []Span) error {
	for i, s := range spans {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("span %d: %w", i, err)
		}
	}
	return nil
}
