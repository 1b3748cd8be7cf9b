package suite

import (
	"fmt"
	"sort"

	"github.com/DjordjeVuckovic/docseg/internal/types/span"
)

type TestSuite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Cases       []Case `yaml:"cases" schema:"required,minItems=1"`
}

// Case is one page sequence with its ground-truth segmentation and the
// segmentations produced by each system under test.
type Case struct {
	ID          string                  `yaml:"id" schema:"required,minLength=1"`
	Description string                  `yaml:"description"`
	Pages       int                     `yaml:"pages,omitempty" schema:"minimum=0"`
	Truth       Segmentation            `yaml:"truth"`
	Predictions map[string]Segmentation `yaml:"predictions"`
}

// Segmentation lists documents either as explicit [start, end] page pairs or
// as the pages on which each document starts.
type Segmentation struct {
	Spans      [][2]int `yaml:"spans,omitempty"`
	Boundaries []int    `yaml:"boundaries,omitempty"`
}

func (s Segmentation) IsEmpty() bool {
	return len(s.Spans) == 0 && len(s.Boundaries) == 0
}

// Resolve converts the segmentation into spans. pages is only consulted for
// boundary lists.
func (s Segmentation) Resolve(pages int) ([]span.Span, error) {
	if len(s.Boundaries) > 0 {
		return span.FromBoundaries(s.Boundaries, pages)
	}
	out := make([]span.Span, len(s.Spans))
	for i, p := range s.Spans {
		out[i] = span.New(p[0], p[1])
	}
	return out, nil
}

func (s Segmentation) validate(pages int) error {
	if len(s.Spans) > 0 && len(s.Boundaries) > 0 {
		return fmt.Errorf("spans and boundaries are mutually exclusive")
	}
	if len(s.Boundaries) > 0 && pages <= 0 {
		return fmt.Errorf("boundaries require pages > 0")
	}
	return nil
}

func (c *Case) TruthSpans() ([]span.Span, error) {
	spans, err := c.Truth.Resolve(c.Pages)
	if err != nil {
		return nil, fmt.Errorf("case %q truth: %w", c.ID, err)
	}
	return spans, nil
}

// PredictionSpans returns the spans a system predicted for this case. The
// boolean is false when the suite holds no prediction for the system.
func (c *Case) PredictionSpans(system string) ([]span.Span, bool, error) {
	seg, ok := c.Predictions[system]
	if !ok {
		return nil, false, nil
	}
	spans, err := seg.Resolve(c.Pages)
	if err != nil {
		return nil, true, fmt.Errorf("case %q system %q: %w", c.ID, system, err)
	}
	return spans, true, nil
}

// Systems returns the sorted names of every system with at least one prediction.
func (s *TestSuite) Systems() []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range s.Cases {
		for name := range c.Predictions {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
