// Package snapshot records the spans remote segmenters return for a suite so
// a later run can replay them as static predictions.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/docseg/internal/bench/engine"
	"github.com/DjordjeVuckovic/docseg/internal/bench/suite"
)

type File struct {
	SuiteName string  `yaml:"suite_name"`
	Cases     []Entry `yaml:"cases"`
}

type Entry struct {
	CaseID      string                        `yaml:"case_id"`
	Predictions map[string]suite.Segmentation `yaml:"predictions"`
}

// Collect asks every segmenter for every case. A failing segmenter is logged
// and skipped for that case.
func Collect(ctx context.Context, s *suite.TestSuite, segmenters map[string]engine.Segmenter) (*File, error) {
	f := &File{
		SuiteName: s.Name,
		Cases:     make([]Entry, 0, len(s.Cases)),
	}

	for i := range s.Cases {
		c := &s.Cases[i]
		entry := Entry{
			CaseID:      c.ID,
			Predictions: make(map[string]suite.Segmentation, len(segmenters)),
		}
		for name, seg := range segmenters {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			spans, err := seg.Segment(ctx, c)
			if err != nil {
				slog.Warn("snapshot segment failed", "case", c.ID, "system", name, "error", err)
				continue
			}
			pairs := make([][2]int, len(spans))
			for k, sp := range spans {
				pairs[k] = [2]int{sp.Start, sp.End}
			}
			entry.Predictions[name] = suite.Segmentation{Spans: pairs}
		}
		f.Cases = append(f.Cases, entry)
	}

	return f, nil
}

func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse snapshot file: %w", err)
	}
	return &f, nil
}

func WriteFile(f *File, path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal snapshot file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	return nil
}

// MergeIntoSuite returns a copy of s whose cases also carry the recorded
// predictions. Recorded predictions replace suite predictions of the same
// system; entries for unknown cases are ignored.
func MergeIntoSuite(f *File, s *suite.TestSuite) *suite.TestSuite {
	byCase := make(map[string]map[string]suite.Segmentation, len(f.Cases))
	for _, e := range f.Cases {
		byCase[e.CaseID] = e.Predictions
	}

	merged := *s
	merged.Cases = make([]suite.Case, len(s.Cases))
	copy(merged.Cases, s.Cases)

	for i, c := range merged.Cases {
		recorded, ok := byCase[c.ID]
		if !ok {
			continue
		}
		preds := make(map[string]suite.Segmentation, len(c.Predictions)+len(recorded))
		for name, seg := range c.Predictions {
			preds[name] = seg
		}
		for name, seg := range recorded {
			preds[name] = seg
		}
		merged.Cases[i].Predictions = preds
	}

	return &merged
}
