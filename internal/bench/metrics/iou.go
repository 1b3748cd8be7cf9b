package metrics

import "github.com/DjordjeVuckovic/docseg/internal/types/span"

// Similarity computes the page-level Intersection-over-Union of two slots.
// An absent slot on either side yields 0; present spans are validated first.
//
// The intersection counts pages in [max(starts), min(ends)]. The union is the
// length of the smallest interval covering both spans, so disjoint spans
// share nothing and score 0.
func Similarity(a, b span.Slot) (float64, error) {
	sa, okA := a.Get()
	sb, okB := b.Get()

	if okA {
		if err := sa.Validate(); err != nil {
			return 0, err
		}
	}
	if okB {
		if err := sb.Validate(); err != nil {
			return 0, err
		}
	}
	if !okA || !okB {
		return 0, nil
	}

	return iou(sa, sb), nil
}

// IoU is Similarity for two present spans.
func IoU(a, b span.Span) (float64, error) {
	return Similarity(span.Present(a), span.Present(b))
}

// iou expects validated spans.
func iou(a, b span.Span) float64 {
	lo, hi := max(a.Start, b.Start), min(a.End, b.End)
	if hi < lo {
		return 0
	}
	inter := span.New(lo, hi).Len()
	union := span.New(min(a.Start, b.Start), max(a.End, b.End)).Len()

	return float64(inter) / float64(union)
}
