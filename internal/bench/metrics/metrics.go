package metrics

const DefaultIoUThreshold = 0.5

// Outcome is one row of a solved matching, reduced to what scoring needs.
type Outcome struct {
	Similarity  float64
	BothPresent bool
}

type ScoreSet struct {
	GlobalIoU      float64 `json:"global_iou"`
	MeanMatchedIoU float64 `json:"mean_matched_iou"`
	ExactMatches   int     `json:"exact_matches"`
	TruePositives  int     `json:"true_positives"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
	TrueCount      int     `json:"true_count"`
	PredCount      int     `json:"pred_count"`
}

// Compute derives the full score set of one matching. A pair counts as a
// true positive when both sides are present and its IoU reaches iouThreshold.
func Compute(outcomes []Outcome, trueCount, predCount int, iouThreshold float64) ScoreSet {
	s := ScoreSet{
		TrueCount: trueCount,
		PredCount: predCount,
	}

	var total, matchedTotal float64
	var matched int
	for _, o := range outcomes {
		total += o.Similarity
		if !o.BothPresent {
			continue
		}
		matched++
		matchedTotal += o.Similarity
		if o.Similarity == 1 {
			s.ExactMatches++
		}
		if o.Similarity >= iouThreshold && o.Similarity > 0 {
			s.TruePositives++
		}
	}

	s.GlobalIoU = GlobalIoU(total, max(trueCount, predCount))
	if matched > 0 {
		s.MeanMatchedIoU = matchedTotal / float64(matched)
	}

	s.Precision = ratio(s.TruePositives, predCount, trueCount == 0)
	s.Recall = ratio(s.TruePositives, trueCount, predCount == 0)
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}

	return s
}

// GlobalIoU averages a similarity total over n matched rows. Scoring nothing
// against nothing is a perfect match.
func GlobalIoU(total float64, n int) float64 {
	if n == 0 {
		return 1
	}
	v := total / float64(n)
	return min(max(v, 0), 1)
}

func ratio(num, den int, otherEmpty bool) float64 {
	if den == 0 {
		if otherEmpty {
			return 1
		}
		return 0
	}
	return float64(num) / float64(den)
}
