// Package matching pairs predicted document spans with ground-truth spans so
// that total IoU is maximal, and reduces the pairing to a single score.
package matching

import (
	"fmt"

	"github.com/DjordjeVuckovic/docseg/internal/apperr"
	"github.com/DjordjeVuckovic/docseg/internal/bench/assign"
	"github.com/DjordjeVuckovic/docseg/internal/bench/metrics"
	"github.com/DjordjeVuckovic/docseg/internal/types/span"
)

// Pair is one row of a solved matching. Either side may be absent when the
// two collections differ in length.
type Pair struct {
	True       span.Slot `json:"true"`
	Pred       span.Slot `json:"pred"`
	Similarity float64   `json:"similarity"`
}

// Result lists N pairs in ground-truth order; padding rows come last.
type Result struct {
	Pairs []Pair `json:"pairs"`
	N     int    `json:"n"`
}

// Match finds the one-to-one pairing of truth and pred with maximal total
// similarity. Neither input slice is modified; the shorter side is padded
// with absent slots on a private copy.
func Match(truth, pred []span.Span) (Result, error) {
	n := max(len(truth), len(pred))
	if n == 0 {
		return Result{Pairs: []Pair{}, N: 0}, nil
	}

	rows := span.Pad(truth, n)
	cols := span.Pad(pred, n)

	sim, cost, err := buildMatrices(rows, cols)
	if err != nil {
		return Result{}, err
	}

	rowToCol, err := assign.Solve(cost)
	if err != nil {
		return Result{}, apperr.NewInternal("match", err)
	}
	if len(rowToCol) != n {
		return Result{}, apperr.NewInternal("match", fmt.Errorf("assignment has %d rows, want %d", len(rowToCol), n))
	}

	pairs := make([]Pair, n)
	for i, j := range rowToCol {
		pairs[i] = Pair{
			True:       rows[i],
			Pred:       cols[j],
			Similarity: sim[i][j],
		}
	}

	return Result{Pairs: pairs, N: n}, nil
}

// GlobalScore is the mean similarity of the optimal matching over the larger
// of the two collection sizes. Two empty collections score 1.
func GlobalScore(truth, pred []span.Span) (float64, error) {
	res, err := Match(truth, pred)
	if err != nil {
		return 0, err
	}
	return res.Score(), nil
}

// Total is the summed similarity of all pairs.
func (r Result) Total() float64 {
	var sum float64
	for _, p := range r.Pairs {
		sum += p.Similarity
	}
	return sum
}

// Score is the global score of an already solved matching.
func (r Result) Score() float64 {
	return metrics.GlobalIoU(r.Total(), r.N)
}

// Outcomes reduces the pairs to the form metrics.Compute consumes.
func (r Result) Outcomes() []metrics.Outcome {
	out := make([]metrics.Outcome, len(r.Pairs))
	for i, p := range r.Pairs {
		out[i] = metrics.Outcome{
			Similarity:  p.Similarity,
			BothPresent: !p.True.IsAbsent() && !p.Pred.IsAbsent(),
		}
	}
	return out
}

// Evaluate matches truth against pred and computes the full score set.
func Evaluate(truth, pred []span.Span, iouThreshold float64) (metrics.ScoreSet, Result, error) {
	res, err := Match(truth, pred)
	if err != nil {
		return metrics.ScoreSet{}, Result{}, err
	}
	return metrics.Compute(res.Outcomes(), len(truth), len(pred), iouThreshold), res, nil
}

func buildMatrices(rows, cols []span.Slot) (sim, cost [][]float64, err error) {
	n := len(rows)
	sim = make([][]float64, n)
	cost = make([][]float64, n)
	for i, t := range rows {
		sim[i] = make([]float64, n)
		cost[i] = make([]float64, n)
		for j, p := range cols {
			s, err := metrics.Similarity(t, p)
			if err != nil {
				return nil, nil, fmt.Errorf("similarity of true %d and predicted %d: %w", i, j, err)
			}
			sim[i][j] = s
			cost[i][j] = 1 - s
		}
	}
	return sim, cost, nil
}
