package matching

import (
	"errors"
	"math"
	"testing"

	"github.com/DjordjeVuckovic/docseg/internal/apperr"
	"github.com/DjordjeVuckovic/docseg/internal/bench/metrics"
	"github.com/DjordjeVuckovic/docseg/internal/types/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spans(pairs ...[2]int) []span.Span {
	out := make([]span.Span, len(pairs))
	for i, p := range pairs {
		out[i] = span.New(p[0], p[1])
	}
	return out
}

func TestMatch_Scenarios(t *testing.T) {
	t.Run("identical single span", func(t *testing.T) {
		truth := spans([2]int{0, 2})
		pred := spans([2]int{0, 2})

		res, err := Match(truth, pred)
		require.NoError(t, err)
		assert.Equal(t, 1, res.N)
		require.Len(t, res.Pairs, 1)
		assert.Equal(t, 1.0, res.Pairs[0].Similarity)
		assert.Equal(t, 1.0, res.Score())
	})

	t.Run("disjoint single span", func(t *testing.T) {
		score, err := GlobalScore(spans([2]int{0, 2}), spans([2]int{5, 7}))
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("missing prediction is padded", func(t *testing.T) {
		truth := spans([2]int{0, 1}, [2]int{2, 3})
		pred := spans([2]int{0, 1})

		res, err := Match(truth, pred)
		require.NoError(t, err)
		assert.Equal(t, 2, res.N)
		require.Len(t, res.Pairs, 2)

		first := res.Pairs[0]
		p, ok := first.Pred.Get()
		require.True(t, ok)
		assert.Equal(t, span.New(0, 1), p)
		assert.Equal(t, 1.0, first.Similarity)

		second := res.Pairs[1]
		tr, ok := second.True.Get()
		require.True(t, ok)
		assert.Equal(t, span.New(2, 3), tr)
		assert.True(t, second.Pred.IsAbsent())
		assert.Equal(t, 0.0, second.Similarity)

		assert.Equal(t, 0.5, res.Score())
	})

	t.Run("both empty", func(t *testing.T) {
		res, err := Match(nil, []span.Span{})
		require.NoError(t, err)
		assert.Equal(t, 0, res.N)
		assert.NotNil(t, res.Pairs)
		assert.Empty(t, res.Pairs)

		score, err := GlobalScore(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 1.0, score)
	})

	t.Run("order of predictions does not matter", func(t *testing.T) {
		truth := spans([2]int{0, 4}, [2]int{5, 9})
		pred := spans([2]int{5, 9}, [2]int{0, 4})

		res, err := Match(truth, pred)
		require.NoError(t, err)
		for _, p := range res.Pairs {
			tr, _ := p.True.Get()
			pr, _ := p.Pred.Get()
			assert.Equal(t, tr, pr)
		}
		assert.Equal(t, 1.0, res.Score())
	})
}

func TestMatch_ExtraPredictionIsPadded(t *testing.T) {
	truth := spans([2]int{0, 3})
	pred := spans([2]int{10, 12}, [2]int{0, 3}, [2]int{4, 5})

	res, err := Match(truth, pred)
	require.NoError(t, err)
	assert.Equal(t, 3, res.N)

	assert.Equal(t, 1.0, res.Pairs[0].Similarity)
	assert.True(t, res.Pairs[1].True.IsAbsent())
	assert.True(t, res.Pairs[2].True.IsAbsent())
	assert.InDelta(t, 1.0/3.0, res.Score(), 1e-12)
}

func TestMatch_DoesNotMutateInputs(t *testing.T) {
	truth := make([]span.Span, 2, 10)
	truth[0], truth[1] = span.New(0, 1), span.New(2, 3)
	pred := make([]span.Span, 1, 10)
	pred[0] = span.New(0, 3)

	_, err := Match(truth, pred)
	require.NoError(t, err)

	assert.Equal(t, spans([2]int{0, 1}, [2]int{2, 3}), truth)
	assert.Equal(t, spans([2]int{0, 3}), pred)
	assert.Equal(t, span.Span{}, pred[:2][1], "spare capacity must stay untouched")
}

func TestMatch_MalformedSpan(t *testing.T) {
	cases := map[string]struct {
		truth, pred []span.Span
	}{
		"malformed truth":                {spans([2]int{3, 1}), spans([2]int{0, 1})},
		"malformed prediction":           {spans([2]int{0, 1}), spans([2]int{0, 1}, [2]int{5, 2})},
		"malformed with empty other side": {spans([2]int{-1, 2}), nil},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := Match(tc.truth, tc.pred)
			require.Error(t, err)
			var ve *apperr.ValidationError
			assert.True(t, errors.As(err, &ve))
			assert.Empty(t, res.Pairs)

			_, err = GlobalScore(tc.truth, tc.pred)
			assert.Error(t, err)
		})
	}
}

func TestMatch_LargeIndices(t *testing.T) {
	res, err := Match(spans([2]int{0, math.MaxInt}), spans([2]int{1, math.MaxInt}))
	require.NoError(t, err)
	require.Len(t, res.Pairs, 1)
	assert.InDelta(t, 1.0, res.Score(), 1e-9)
}

func TestMatch_OptimalAgainstBruteForce(t *testing.T) {
	cases := []struct {
		truth, pred []span.Span
	}{
		{spans([2]int{0, 3}, [2]int{4, 7}), spans([2]int{0, 5}, [2]int{6, 7})},
		{spans([2]int{0, 1}, [2]int{2, 5}, [2]int{6, 9}), spans([2]int{0, 4}, [2]int{5, 9})},
		{spans([2]int{0, 9}), spans([2]int{0, 2}, [2]int{3, 5}, [2]int{6, 9})},
		{
			spans([2]int{0, 2}, [2]int{3, 3}, [2]int{4, 8}, [2]int{9, 12}),
			spans([2]int{0, 3}, [2]int{4, 5}, [2]int{6, 10}, [2]int{11, 12}),
		},
		{
			spans([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3}),
			spans([2]int{0, 1}, [2]int{2, 3}),
		},
		{
			spans([2]int{2, 6}, [2]int{0, 4}, [2]int{5, 9}),
			spans([2]int{1, 5}, [2]int{3, 7}, [2]int{0, 9}, [2]int{6, 8}),
		},
	}

	for i, tc := range cases {
		res, err := Match(tc.truth, tc.pred)
		require.NoError(t, err)

		best := bruteForceBest(t, tc.truth, tc.pred)
		assert.InDelta(t, best, res.Total(), 1e-9, "case %d", i)

		score := res.Score()
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestMatch_Deterministic(t *testing.T) {
	truth := spans([2]int{0, 1}, [2]int{2, 3}, [2]int{4, 5})
	pred := spans([2]int{10, 11}, [2]int{12, 13}, [2]int{14, 15})

	first, err := Match(truth, pred)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Match(truth, pred)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, 0.0, first.Score())
}

func TestEvaluate(t *testing.T) {
	truth := spans([2]int{0, 1}, [2]int{2, 3})
	pred := spans([2]int{0, 1})

	scores, res, err := Evaluate(truth, pred, metrics.DefaultIoUThreshold)
	require.NoError(t, err)
	assert.Equal(t, 2, res.N)
	assert.Equal(t, 0.5, scores.GlobalIoU)
	assert.Equal(t, 1, scores.TruePositives)
	assert.Equal(t, 1, scores.ExactMatches)
	assert.Equal(t, 1.0, scores.Precision)
	assert.Equal(t, 0.5, scores.Recall)
}

// bruteForceBest returns the best total similarity over every pairing of the
// padded collections.
func bruteForceBest(t *testing.T, truth, pred []span.Span) float64 {
	t.Helper()
	n := max(len(truth), len(pred))
	rows := span.Pad(truth, n)
	cols := span.Pad(pred, n)

	sim := make([][]float64, n)
	for i := range rows {
		sim[i] = make([]float64, n)
		for j := range cols {
			s, err := metrics.Similarity(rows[i], cols[j])
			require.NoError(t, err)
			sim[i][j] = s
		}
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(-1)
	var walk func(k int)
	walk = func(k int) {
		if k == n {
			var total float64
			for i, j := range perm {
				total += sim[i][j]
			}
			best = math.Max(best, total)
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0)
	return best
}
