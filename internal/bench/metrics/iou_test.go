package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/DjordjeVuckovic/docseg/internal/apperr"
	"github.com/DjordjeVuckovic/docseg/internal/types/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b span.Slot
		want float64
	}{
		{
			name: "identical",
			a:    span.Present(span.New(0, 2)),
			b:    span.Present(span.New(0, 2)),
			want: 1.0,
		},
		{
			name: "single identical page",
			a:    span.Present(span.New(7, 7)),
			b:    span.Present(span.New(7, 7)),
			want: 1.0,
		},
		{
			name: "disjoint",
			a:    span.Present(span.New(0, 2)),
			b:    span.Present(span.New(5, 7)),
			want: 0.0,
		},
		{
			name: "adjacent",
			a:    span.Present(span.New(0, 2)),
			b:    span.Present(span.New(3, 5)),
			want: 0.0,
		},
		{
			name: "partial overlap",
			a:    span.Present(span.New(0, 3)),
			b:    span.Present(span.New(2, 5)),
			want: 2.0 / 6.0,
		},
		{
			name: "contained",
			a:    span.Present(span.New(0, 9)),
			b:    span.Present(span.New(2, 3)),
			want: 2.0 / 10.0,
		},
		{
			name: "shared boundary page",
			a:    span.Present(span.New(0, 4)),
			b:    span.Present(span.New(4, 9)),
			want: 1.0 / 10.0,
		},
		{
			name: "absent left",
			a:    span.Absent(),
			b:    span.Present(span.New(0, 2)),
			want: 0.0,
		},
		{
			name: "absent right",
			a:    span.Present(span.New(0, 2)),
			b:    span.Absent(),
			want: 0.0,
		},
		{
			name: "both absent",
			a:    span.Absent(),
			b:    span.Absent(),
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Similarity(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)

			rev, err := Similarity(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, got, rev, "similarity must be symmetric")
		})
	}
}

func TestSimilarity_Properties(t *testing.T) {
	var spans []span.Span
	for start := 0; start < 6; start++ {
		for end := start; end < 6; end++ {
			spans = append(spans, span.New(start, end))
		}
	}

	for _, a := range spans {
		self, err := IoU(a, a)
		require.NoError(t, err)
		assert.Equal(t, 1.0, self, "identity for %s", a)

		for _, b := range spans {
			ab, err := IoU(a, b)
			require.NoError(t, err)
			ba, err := IoU(b, a)
			require.NoError(t, err)

			assert.Equal(t, ab, ba, "symmetry for %s %s", a, b)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, 1.0)
			if a.End < b.Start || b.End < a.Start {
				assert.Zero(t, ab, "disjoint %s %s", a, b)
			}
		}
	}
}

func TestSimilarity_LargeIndices(t *testing.T) {
	whole := span.New(0, math.MaxInt)

	self, err := IoU(whole, whole)
	require.NoError(t, err)
	assert.Equal(t, 1.0, self)

	tail, err := IoU(whole, span.New(1, math.MaxInt))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tail, 1e-9)

	last, err := IoU(whole, span.New(math.MaxInt, math.MaxInt))
	require.NoError(t, err)
	assert.Greater(t, last, 0.0)
	assert.Less(t, last, 1e-9)

	far, err := IoU(span.New(0, 0), span.New(math.MaxInt, math.MaxInt))
	require.NoError(t, err)
	assert.Zero(t, far)
}

func TestSimilarity_Malformed(t *testing.T) {
	bad := span.Present(span.New(4, 1))

	cases := map[string][2]span.Slot{
		"left":            {bad, span.Present(span.New(0, 2))},
		"right":           {span.Present(span.New(0, 2)), bad},
		"against absent":  {bad, span.Absent()},
		"negative offset": {span.Present(span.New(-2, 1)), span.Present(span.New(0, 1))},
	}

	for name, pair := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Similarity(pair[0], pair[1])
			require.Error(t, err)
			var ve *apperr.ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}
