package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		starts    []int
		pageCount int
		want      []Span
		wantErr   string
	}{
		{
			name:      "two documents",
			starts:    []int{0, 5},
			pageCount: 10,
			want:      []Span{New(0, 4), New(5, 9)},
		},
		{
			name:      "single document",
			starts:    []int{0},
			pageCount: 3,
			want:      []Span{New(0, 2)},
		},
		{
			name:      "one page documents",
			starts:    []int{0, 1, 2},
			pageCount: 3,
			want:      []Span{New(0, 0), New(1, 1), New(2, 2)},
		},
		{
			name:      "empty sequence",
			starts:    nil,
			pageCount: 0,
			want:      []Span{},
		},
		{
			name:      "must start at zero",
			starts:    []int{1, 4},
			pageCount: 6,
			wantErr:   "first boundary must be 0",
		},
		{
			name:      "not increasing",
			starts:    []int{0, 4, 4},
			pageCount: 6,
			wantErr:   "strictly increasing",
		},
		{
			name:      "outside page count",
			starts:    []int{0, 6},
			pageCount: 6,
			wantErr:   "outside",
		},
		{
			name:      "missing boundaries",
			starts:    nil,
			pageCount: 6,
			wantErr:   "no boundaries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromBoundaries(tt.starts, tt.pageCount)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromPageCounts(t *testing.T) {
	got, err := FromPageCounts([]int{2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []Span{New(0, 1), New(2, 2), New(3, 5)}, got)

	_, err = FromPageCounts([]int{2, 0})
	assert.Error(t, err)
}

func TestValidateAll(t *testing.T) {
	assert.NoError(t, ValidateAll([]Span{New(0, 1), New(2, 3)}))

	err := ValidateAll([]Span{New(0, 1), New(3, 2)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "span 1")
}
