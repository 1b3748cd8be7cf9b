package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDecimal(t *testing.T) {
	tests := []struct {
		in       float64
		decimals int
		want     float64
	}{
		{3.14159, 2, 3.14},
		{0.666666666, 4, 0.6667},
		{0.25, 1, 0.3},
		{1, 6, 1},
		{-0.125, 2, -0.13},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundDecimal(tt.in, tt.decimals), 1e-12)
	}
}

func TestSplitTrimmed(t *testing.T) {
	assert.Nil(t, SplitTrimmed("", ","))
	assert.Equal(t, []string{"a", "b"}, SplitTrimmed(" a , ,b ", ","))
	assert.Nil(t, SplitTrimmed(" , ", ","))
}
