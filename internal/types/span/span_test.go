package span

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/DjordjeVuckovic/docseg/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		span    Span
		wantErr bool
	}{
		{name: "single page", span: New(0, 0)},
		{name: "multi page", span: New(3, 9)},
		{name: "start after end", span: New(5, 4), wantErr: true},
		{name: "negative start", span: New(-1, 4), wantErr: true},
		{name: "negative end", span: New(0, -2), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.span.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *apperr.ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}

func TestSpan_Len(t *testing.T) {
	assert.Equal(t, uint64(1), New(4, 4).Len())
	assert.Equal(t, uint64(5), New(0, 4).Len())
	assert.Equal(t, uint64(math.MaxInt)+1, New(0, math.MaxInt).Len())
}

func TestSlot(t *testing.T) {
	var zero Slot
	assert.True(t, zero.IsAbsent())
	assert.True(t, Absent().IsAbsent())

	sl := Present(New(1, 2))
	s, ok := sl.Get()
	assert.True(t, ok)
	assert.Equal(t, New(1, 2), s)
	assert.Equal(t, "[1,2]", sl.String())
	assert.Equal(t, "absent", Absent().String())
}

func TestSlot_JSON(t *testing.T) {
	data, err := json.Marshal([]Slot{Present(New(0, 2)), Absent()})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"start_idx":0,"end_idx":2},null]`, string(data))

	var back []Slot
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 2)
	s, ok := back[0].Get()
	assert.True(t, ok)
	assert.Equal(t, New(0, 2), s)
	assert.True(t, back[1].IsAbsent())
}

func TestPad(t *testing.T) {
	t.Run("pads with absent slots", func(t *testing.T) {
		in := []Span{New(0, 1), New(2, 3)}
		slots := Pad(in, 4)
		require.Len(t, slots, 4)
		assert.False(t, slots[0].IsAbsent())
		assert.False(t, slots[1].IsAbsent())
		assert.True(t, slots[2].IsAbsent())
		assert.True(t, slots[3].IsAbsent())
	})

	t.Run("never shrinks", func(t *testing.T) {
		slots := Pad([]Span{New(0, 1), New(2, 3)}, 1)
		assert.Len(t, slots, 2)
	})

	t.Run("does not touch the input", func(t *testing.T) {
		in := make([]Span, 1, 8)
		in[0] = New(0, 4)
		_ = Pad(in, 5)
		assert.Len(t, in, 1)
		assert.Equal(t, New(0, 4), in[0])
		assert.Equal(t, Span{}, in[:2][1])
	})

	t.Run("nil input", func(t *testing.T) {
		assert.Empty(t, Pad(nil, 0))
		assert.Len(t, Pad(nil, 2), 2)
	})
}
