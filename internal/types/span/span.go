// Package span defines page-index ranges that describe one logical document
// inside a longer page sequence, and the Slot type used to pad span
// collections with explicit "absent" entries.
package span

import (
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/docseg/internal/apperr"
)

// Span is the inclusive page range [Start, End] of one document.
type Span struct {
	Start int `json:"start_idx" yaml:"start_idx"`
	End   int `json:"end_idx" yaml:"end_idx"`
}

func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// Validate reports whether s is a well-formed range over non-negative page indices.
func (s Span) Validate() error {
	if s.Start < 0 || s.End < 0 {
		return apperr.NewValidation(fmt.Sprintf("span %s has a negative page index", s))
	}
	if s.Start > s.End {
		return apperr.NewValidation(fmt.Sprintf("span %s: start_idx must not exceed end_idx", s))
	}
	return nil
}

// Len is the number of pages covered by a validated span. It is unsigned so
// that [0, math.MaxInt] still has a length.
func (s Span) Len() uint64 {
	return uint64(s.End-s.Start) + 1
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d]", s.Start, s.End)
}

// Slot holds either a present Span or nothing. The zero value is absent.
type Slot struct {
	span    Span
	present bool
}

func Present(s Span) Slot {
	return Slot{span: s, present: true}
}

func Absent() Slot {
	return Slot{}
}

func (sl Slot) Get() (Span, bool) {
	return sl.span, sl.present
}

func (sl Slot) IsAbsent() bool {
	return !sl.present
}

func (sl Slot) String() string {
	if !sl.present {
		return "absent"
	}
	return sl.span.String()
}

func (sl Slot) MarshalJSON() ([]byte, error) {
	if !sl.present {
		return []byte("null"), nil
	}
	return json.Marshal(sl.span)
}

func (sl *Slot) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*sl = Absent()
		return nil
	}
	var s Span
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*sl = Present(s)
	return nil
}

// Pad returns a new slice of length max(n, len(spans)) holding every span
// of spans followed by absent slots. The input slice is never modified.
func Pad(spans []Span, n int) []Slot {
	size := max(n, len(spans))
	slots := make([]Slot, size)
	for i, s := range spans {
		slots[i] = Present(s)
	}
	return slots
}
