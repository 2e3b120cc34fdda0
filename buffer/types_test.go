package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparePos(t *testing.T) {
	t.Run("row", func(t *testing.T) {
		assert.Negative(t, ComparePos(Pos{Row: 0, Col: 0}, Pos{Row: 1, Col: 0}))
		assert.Positive(t, ComparePos(Pos{Row: 2, Col: 0}, Pos{Row: 1, Col: 999}))
	})

	t.Run("col", func(t *testing.T) {
		assert.Negative(t, ComparePos(Pos{Row: 1, Col: 0}, Pos{Row: 1, Col: 1}))
	})

	t.Run("equal", func(t *testing.T) {
		assert.Zero(t, ComparePos(Pos{Row: 3, Col: 4}, Pos{Row: 3, Col: 4}))
	})
}

func TestSpan_NormalizesBounds(t *testing.T) {
	assert.Equal(t, Range{Location: 2, Length: 3}, Span(5, 2))
	assert.Equal(t, 5, Span(2, 5).End())
	assert.True(t, Caret(4).IsCollapsed(), "caret must be collapsed")
}

func TestClampRange(t *testing.T) {
	cases := []struct {
		in   Range
		want Range
	}{
		{in: Range{Location: -3, Length: 2}, want: Range{Location: 0, Length: 0}},
		{in: Range{Location: 2, Length: 99}, want: Range{Location: 2, Length: 3}},
		{in: Range{Location: 99, Length: 1}, want: Range{Location: 5, Length: 0}},
		{in: Range{Location: 1, Length: 2}, want: Range{Location: 1, Length: 2}},
		{in: Range{Location: 4, Length: -2}, want: Range{Location: 2, Length: 2}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClampRange(tc.in, 5), "ClampRange(%v)", tc.in)
	}
}
