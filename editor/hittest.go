package editor

import (
	"github.com/iw2rmb/autolist/internal/grapheme"
)

// offsetAt maps viewport-local cell coordinates to a document offset.
// Clicks in the gutter or the indent land on the row start; clicks past the
// text land on the row end.
func (m *Model) offsetAt(x, y int) int {
	if m.buf == nil {
		return 0
	}
	lay := m.layout()
	if len(lay.rows) == 0 {
		return 0
	}

	r := lay.rows[clampInt(m.viewport.YOffset+y, 0, len(lay.rows)-1)]
	cell := x - m.gutterWidth(len(lay.lines))
	if !m.cfg.SoftWrap {
		cell += m.xOffset
	}
	if cell <= r.indent {
		return r.start
	}

	col := r.indent
	off := r.start
	for _, c := range grapheme.Split(string(lay.text[r.start:r.end])) {
		w := grapheme.Width(c, col, lay.tabWidth)
		if cell < col+w {
			return off
		}
		col += w
		off += len([]rune(c))
	}
	if !r.last && off > r.start {
		// The row end belongs to the next row; stay on this one.
		return r.start + grapheme.Prev(string(lay.text[r.start:r.end]), r.end-r.start)
	}
	return r.end
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
