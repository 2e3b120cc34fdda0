package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/autolist/autoformat"
	"github.com/iw2rmb/autolist/buffer"
	"github.com/iw2rmb/autolist/internal/grapheme"
)

// layoutLine is one paragraph of the document.
type layoutLine struct {
	start, end int
	attrs      buffer.Attributes
	markerLen  int
}

// layoutRow is one visual row: a slice of a paragraph plus its leading
// indent in cells.
type layoutRow struct {
	line       int
	start, end int
	indent     int
	first      bool
	last       bool
}

type layout struct {
	text     []rune
	tabWidth int
	lines    []layoutLine
	rows     []layoutRow
}

func (m *Model) layout() layout {
	lay := layout{text: m.buf.Runes(), tabWidth: m.cfg.TabWidth}

	start := 0
	for i := 0; i <= len(lay.text); i++ {
		if i < len(lay.text) && lay.text[i] != '\n' {
			continue
		}
		ln := layoutLine{start: start, end: i, attrs: m.buf.AttributesAt(start)}
		if _, n, ok := autoformat.ParseMarker(string(lay.text[start:i])); ok {
			ln.markerLen = n
		}
		lay.lines = append(lay.lines, ln)
		start = i + 1
	}

	width := 0
	if m.cfg.SoftWrap {
		width = m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth(len(lay.lines))
	}
	for i, ln := range lay.lines {
		lay.rows = append(lay.rows, lay.wrapLine(i, ln, width)...)
	}
	return lay
}

// wrapLine breaks a paragraph into rows no wider than width cells. A width
// of zero or less disables wrapping. Rows always hold at least one grapheme.
func (lay layout) wrapLine(idx int, ln layoutLine, width int) []layoutRow {
	first := layoutRow{line: idx, start: ln.start, end: ln.end, indent: ln.attrs.Paragraph.FirstLineHeadIndent, first: true, last: true}
	if width <= 0 || ln.start == ln.end {
		return []layoutRow{first}
	}

	var rows []layoutRow
	row := first
	row.last = false
	col := row.indent
	prev := 0
	text := string(lay.text[ln.start:ln.end])
	clusters := grapheme.Split(text)
	for i, end := range grapheme.Boundaries(text) {
		w := grapheme.Width(clusters[i], col, lay.tabWidth)
		if col+w > width && ln.start+prev > row.start {
			row.end = ln.start + prev
			rows = append(rows, row)
			row = layoutRow{line: idx, start: ln.start + prev, indent: ln.attrs.Paragraph.HeadIndent}
			col = row.indent
			w = grapheme.Width(clusters[i], col, lay.tabWidth)
		}
		col += w
		prev = end
	}
	row.end = ln.end
	row.last = true
	return append(rows, row)
}

// rowFor returns the index of the row displaying off. An offset at a wrap
// point belongs to the row that starts there.
func (lay layout) rowFor(off int) int {
	for i, r := range lay.rows {
		if off >= r.start && (off < r.end || (off == r.end && r.last)) {
			return i
		}
	}
	return len(lay.rows) - 1
}

// cursorCell returns the visual row and cell of off.
func (lay layout) cursorCell(off int) (row, cell int) {
	if len(lay.rows) == 0 {
		return 0, 0
	}
	row = lay.rowFor(off)
	r := lay.rows[row]
	cell = r.indent
	text := string(lay.text[r.start:off])
	for _, c := range grapheme.Split(text) {
		cell += grapheme.Width(c, cell, lay.tabWidth)
	}
	return row, cell
}

func (m *Model) gutterWidth(lines int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(lines) + 1
}

func (m *Model) contentWidth(lay layout) int {
	return m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth(len(lay.lines))
}

func gutterDigits(lines int) int {
	if lines < 1 {
		lines = 1
	}
	return len(fmt.Sprint(lines))
}

// span is a run of cells rendered with one style.
type span struct {
	text  string
	width int
	style lipgloss.Style
	// blank spans may be cut at any cell.
	blank bool
}

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}
	lay := m.layout()
	cursor := m.buf.Cursor()
	sel := m.buf.Selection()
	digits := gutterDigits(len(lay.lines))

	left, right := 0, -1
	if w := m.contentWidth(lay); !m.cfg.SoftWrap && w > 0 {
		left, right = m.xOffset, m.xOffset+w
	}

	cursorRow := lay.rowFor(cursor)
	out := make([]string, 0, len(lay.rows))
	for i, r := range lay.rows {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && i == cursorRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			num := fmt.Sprintf("%*s", digits, "")
			if r.first {
				num = fmt.Sprintf("%*d", digits, r.line+1)
			}
			sb.WriteString(numStyle.Render(num))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(renderSpans(m.rowSpans(lay, r, cursor, sel), left, right))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) rowSpans(lay layout, r layoutRow, cursor int, sel buffer.Range) []span {
	st := m.cfg.Style
	ln := lay.lines[r.line]

	var spans []span
	if r.indent > 0 {
		spans = append(spans, span{text: strings.Repeat(" ", r.indent), width: r.indent, style: st.Text, blank: true})
	}

	col := r.indent
	off := r.start
	for _, c := range grapheme.Split(string(lay.text[r.start:r.end])) {
		w := grapheme.Width(c, col, lay.tabWidth)
		text, blank := c, grapheme.IsSpace(c)
		if c == "\t" {
			text = strings.Repeat(" ", w)
		}

		style := attributeStyle(st.Text, m.buf.AttributesAt(off))
		if off < ln.start+ln.markerLen {
			style = st.Marker.Inherit(style)
		}
		switch {
		case m.focused && off == cursor:
			style = st.Cursor.Inherit(style)
		case !sel.IsCollapsed() && off >= sel.Location && off < sel.End():
			style = st.Selection.Inherit(style)
		}

		spans = append(spans, span{text: text, width: w, style: style, blank: blank})
		col += w
		off += len([]rune(c))
	}

	if m.focused && cursor == r.end && r.last {
		// Cursor at the end of a paragraph is drawn as one blank cell.
		spans = append(spans, span{text: " ", width: 1, style: st.Cursor, blank: true})
	}
	return spans
}

// renderSpans renders the cells of spans within [left, right). A negative
// right renders everything. Wide graphemes cut by the window become blanks.
func renderSpans(spans []span, left, right int) string {
	var sb strings.Builder
	col := 0
	for _, sp := range spans {
		l, r := col, col+sp.width
		col = r
		if right < 0 {
			sb.WriteString(sp.style.Render(sp.text))
			continue
		}
		cl, cr := maxInt(l, left), minInt(r, right)
		if cl >= cr {
			continue
		}
		if cl == l && cr == r {
			sb.WriteString(sp.style.Render(sp.text))
			continue
		}
		style := sp.style
		if !sp.blank {
			style = lipgloss.NewStyle()
		}
		sb.WriteString(style.Render(strings.Repeat(" ", cr-cl)))
	}
	return sb.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
