package buffer

import "github.com/iw2rmb/autolist/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prev := b.sel
	next := clampInt(b.moveCursor(prev.head, m), 0, len(b.text))

	anchor := next
	if m.Extend {
		anchor = prev.anchor
	}
	b.setSelectionState(selectionState{anchor: anchor, head: next})
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	p := b.ParagraphRange(Caret(off))
	line := string(b.text[p.Start:p.End])

	switch dir {
	case DirLeft:
		if off == p.Start {
			return maxInt(off-1, 0)
		}
		return p.Start + grapheme.Prev(line, off-p.Start)
	case DirRight:
		if off == p.End {
			return minInt(off+1, len(b.text))
		}
		return p.Start + grapheme.Next(line, off-p.Start)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	p := b.ParagraphRange(Caret(off))
	line := grapheme.Split(string(b.text[p.Start:p.End]))
	bounds := append([]int{0}, grapheme.Boundaries(string(b.text[p.Start:p.End]))...)

	col := 0
	for col < len(line) && bounds[col] < off-p.Start {
		col++
	}

	switch dir {
	case DirLeft:
		return p.Start + bounds[prevWordBoundary(line, col)]
	case DirRight:
		return p.Start + bounds[nextWordBoundary(line, col)]
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	p := b.ParagraphRange(Caret(off))

	switch dir {
	case DirHome:
		return p.Start
	case DirEnd:
		return p.End
	case DirUp:
		if p.Start == 0 {
			return off
		}
		above := b.ParagraphRange(Caret(p.Start - 1))
		return b.snapToGrapheme(above, above.Start+minInt(off-p.Start, above.End-above.Start))
	case DirDown:
		if !p.Terminated() {
			return off
		}
		below := b.ParagraphRange(Caret(p.Next))
		return b.snapToGrapheme(below, below.Start+minInt(off-p.Start, below.End-below.Start))
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(b.text)
	default:
		return off
	}
}

func (b *Buffer) snapToGrapheme(p Paragraph, off int) int {
	line := string(b.text[p.Start:p.End])
	snapped := 0
	for _, bound := range grapheme.Boundaries(line) {
		if p.Start+bound > off {
			break
		}
		snapped = bound
	}
	return p.Start + snapped
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single paragraph)
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
