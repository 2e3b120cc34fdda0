package buffer

import "unicode/utf8"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// PosFromOffset converts a rune offset to a (row, col) position.
func (b *Buffer) PosFromOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, len(b.text), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return posFromOffset(b.text, off), true
}

// OffsetFromPos converts a (row, col) position to a rune offset.
func (b *Buffer) OffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	starts := lineStarts(b.text)

	row, ok := clampOffset(pos.Row, len(starts)-1, p.ClampMode)
	if !ok {
		return 0, false
	}
	end := len(b.text)
	if row+1 < len(starts) {
		end = starts[row+1] - 1
	}
	col, ok := clampOffset(pos.Col, end-starts[row], p.ClampMode)
	if !ok {
		return 0, false
	}
	return starts[row] + col, true
}

// LineCount returns the number of logical lines (at least 1).
func (b *Buffer) LineCount() int { return len(lineStarts(b.text)) }

// OffsetFromByteOffset converts a UTF-8 byte offset into Text() to a rune
// offset. Offsets inside a multi-byte rune are rejected.
func (b *Buffer) OffsetFromByteOffset(off int, p ConvertPolicy) (int, bool) {
	off, ok := clampOffset(off, b.byteLen(), p.ClampMode)
	if !ok {
		return 0, false
	}
	cur := 0
	for i, r := range b.text {
		if cur == off {
			return i, true
		}
		cur += utf8.RuneLen(r)
		if cur > off {
			return 0, false
		}
	}
	return len(b.text), true
}

// ByteOffsetFromOffset converts a rune offset to a UTF-8 byte offset into
// Text().
func (b *Buffer) ByteOffsetFromOffset(off int, p ConvertPolicy) (int, bool) {
	off, ok := clampOffset(off, len(b.text), p.ClampMode)
	if !ok {
		return 0, false
	}
	n := 0
	for _, r := range b.text[:off] {
		n += utf8.RuneLen(r)
	}
	return n, true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}

func (b *Buffer) byteLen() int {
	n := 0
	for _, r := range b.text {
		n += utf8.RuneLen(r)
	}
	return n
}

func posFromOffset(text []rune, off int) Pos {
	var p Pos
	for _, r := range text[:off] {
		if r == '\n' {
			p.Row++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p
}

func lineStarts(text []rune) []int {
	starts := []int{0}
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
