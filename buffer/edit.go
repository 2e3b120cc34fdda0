package buffer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/iw2rmb/autolist/internal/grapheme"
)

// ErrOutOfBounds reports a range that does not fit the current document.
var ErrOutOfBounds = errors.New("buffer: range out of bounds")

// RangeError describes a rejected range. It matches ErrOutOfBounds.
type RangeError struct {
	Range Range
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("buffer: range [%d,%d) out of bounds for length %d", e.Range.Location, e.Range.End(), e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfBounds }

func (b *Buffer) checkRange(r Range) error {
	if r.Location < 0 || r.Length < 0 || r.End() > len(b.text) {
		return &RangeError{Range: r, Len: len(b.text)}
	}
	return nil
}

// Replace replaces the characters in r with text. The inserted characters
// inherit the attributes of the first replaced character, or of the
// character before r for insertions.
//
// Ranges are not clamped: an out-of-bounds range returns a *RangeError and
// leaves the buffer untouched.
func (b *Buffer) Replace(r Range, text string) error {
	if err := b.checkRange(r); err != nil {
		return err
	}
	b.replace(r, text, b.inheritedAttributes(r))
	return nil
}

// ReplaceAttributed replaces the characters in r with text carrying attrs.
func (b *Buffer) ReplaceAttributed(r Range, text string, attrs Attributes) error {
	if err := b.checkRange(r); err != nil {
		return err
	}
	b.replace(r, text, attrs)
	return nil
}

// InsertText inserts text at the cursor with the typing attributes, or
// replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r := b.Selection()
	if s == "" && r.IsCollapsed() {
		return
	}
	b.replace(r, s, b.TypingAttributes())
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: the selection, or the grapheme
// before the cursor.
func (b *Buffer) DeleteBackward() {
	if b.HasSelection() {
		b.DeleteSelection()
		return
	}
	cur := b.sel.head
	if cur == 0 {
		return
	}
	p := b.ParagraphRange(Caret(cur))
	start := cur - 1
	if cur > p.Start {
		start = p.Start + grapheme.Prev(string(b.text[p.Start:p.End]), cur-p.Start)
	}
	b.replace(Span(start, cur), "", b.opt.Attributes)
}

// DeleteForward applies delete-key semantics: the selection, or the grapheme
// after the cursor.
func (b *Buffer) DeleteForward() {
	if b.HasSelection() {
		b.DeleteSelection()
		return
	}
	cur := b.sel.head
	if cur == len(b.text) {
		return
	}
	p := b.ParagraphRange(Caret(cur))
	end := cur + 1
	if cur < p.End {
		end = p.Start + grapheme.Next(string(b.text[p.Start:p.End]), cur-p.Start)
	}
	b.replace(Span(cur, end), "", b.opt.Attributes)
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if !b.HasSelection() {
		return
	}
	b.replace(b.Selection(), "", b.opt.Attributes)
}

// replace applies one edit as a single undo step. r must be in bounds.
func (b *Buffer) replace(r Range, text string, attrs Attributes) bool {
	prev := b.snapshot()
	change := b.beginChange()

	nextCursor, applied, changed := b.replaceRange(r, text, attrs)
	if !changed {
		return false
	}

	b.sel = selectionState{anchor: nextCursor, head: nextCursor}
	b.typingSet = false
	if b.composing {
		b.marked = ClampRange(b.marked, len(b.text))
	}
	b.version++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
	return true
}

func (b *Buffer) replaceRange(r Range, text string, attrs Attributes) (nextCursor int, applied AppliedEdit, changed bool) {
	if r.IsCollapsed() && text == "" {
		return b.sel.head, AppliedEdit{}, false
	}

	deleted := string(b.text[r.Location:r.End()])
	if deleted == text && b.uniformAttributes(r, attrs) {
		return b.sel.head, AppliedEdit{}, false
	}

	ins := []rune(text)
	nextText := make([]rune, 0, len(b.text)-r.Length+len(ins))
	nextText = append(nextText, b.text[:r.Location]...)
	nextText = append(nextText, ins...)
	nextText = append(nextText, b.text[r.End():]...)

	nextAttrs := make([]Attributes, 0, len(nextText))
	nextAttrs = append(nextAttrs, b.attrs[:r.Location]...)
	for range ins {
		nextAttrs = append(nextAttrs, attrs)
	}
	nextAttrs = append(nextAttrs, b.attrs[r.End():]...)

	b.text = nextText
	b.attrs = nextAttrs

	nextCursor = r.Location + utf8.RuneCountInString(text)
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Span(r.Location, nextCursor),
		InsertText:  text,
		DeletedText: deleted,
	}
	return nextCursor, applied, true
}

func (b *Buffer) uniformAttributes(r Range, attrs Attributes) bool {
	for i := r.Location; i < r.End(); i++ {
		if b.attrs[i] != attrs {
			return false
		}
	}
	return true
}
