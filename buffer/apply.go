package buffer

import (
	"fmt"
	"unicode/utf8"
)

// Apply applies a sequence of text edits in order. Each edit's range is
// interpreted against the buffer state at the time that edit is applied.
//
// Semantics:
// - Ranges are not clamped. If any edit would not fit the document as left
//   by the edits before it, Apply returns a *RangeError and applies nothing.
// - Inserted text inherits attributes the way Replace does.
// - Cursor moves to the end of the last applied (effective) edit.
// - The whole sequence is one undo step.
func (b *Buffer) Apply(edits ...TextEdit) error {
	n := len(b.text)
	for i, e := range edits {
		if e.Range.Location < 0 || e.Range.Length < 0 || e.Range.End() > n {
			return fmt.Errorf("buffer: edit %d: %w", i, &RangeError{Range: e.Range, Len: n})
		}
		n += utf8.RuneCountInString(e.Text) - e.Range.Length
	}
	if len(edits) == 0 {
		return nil
	}

	prev := b.snapshot()
	change := b.beginChange()

	anyChanged := false
	lastCursor := b.sel.head

	for _, e := range edits {
		nextCursor, applied, changed := b.replaceRange(e.Range, e.Text, b.inheritedAttributes(e.Range))
		if !changed {
			continue
		}
		anyChanged = true
		lastCursor = nextCursor
		change.addAppliedEdit(applied)
	}

	if !anyChanged {
		return nil
	}

	lastCursor = clampInt(lastCursor, 0, len(b.text))
	b.sel = selectionState{anchor: lastCursor, head: lastCursor}
	b.typingSet = false
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
	return nil
}
