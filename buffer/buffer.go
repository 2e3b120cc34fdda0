package buffer

type Options struct {
	HistoryLimit int // default: 1000

	// Attributes applied to the initial text and to text typed into an
	// empty buffer.
	Attributes Attributes
}

type selectionState struct {
	anchor int
	head   int
}

func (s selectionState) normalized() Range { return Span(s.anchor, s.head) }

// Buffer is the document state: attributed text, cursor/selection, the
// marked (composing) range, and edit history.
type Buffer struct {
	text    []rune
	attrs   []Attributes
	version uint64

	sel selectionState

	marked    Range
	composing bool

	typing    Attributes
	typingSet bool

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	runes := []rune(text)
	attrs := make([]Attributes, len(runes))
	for i := range attrs {
		attrs[i] = opt.Attributes
	}
	return &Buffer{
		text:  runes,
		attrs: attrs,
		opt:   opt,
	}
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the document length in runes.
func (b *Buffer) Len() int { return len(b.text) }

// Runes returns a copy of the document text.
func (b *Buffer) Runes() []rune { return append([]rune(nil), b.text...) }

// Slice returns the text in r, clamped into document bounds.
func (b *Buffer) Slice(r Range) string {
	r = ClampRange(r, len(b.text))
	return string(b.text[r.Location:r.End()])
}

func (b *Buffer) Version() uint64 { return b.version }

// Cursor returns the active end of the selection.
func (b *Buffer) Cursor() int { return b.sel.head }

// SetCursor collapses the selection at off, clamped into bounds.
func (b *Buffer) SetCursor(off int) {
	off = clampInt(off, 0, len(b.text))
	next := selectionState{anchor: off, head: off}
	if next == b.sel {
		return
	}
	b.sel = next
	b.typingSet = false
	b.version++
}

// Selection returns the normalized selection; it is collapsed when no text
// is selected.
func (b *Buffer) Selection() Range { return b.sel.normalized() }

// HasSelection reports whether a non-empty selection is active.
func (b *Buffer) HasSelection() bool { return b.sel.anchor != b.sel.head }

// SetSelection selects r. The cursor moves to r's end.
func (b *Buffer) SetSelection(r Range) {
	r = ClampRange(r, len(b.text))
	b.setSelectionState(selectionState{anchor: r.Location, head: r.End()})
}

// Select selects from anchor to head; the cursor is at head. Either may
// precede the other.
func (b *Buffer) Select(anchor, head int) {
	b.setSelectionState(selectionState{anchor: anchor, head: head})
}

// Anchor returns the fixed end of the selection.
func (b *Buffer) Anchor() int { return b.sel.anchor }

func (b *Buffer) setSelectionState(next selectionState) {
	next.anchor = clampInt(next.anchor, 0, len(b.text))
	next.head = clampInt(next.head, 0, len(b.text))
	if next == b.sel {
		return
	}
	b.sel = next
	b.typingSet = false
	b.version++
}

// ClearSelection collapses the selection at the cursor.
func (b *Buffer) ClearSelection() {
	b.SetCursor(b.sel.head)
}

// SetMarkedRange records provisional text from an input method. While a
// marked range is set the buffer reports IsComposing.
func (b *Buffer) SetMarkedRange(r Range) {
	b.marked = ClampRange(r, len(b.text))
	b.composing = true
}

func (b *Buffer) ClearMarkedRange() {
	b.marked = Range{}
	b.composing = false
}

func (b *Buffer) MarkedRange() (Range, bool) {
	if !b.composing {
		return Range{}, false
	}
	return b.marked, true
}

// IsComposing reports whether an input method holds uncommitted text.
func (b *Buffer) IsComposing() bool { return b.composing }
