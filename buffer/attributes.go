package buffer

// ParagraphStyle holds paragraph-level layout attributes, in terminal cells.
type ParagraphStyle struct {
	FirstLineHeadIndent int
	HeadIndent          int
}

// WithoutIndent returns p with first-line and hanging indent reset to zero.
func (p ParagraphStyle) WithoutIndent() ParagraphStyle {
	p.FirstLineHeadIndent = 0
	p.HeadIndent = 0
	return p
}

// Attributes is the formatting attached to each character of the buffer.
//
// Colors use the lipgloss color grammar ("240", "#3d405b"); empty means the
// terminal default.
type Attributes struct {
	Font       string
	Foreground string
	Background string
	Paragraph  ParagraphStyle
}

// WithoutIndent returns a with its paragraph indents reset to zero.
func (a Attributes) WithoutIndent() Attributes {
	a.Paragraph = a.Paragraph.WithoutIndent()
	return a
}

// Run is a maximal span of characters sharing the same attributes.
type Run struct {
	Range Range
	Attrs Attributes
}

// AttributesAt returns the attributes of the character at off. Offsets past
// the end resolve to the last character; an empty buffer yields the default
// attributes from Options.
func (b *Buffer) AttributesAt(off int) Attributes {
	if len(b.attrs) == 0 {
		return b.opt.Attributes
	}
	return b.attrs[clampInt(off, 0, len(b.attrs)-1)]
}

// Runs returns the formatting runs of the document in order.
func (b *Buffer) Runs() []Run {
	if len(b.attrs) == 0 {
		return nil
	}
	var out []Run
	start := 0
	for i := 1; i <= len(b.attrs); i++ {
		if i < len(b.attrs) && b.attrs[i] == b.attrs[start] {
			continue
		}
		out = append(out, Run{Range: Span(start, i), Attrs: b.attrs[start]})
		start = i
	}
	return out
}

// SetAttributes applies attrs to every character in r.
func (b *Buffer) SetAttributes(r Range, attrs Attributes) error {
	if err := b.checkRange(r); err != nil {
		return err
	}
	if r.IsCollapsed() {
		return nil
	}

	same := true
	for i := r.Location; i < r.End(); i++ {
		if b.attrs[i] != attrs {
			same = false
			break
		}
	}
	if same {
		return nil
	}

	prev := b.snapshot()
	change := b.beginChange()
	for i := r.Location; i < r.End(); i++ {
		b.attrs[i] = attrs
	}
	b.version++
	b.recordUndo(prev)
	text := string(b.text[r.Location:r.End()])
	change.addAppliedEdit(AppliedEdit{RangeBefore: r, RangeAfter: r, InsertText: text, DeletedText: text})
	b.commitChange(change)
	return nil
}

// TypingAttributes returns the attributes newly typed text receives.
//
// Attributes set through SetTypingAttributes win until the cursor moves or
// the text changes; otherwise they are inherited from the character before
// the cursor (or the one at it, at document start).
func (b *Buffer) TypingAttributes() Attributes {
	if b.typingSet {
		return b.typing
	}
	return b.inheritedAttributes(Caret(b.sel.head))
}

func (b *Buffer) SetTypingAttributes(a Attributes) {
	b.typing = a
	b.typingSet = true
}

func (b *Buffer) inheritedAttributes(r Range) Attributes {
	switch {
	case len(b.attrs) == 0:
		return b.opt.Attributes
	case r.Length > 0:
		return b.AttributesAt(r.Location)
	case r.Location > 0:
		return b.AttributesAt(r.Location - 1)
	default:
		return b.AttributesAt(0)
	}
}
