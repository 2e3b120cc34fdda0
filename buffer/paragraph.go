package buffer

// Paragraph is a derived view of one paragraph of a document.
//
// [Start, End) contains no newline. Next is the offset where the following
// paragraph begins: End+1 when a newline terminates the paragraph, End for
// the last paragraph.
type Paragraph struct {
	Start int
	End   int
	Next  int
}

// Range returns the paragraph contents, without its terminator.
func (p Paragraph) Range() Range { return Span(p.Start, p.End) }

// Enclosing returns the paragraph contents including its terminator.
func (p Paragraph) Enclosing() Range { return Span(p.Start, p.Next) }

func (p Paragraph) Terminated() bool { return p.Next > p.End }

// ParagraphRangeIn locates the paragraph containing r within text.
//
// A collapsed r right after a newline belongs to the paragraph that follows.
// A non-empty r ending right after a newline stops at that newline. When r
// spans several paragraphs the result covers all of them.
func ParagraphRangeIn(text []rune, r Range) Paragraph {
	r = ClampRange(r, len(text))

	start := r.Location
	for start > 0 && text[start-1] != '\n' {
		start--
	}

	end := r.End()
	if r.Length > 0 && text[end-1] == '\n' {
		end--
	}
	if end < start {
		end = start
	}
	for end < len(text) && text[end] != '\n' {
		end++
	}

	next := end
	if end < len(text) {
		next = end + 1
	}
	return Paragraph{Start: start, End: end, Next: next}
}

// ParagraphRange locates the paragraph containing r.
func (b *Buffer) ParagraphRange(r Range) Paragraph {
	return ParagraphRangeIn(b.text, r)
}
