package buffer

// Range is a half-open span [Location, Location+Length) in rune offsets.
type Range struct {
	Location int
	Length   int
}

// Span returns the range covering [start, end), swapping the bounds if needed.
func Span(start, end int) Range {
	if end < start {
		start, end = end, start
	}
	return Range{Location: start, Length: end - start}
}

// Caret returns the collapsed range at off.
func Caret(off int) Range {
	return Range{Location: off}
}

func (r Range) End() int { return r.Location + r.Length }

func (r Range) IsCollapsed() bool { return r.Length == 0 }

// Pos points into the logical document by (row, col) in runes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampRange clamps r into a document of length n.
func ClampRange(r Range, n int) Range {
	if r.Length < 0 {
		r = Span(r.Location, r.End())
	}
	start := clampInt(r.Location, 0, n)
	end := clampInt(r.End(), start, n)
	return Range{Location: start, Length: end - start}
}
