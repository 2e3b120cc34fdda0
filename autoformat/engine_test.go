package autoformat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/autolist/buffer"
)

// typeText offers each rune of s to the engine the way a host editor does,
// applying the keystroke itself only when the engine allows it.
func typeText(t *testing.T, e *Engine, b *buffer.Buffer, s string) {
	t.Helper()
	for _, r := range s {
		dec, err := e.Intercept(b, Edit{Range: b.Selection(), Text: string(r)})
		require.NoError(t, err, "intercept %q", r)
		if dec.Handled {
			b.SetCursor(dec.Cursor)
			continue
		}
		b.InsertText(string(r))
	}
}

func bufferAt(text string, cursor int) *buffer.Buffer {
	b := buffer.New(text, buffer.Options{})
	b.SetCursor(cursor)
	return b
}

func TestEngine_TriggerConversion(t *testing.T) {
	for _, tc := range []struct {
		name       string
		initial    string
		typed      string
		wantText   string
		wantCursor int
	}{
		{name: "bullet", typed: "* ", wantText: "•  ", wantCursor: 3},
		{name: "dash", typed: "- ", wantText: "–  ", wantCursor: 3},
		{name: "number one", typed: "1. ", wantText: "1. ", wantCursor: 3},
		{name: "number preserved", typed: "7. ", wantText: "7. ", wantCursor: 3},
		{name: "multi digit", typed: "12. x", wantText: "12. x", wantCursor: 5},
		{name: "second paragraph", initial: "intro\n", typed: "* a", wantText: "intro\n•  a", wantCursor: 10},
		{name: "mid sentence", initial: "see note ", typed: "* ", wantText: "see note * ", wantCursor: 11},
		{name: "leading space", typed: " * ", wantText: " * ", wantCursor: 3},
		{name: "no double apply", typed: "* * ", wantText: "•  * ", wantCursor: 5},
		{name: "no trigger without space", typed: "*x", wantText: "*x", wantCursor: 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := bufferAt(tc.initial, len([]rune(tc.initial)))
			typeText(t, New(Config{}), b, tc.typed)
			assert.Equal(t, tc.wantText, b.Text(), "text")
			assert.Equal(t, tc.wantCursor, b.Cursor(), "cursor")
		})
	}
}

func TestEngine_NumberDotSpaceScenario(t *testing.T) {
	b := bufferAt("1.", 2)

	dec, err := New(Config{}).Intercept(b, Edit{Range: buffer.Caret(2), Text: " "})
	require.NoError(t, err)
	assert.Equal(t, Handled(3), dec)
	assert.Equal(t, "1. ", b.Text())
}

func TestEngine_NumberedContinuationScenario(t *testing.T) {
	b := bufferAt("1. item", 7)

	dec, err := New(Config{}).Intercept(b, Edit{Range: buffer.Caret(7), Text: "\n"})
	require.NoError(t, err)
	assert.Equal(t, Handled(11), dec)
	assert.Equal(t, "1. item\n2. ", b.Text())
}

func TestEngine_PointAfterNewlineIsNotAListLine(t *testing.T) {
	b := bufferAt("1. item\n", 8)

	dec, err := New(Config{}).Intercept(b, Edit{Range: buffer.Caret(8), Text: "\n"})
	require.NoError(t, err)
	assert.Equal(t, Allow(), dec)
	assert.Equal(t, "1. item\n", b.Text())
}

func TestEngine_NumberedListLifecycle(t *testing.T) {
	e := New(Config{})
	b := bufferAt("3. buy milk", 11)

	typeText(t, e, b, "\n")
	assert.Equal(t, "3. buy milk\n4. ", b.Text())
	assert.Equal(t, 15, b.Cursor())

	typeText(t, e, b, "\n")
	assert.Equal(t, "3. buy milk\n\n", b.Text(), "empty item must end the list")
	assert.Equal(t, 13, b.Cursor())

	typeText(t, e, b, "\n")
	assert.Equal(t, "3. buy milk\n\n\n", b.Text(), "plain newline after the list")
}

func TestEngine_BulletListLifecycle(t *testing.T) {
	e := New(Config{})
	b := bufferAt("•  eggs", 7)

	typeText(t, e, b, "\n")
	assert.Equal(t, "•  eggs\n•  ", b.Text())
	assert.Equal(t, 11, b.Cursor())

	typeText(t, e, b, "\n")
	assert.Equal(t, "•  eggs\n\n", b.Text())
	assert.Equal(t, 9, b.Cursor())
	p := b.ParagraphRange(buffer.Caret(b.Cursor()))
	assert.Equal(t, b.Cursor(), p.Start, "cursor at start of the plain paragraph")
	assert.Equal(t, p.Start, p.End, "paragraph is empty")
}

func TestEngine_TypedListEndToEnd(t *testing.T) {
	b := bufferAt("", 0)
	typeText(t, New(Config{}), b, "- ham\neggs\n\nafter")
	assert.Equal(t, "–  ham\n–  eggs\n\nafter", b.Text())
}

func TestEngine_Continuation(t *testing.T) {
	for _, tc := range []struct {
		name       string
		text       string
		cursor     int
		wantText   string
		wantCursor int
	}{
		{name: "dash", text: "–  ham", cursor: 6, wantText: "–  ham\n–  ", wantCursor: 10},
		{name: "bullet single space", text: "• x", cursor: 3, wantText: "• x\n• ", wantCursor: 6},
		{name: "restarted numbering", text: "1. a\n2. b\n9. c", cursor: 14, wantText: "1. a\n2. b\n9. c\n10. ", wantCursor: 19},
		{name: "split mid item", text: "1. ab", cursor: 4, wantText: "1. a\n2. b", wantCursor: 8},
		{name: "astral content", text: "•  😀", cursor: 4, wantText: "•  😀\n•  ", wantCursor: 8},
		{name: "leading zeros", text: "007. x", cursor: 6, wantText: "007. x\n8. ", wantCursor: 10},
		{name: "no-break space after bullet", text: "•\u00a0eggs", cursor: 6, wantText: "•\u00a0eggs\n•\u00a0", wantCursor: 9},
		{name: "em space after number", text: "4.\u2003x", cursor: 4, wantText: "4.\u2003x\n5. ", wantCursor: 8},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := bufferAt(tc.text, tc.cursor)
			dec, err := New(Config{}).Intercept(b, Edit{Range: buffer.Caret(tc.cursor), Text: "\n"})
			require.NoError(t, err)
			assert.Equal(t, Handled(tc.wantCursor), dec)
			assert.Equal(t, tc.wantText, b.Text())
		})
	}
}

func TestEngine_Removal(t *testing.T) {
	for _, tc := range []struct {
		name       string
		text       string
		cursor     int
		wantText   string
		wantCursor int
	}{
		{name: "trailing number", text: "1. a\n2. ", cursor: 8, wantText: "1. a\n\n", wantCursor: 6},
		{name: "bare number no space", text: "1. a\n2.", cursor: 7, wantText: "1. a\n\n", wantCursor: 6},
		{name: "middle of document", text: "1. a\n2. \nnext", cursor: 8, wantText: "1. a\n\nnext", wantCursor: 6},
		{name: "dash", text: "–  ", cursor: 3, wantText: "\n", wantCursor: 1},
		{name: "indented marker", text: "x\n  •  ", cursor: 7, wantText: "x\n\n", wantCursor: 3},
		{name: "cursor before marker", text: "•  ", cursor: 0, wantText: "\n", wantCursor: 1},
		{name: "no-break space", text: "–\u00a0", cursor: 2, wantText: "\n", wantCursor: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := bufferAt(tc.text, tc.cursor)
			dec, err := New(Config{}).Intercept(b, Edit{Range: buffer.Caret(tc.cursor), Text: "\n"})
			require.NoError(t, err)
			assert.Equal(t, Handled(tc.wantCursor), dec)
			assert.Equal(t, tc.wantText, b.Text())
		})
	}
}

func TestEngine_AllowsOrdinaryEdits(t *testing.T) {
	for _, tc := range []struct {
		name   string
		text   string
		cursor int
		edit   Edit
	}{
		{name: "empty document newline", edit: Edit{Range: buffer.Caret(0), Text: "\n"}},
		{name: "plain paragraph newline", text: "hello", cursor: 5, edit: Edit{Range: buffer.Caret(5), Text: "\n"}},
		{name: "other text", text: "*", cursor: 1, edit: Edit{Range: buffer.Caret(1), Text: "x"}},
		{name: "two spaces", text: "*", cursor: 1, edit: Edit{Range: buffer.Caret(1), Text: "  "}},
		{name: "selection replaced by space", text: "*ab", cursor: 3, edit: Edit{Range: buffer.Range{Location: 1, Length: 2}, Text: " "}},
		{name: "selection replaced by newline", text: "1. ab", cursor: 5, edit: Edit{Range: buffer.Range{Location: 3, Length: 2}, Text: "\n"}},
		{name: "marker without separator", text: "1.x", cursor: 3, edit: Edit{Range: buffer.Caret(3), Text: "\n"}},
		{name: "overflowing number", text: "99999999999999999999. x", cursor: 23, edit: Edit{Range: buffer.Caret(23), Text: "\n"}},
		{name: "proposal out of range", text: "*", cursor: 1, edit: Edit{Range: buffer.Caret(9), Text: " "}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := bufferAt(tc.text, tc.cursor)
			v := b.Version()

			dec, err := New(Config{}).Intercept(b, tc.edit)
			require.NoError(t, err)
			assert.Equal(t, Allow(), dec)
			assert.Equal(t, tc.text, b.Text())
			assert.Equal(t, v, b.Version(), "document must be untouched")
		})
	}
}

func TestEngine_AbstainsWhileComposing(t *testing.T) {
	e := New(Config{})

	b := bufferAt("*", 1)
	b.SetMarkedRange(buffer.Range{Location: 0, Length: 1})
	dec, err := e.Intercept(b, Edit{Range: buffer.Caret(1), Text: " "})
	require.NoError(t, err)
	assert.Equal(t, Allow(), dec)

	b = bufferAt("1. a", 4)
	b.SetMarkedRange(buffer.Range{Location: 3, Length: 1})
	dec, err = e.Intercept(b, Edit{Range: buffer.Caret(4), Text: "\n"})
	require.NoError(t, err)
	assert.Equal(t, Allow(), dec)

	b.ClearMarkedRange()
	dec, err = e.Intercept(b, Edit{Range: buffer.Caret(4), Text: "\n"})
	require.NoError(t, err)
	assert.True(t, dec.Handled, "handled once composition ends")
}

func TestEngine_ResetsParagraphIndent(t *testing.T) {
	indented := buffer.Attributes{
		Foreground: "#3d405b",
		Paragraph:  buffer.ParagraphStyle{FirstLineHeadIndent: 4, HeadIndent: 2},
	}
	e := New(Config{})

	b := buffer.New("1. a", buffer.Options{Attributes: indented})
	b.SetCursor(4)
	typeText(t, e, b, "\n")
	require.Equal(t, "1. a\n2. ", b.Text())
	for off := 4; off < b.Len(); off++ {
		got := b.AttributesAt(off)
		assert.Equal(t, buffer.ParagraphStyle{}, got.Paragraph, "indent at %d", off)
		assert.Equal(t, indented.Foreground, got.Foreground, "foreground at %d", off)
	}

	b = buffer.New("*", buffer.Options{Attributes: indented})
	b.SetCursor(1)
	typeText(t, e, b, " ")
	require.Equal(t, "•  ", b.Text())
	assert.Equal(t, buffer.ParagraphStyle{}, b.AttributesAt(0).Paragraph)
}

func TestEngine_ConversionIsOneUndoStep(t *testing.T) {
	b := bufferAt("", 0)
	typeText(t, New(Config{}), b, "* ")
	require.Equal(t, "•  ", b.Text())

	require.True(t, b.Undo())
	assert.Equal(t, "*", b.Text())
}

func TestEngine_ConfigDisables(t *testing.T) {
	for _, tc := range []struct {
		name     string
		cfg      Config
		initial  string
		typed    string
		wantText string
	}{
		{name: "bullets off", cfg: Config{DisableBullets: true}, typed: "* ", wantText: "* "},
		{name: "dashes off", cfg: Config{DisableDashes: true}, typed: "- ", wantText: "- "},
		{name: "numbers off", cfg: Config{DisableNumbers: true}, typed: "1. a\n", wantText: "1. a\n"},
		{name: "continuation off", cfg: Config{DisableContinuation: true}, typed: "* a\n", wantText: "•  a\n"},
		{name: "removal off", cfg: Config{DisableRemoval: true}, initial: "•  ", typed: "\n", wantText: "•  \n•  "},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := bufferAt(tc.initial, len([]rune(tc.initial)))
			typeText(t, New(tc.cfg), b, tc.typed)
			assert.Equal(t, tc.wantText, b.Text())
		})
	}
}

// shortDoc reports a shorter length than its text, as a document mutated
// behind the engine's back would.
type shortDoc struct {
	*buffer.Buffer
}

func (d shortDoc) Len() int { return 0 }

type failingDoc struct {
	*buffer.Buffer
}

func (failingDoc) ReplaceAttributed(buffer.Range, string, buffer.Attributes) error {
	return errors.New("disk on fire")
}

func TestEngine_RangeCorruptionFailsFast(t *testing.T) {
	b := bufferAt("*", 1)

	dec, err := New(Config{}).Intercept(shortDoc{b}, Edit{Range: buffer.Caret(1), Text: " "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, buffer.ErrOutOfBounds), "error %v must match ErrOutOfBounds", err)
	assert.Equal(t, Allow(), dec)
	assert.Equal(t, "*", b.Text(), "document must be untouched")
}

func TestEngine_ReplaceErrorIsReturned(t *testing.T) {
	b := bufferAt("1. a", 4)

	dec, err := New(Config{}).Intercept(failingDoc{b}, Edit{Range: buffer.Caret(4), Text: "\n"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Equal(t, Allow(), dec)
}

func TestInsertText_CursorCountsRunes(t *testing.T) {
	b := bufferAt("😀", 1)
	b.SetTypingAttributes(buffer.Attributes{Paragraph: buffer.ParagraphStyle{HeadIndent: 3}})

	cursor, err := InsertText(b, 1, "\n•  ")
	require.NoError(t, err)
	assert.Equal(t, 5, cursor)
	assert.Equal(t, "😀\n•  ", b.Text())
	assert.Equal(t, buffer.ParagraphStyle{}, b.AttributesAt(1).Paragraph)
}

func TestEngine_NilDocumentAllows(t *testing.T) {
	dec, err := New(Config{}).Intercept(nil, Edit{Text: " "})
	require.NoError(t, err)
	assert.Equal(t, Allow(), dec)
}

func TestEngine_NilBufferInDocumentIsNotChecked(t *testing.T) {
	var b *buffer.Buffer
	assert.Panics(t, func() {
		_, _ = New(Config{}).Intercept(b, Edit{Range: buffer.Caret(0), Text: " "})
	})
}
