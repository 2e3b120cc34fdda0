package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/iw2rmb/autolist/autoformat"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func typeRunes(m Model, s string) Model {
	for _, r := range s {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		switch r {
		case ' ':
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case '\n':
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	assert.Equal(t, "aXb", m.buf.Text(), "text after insert")
	assert.Equal(t, 2, m.buf.Cursor(), "cursor after insert")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "ab", m.buf.Text(), "text after backspace")
	assert.Equal(t, 1, m.buf.Cursor(), "cursor after backspace")
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{Text: "ab", ReadOnly: true})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.buf.Cursor(), "cursor after move")

	m = typeRunes(m, "X \n")
	assert.Equal(t, "ab", m.buf.Text(), "text after typing in read-only")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "ab", m.buf.Text(), "text after backspace in read-only")
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{})
	m = typeRunes(m, "ab")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "a", m.buf.Text(), "text after undo")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "ab", m.buf.Text(), "text after redo")
}

func TestUpdate_SpaceConvertsTriggers(t *testing.T) {
	cases := []struct {
		typed      string
		wantText   string
		wantCursor int
	}{
		{typed: "* ", wantText: "•  ", wantCursor: 3},
		{typed: "- ", wantText: "–  ", wantCursor: 3},
		{typed: "4. ", wantText: "4. ", wantCursor: 3},
		{typed: "a * ", wantText: "a * ", wantCursor: 4},
		{typed: "* * ", wantText: "•  * ", wantCursor: 5},
	}
	for _, tc := range cases {
		m := typeRunes(New(Config{}), tc.typed)
		assert.Equal(t, tc.wantText, m.buf.Text(), "typed %q", tc.typed)
		assert.Equal(t, tc.wantCursor, m.buf.Cursor(), "typed %q", tc.typed)
	}
}

func TestUpdate_EnterContinuesAndEndsList(t *testing.T) {
	m := New(Config{Text: "1. milk"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "1. milk\n2. ", m.buf.Text(), "text after enter")
	assert.Equal(t, 11, m.buf.Cursor(), "cursor after enter")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "1. milk\n\n", m.buf.Text(), "text after enter on empty item")
	assert.Equal(t, 9, m.buf.Cursor(), "cursor after enter on empty item")
}

func TestUpdate_RunesBatchOfferedPerGrapheme(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("* eggs")})

	assert.Equal(t, "•  eggs", m.buf.Text())
}

func TestUpdate_PasteIsLiteral(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("* a\r\nb"), Paste: true})

	assert.Equal(t, "* a\nb", m.buf.Text())
}

func TestUpdate_DisableAutoformat(t *testing.T) {
	m := typeRunes(New(Config{DisableAutoformat: true}), "* a\n")
	assert.Equal(t, "* a\n", m.buf.Text())
}

func TestUpdate_CustomEngine(t *testing.T) {
	m := typeRunes(New(Config{Autoformat: autoformat.New(autoformat.Config{DisableDashes: true})}), "- a\n* b\n")
	assert.Equal(t, "- a\n•  b\n•  ", m.buf.Text(), "text with dashes disabled")
}

func TestUpdate_UndoRevertsConversionOnly(t *testing.T) {
	m := typeRunes(New(Config{}), "* ")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})

	assert.Equal(t, "*", m.buf.Text(), "text after undoing conversion")
}

func TestUpdate_ClipboardCutPaste(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{Text: "abc", Clipboard: cb})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Equal(t, "ab", cb.s, "clipboard after cut")
	assert.Equal(t, "c", m.buf.Text(), "text after cut")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Equal(t, "cab", m.buf.Text(), "text after paste")
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()
	m = typeRunes(m, "x")
	assert.Equal(t, "ab", m.buf.Text(), "text while blurred")
}
