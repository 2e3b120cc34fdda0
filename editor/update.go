package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/autolist/autoformat"
	"github.com/iw2rmb/autolist/buffer"
	"github.com/iw2rmb/autolist/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused || m.buf == nil {
		return m
	}

	// Bracketed paste inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.offer(IntentPaste, normalizeNewlines(string(msg.Runes)))
		return m
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.LineStart):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.LineEnd):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		m.delete(DeleteBackward, m.buf.DeleteBackward)
	case key.Matches(msg, km.Delete):
		m.delete(DeleteForward, m.buf.DeleteForward)
	case key.Matches(msg, km.Enter):
		m.offer(IntentNewline, "\n")

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			m.dispatch(m.intent(IntentUndo, UndoIntentPayload{}), func() { _ = m.buf.Undo() })
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			m.dispatch(m.intent(IntentRedo, RedoIntentPayload{}), func() { _ = m.buf.Redo() })
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.copySelection()
		m.delete(DeleteSelection, m.buf.DeleteSelection)
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	case msg.Type == tea.KeyTab:
		m.offer(IntentInsert, "\t")
	case msg.Type == tea.KeySpace:
		m.offer(IntentInsert, " ")
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		// One grapheme at a time, so every space reaches the engine on its own.
		for _, g := range grapheme.Split(string(msg.Runes)) {
			m.offer(IntentInsert, g)
		}
	}

	return m
}

func (m *Model) intent(kind IntentKind, payload any) Intent {
	return Intent{Kind: kind, Before: editorStateFromBuffer(m.buf), Payload: payload}
}

func (m *Model) move(mv buffer.Move) {
	kind := IntentMove
	if mv.Extend {
		kind = IntentSelect
	}
	m.dispatch(m.intent(kind, MoveIntentPayload{Move: mv}), func() { m.buf.Move(mv) })
}

func (m *Model) delete(dir DeleteDirection, apply func()) {
	if m.cfg.ReadOnly {
		return
	}
	if dir == DeleteSelection && !m.buf.HasSelection() {
		return
	}
	m.dispatch(m.intent(IntentDelete, DeleteIntentPayload{Direction: dir}), apply)
}

// offer proposes replacing the selection with text. The autoformat engine
// sees the edit first; if it plans a list rewrite, that rewrite is applied
// instead and the cursor moves to where the engine says. Otherwise the edit
// goes through as typed.
func (m *Model) offer(kind IntentKind, text string) {
	if m.cfg.ReadOnly || text == "" {
		return
	}
	edit := autoformat.Edit{Range: m.buf.Selection(), Text: text}

	if eng := m.engine(); eng != nil {
		snap := autoformat.Snapshot{Text: m.buf.Runes(), Composing: m.buf.IsComposing()}
		if act, ok := eng.Plan(snap, edit); ok && m.autoformat(eng, edit, act) {
			return
		}
	}

	m.dispatch(m.intent(kind, InsertIntentPayload{Range: edit.Range, Text: text}), func() {
		m.buf.InsertText(text)
	})
}

// autoformat routes a planned rewrite through the mutation mode. It reports
// false when the rewrite did not happen and the typed edit should be
// offered instead: the host vetoed it or it could not be applied.
func (m *Model) autoformat(eng *autoformat.Engine, edit autoformat.Edit, act autoformat.Action) bool {
	in := m.intent(IntentAutoformat, AutoformatIntentPayload{Edit: edit, Action: act})
	switch m.cfg.MutationMode {
	case EmitIntentsOnly:
		m.emit(in)
		return true
	case EmitIntentsAndMutate:
		if !m.emit(in).ApplyLocally {
			return false
		}
	}
	return m.applyAutoformat(eng, edit, act)
}

func (m *Model) applyAutoformat(eng *autoformat.Engine, edit autoformat.Edit, act autoformat.Action) bool {
	cursor, err := eng.Apply(m.buf, act)
	if err != nil {
		if m.cfg.OnIntent != nil {
			m.cfg.OnIntent(IntentBatch{Intents: []Intent{
				m.intent(IntentAutoformatError, AutoformatErrorPayload{Edit: edit, Action: act, Err: err}),
			}})
		}
		return false
	}
	m.buf.SetCursor(cursor)
	return true
}

func (m *Model) engine() *autoformat.Engine {
	if m.cfg.DisableAutoformat {
		return nil
	}
	return m.cfg.Autoformat
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil || !m.buf.HasSelection() {
		return
	}
	if s := m.buf.Slice(m.buf.Selection()); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.cfg.ReadOnly {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.offer(IntentPaste, normalizeNewlines(s))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
