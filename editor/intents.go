package editor

import (
	"github.com/iw2rmb/autolist/autoformat"
	"github.com/iw2rmb/autolist/buffer"
)

// MutationMode controls whether key handling mutates the local buffer,
// emits intents to the host, or both.
type MutationMode uint8

const (
	// MutateInEditor applies every mutation locally without asking the host.
	MutateInEditor MutationMode = iota
	// EmitIntentsOnly emits intents and never mutates the buffer.
	EmitIntentsOnly
	// EmitIntentsAndMutate emits intents and mutates when the host decision
	// allows it.
	EmitIntentsAndMutate
)

// IntentKind identifies the semantic action requested by input handling.
type IntentKind uint8

const (
	IntentInsert IntentKind = iota
	IntentNewline
	IntentDelete
	IntentMove
	IntentSelect
	IntentUndo
	IntentRedo
	IntentPaste
	// IntentAutoformat replaces a typed edit with a list rewrite.
	IntentAutoformat
	// IntentAutoformatError reports a list rewrite that could not be applied.
	// It is emitted in every mode that has an OnIntent hook and its decision
	// is ignored.
	IntentAutoformatError
)

func (k IntentKind) String() string {
	switch k {
	case IntentInsert:
		return "insert"
	case IntentNewline:
		return "newline"
	case IntentDelete:
		return "delete"
	case IntentMove:
		return "move"
	case IntentSelect:
		return "select"
	case IntentUndo:
		return "undo"
	case IntentRedo:
		return "redo"
	case IntentPaste:
		return "paste"
	case IntentAutoformat:
		return "autoformat"
	case IntentAutoformatError:
		return "autoformat-error"
	default:
		return "unknown"
	}
}

// EditorState captures buffer-local state before an intent is executed.
type EditorState struct {
	Version   uint64
	Cursor    int
	Selection buffer.Range
}

// Intent is a typed semantic action emitted from key processing.
type Intent struct {
	Kind    IntentKind
	Before  EditorState
	Payload any
}

// IntentBatch groups intents produced from one input event.
type IntentBatch struct {
	Intents []Intent
}

// IntentDecision controls whether the editor applies mutations locally.
// It is used in EmitIntentsAndMutate mode.
type IntentDecision struct {
	ApplyLocally bool
}

type DeleteDirection uint8

const (
	DeleteBackward DeleteDirection = iota
	DeleteForward
	DeleteSelection
)

// InsertIntentPayload describes text typed or pasted over Range.
type InsertIntentPayload struct {
	Range buffer.Range
	Text  string
}

type DeleteIntentPayload struct {
	Direction DeleteDirection
}

type MoveIntentPayload struct {
	Move buffer.Move
}

type UndoIntentPayload struct{}

type RedoIntentPayload struct{}

// AutoformatIntentPayload carries the edit the user proposed and the list
// rewrite that replaces it. In EmitIntentsAndMutate mode a host that
// declines the rewrite receives the proposed edit as its own intent.
type AutoformatIntentPayload struct {
	Edit   autoformat.Edit
	Action autoformat.Action
}

// AutoformatErrorPayload reports why Action could not be applied. The
// proposed edit is offered next as a plain insert or newline.
type AutoformatErrorPayload struct {
	Edit   autoformat.Edit
	Action autoformat.Action
	Err    error
}

func editorStateFromBuffer(b *buffer.Buffer) EditorState {
	if b == nil {
		return EditorState{}
	}
	return EditorState{
		Version:   b.Version(),
		Cursor:    b.Cursor(),
		Selection: b.Selection(),
	}
}

func normalizeMutationMode(mode MutationMode) MutationMode {
	switch mode {
	case MutateInEditor, EmitIntentsOnly, EmitIntentsAndMutate:
		return mode
	default:
		return MutateInEditor
	}
}

// dispatch routes one intent according to the mutation mode and runs apply
// when the buffer may be mutated.
func (m *Model) dispatch(in Intent, apply func()) {
	switch m.cfg.MutationMode {
	case EmitIntentsOnly:
		m.emit(in)
	case EmitIntentsAndMutate:
		if m.emit(in).ApplyLocally {
			apply()
		}
	default:
		apply()
	}
}

func (m *Model) emit(in Intent) IntentDecision {
	if m.cfg.OnIntent == nil {
		return IntentDecision{ApplyLocally: true}
	}
	return m.cfg.OnIntent(IntentBatch{Intents: []Intent{in}})
}
