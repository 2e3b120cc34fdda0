package autoformat

import (
	"fmt"
	"unicode/utf8"

	"github.com/iw2rmb/autolist/buffer"
)

// Document is the host-owned text the engine inspects and rewrites.
// *buffer.Buffer implements it.
type Document interface {
	Len() int
	Runes() []rune
	IsComposing() bool
	TypingAttributes() buffer.Attributes
	AttributesAt(off int) buffer.Attributes
	ReplaceAttributed(r buffer.Range, text string, attrs buffer.Attributes) error
}

// Decision tells the host what to do with a proposed edit.
//
// When Handled is false the host applies the edit unchanged. When Handled is
// true the document has already been rewritten: the host moves the cursor to
// Cursor and discards the proposed edit.
type Decision struct {
	Handled bool
	Cursor  int
}

// Allow returns the decision to apply the proposed edit unchanged.
func Allow() Decision { return Decision{} }

// Handled returns the decision for an edit the engine already performed.
func Handled(cursor int) Decision { return Decision{Handled: true, Cursor: cursor} }

// Config switches individual behaviors off. The zero value enables
// everything.
type Config struct {
	DisableBullets      bool
	DisableDashes       bool
	DisableNumbers      bool
	DisableContinuation bool
	DisableRemoval      bool
}

// Engine recognizes list triggers and maintains list markers. It holds no
// per-document state and may be shared between documents on one goroutine.
type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config { return e.cfg }

// Intercept offers a proposed edit to the engine. If the edit triggers a
// list rewrite, doc is mutated directly and the decision is Handled.
//
// The only error is a computed range that no longer fits doc, which means
// the host mutated doc out of order; doc is left untouched in that case and
// the decision is Allow.
//
// A nil interface yields Allow. A Document holding a nil pointer, such as
// a nil *buffer.Buffer, is a caller error and is not checked.
func (e *Engine) Intercept(doc Document, edit Edit) (Decision, error) {
	if doc == nil {
		return Allow(), nil
	}

	act, ok := e.Plan(Snapshot{Text: doc.Runes(), Composing: doc.IsComposing()}, edit)
	if !ok {
		return Allow(), nil
	}
	cursor, err := e.Apply(doc, act)
	if err != nil {
		return Allow(), err
	}
	return Handled(cursor), nil
}

// Apply performs a planned action on doc and returns the cursor to report.
// Every inserted line gets zero first-line and hanging indent.
func (e *Engine) Apply(doc Document, act Action) (int, error) {
	if n := doc.Len(); act.Range.Location < 0 || act.Range.Length < 0 || act.Range.End() > n {
		return 0, fmt.Errorf("autoformat: %s: %w", act.Kind, &buffer.RangeError{Range: act.Range, Len: n})
	}

	switch act.Kind {
	case ActionContinue:
		return InsertText(doc, act.Range.Location, act.Text)
	case ActionConvert, ActionRemove:
		attrs := doc.AttributesAt(act.Range.Location).WithoutIndent()
		if err := doc.ReplaceAttributed(act.Range, act.Text, attrs); err != nil {
			return 0, fmt.Errorf("autoformat: %s: %w", act.Kind, err)
		}
		return act.Cursor, nil
	default:
		return 0, fmt.Errorf("autoformat: cannot apply action %s", act.Kind)
	}
}

// InsertText inserts text at off carrying the document's typing attributes
// with paragraph indents forced to zero. It returns the collapsed cursor
// right after the inserted text, in runes.
func InsertText(doc Document, off int, text string) (int, error) {
	attrs := doc.TypingAttributes().WithoutIndent()
	if err := doc.ReplaceAttributed(buffer.Caret(off), text, attrs); err != nil {
		return 0, fmt.Errorf("autoformat: insert at %d: %w", off, err)
	}
	return off + utf8.RuneCountInString(text), nil
}

func (e *Engine) enabled(k MarkerKind) bool {
	switch k {
	case MarkerBullet:
		return !e.cfg.DisableBullets
	case MarkerDash:
		return !e.cfg.DisableDashes
	case MarkerNumbered:
		return !e.cfg.DisableNumbers
	default:
		return false
	}
}

var _ Document = (*buffer.Buffer)(nil)
