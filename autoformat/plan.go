package autoformat

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/autolist/buffer"
)

// Edit is a proposed replacement of Range with Text, not yet applied.
type Edit struct {
	Range buffer.Range
	Text  string
}

// Snapshot is the document state a plan is computed against.
type Snapshot struct {
	Text      []rune
	Composing bool
}

// ActionKind identifies the rewrite an Action performs.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	// ActionConvert replaces a trigger with its canonical prefix.
	ActionConvert
	// ActionContinue inserts a newline and the next marker.
	ActionContinue
	// ActionRemove replaces an empty marker line with a bare newline.
	ActionRemove
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionConvert:
		return "convert"
	case ActionContinue:
		return "continue"
	case ActionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Action is a planned rewrite: replace Range with Text, then place the
// cursor at Cursor. Marker is the marker converted, continued or removed.
type Action struct {
	Kind   ActionKind
	Range  buffer.Range
	Text   string
	Cursor int
	Marker Marker
}

// Plan decides how edit should be handled against s without touching any
// document. It reports false when the edit should be applied unchanged.
func (e *Engine) Plan(s Snapshot, edit Edit) (Action, bool) {
	if s.Composing || !edit.Range.IsCollapsed() {
		return Action{}, false
	}
	loc := edit.Range.Location
	if loc < 0 || loc > len(s.Text) {
		return Action{}, false
	}

	switch edit.Text {
	case " ":
		return e.planTrigger(s.Text, loc)
	case "\n":
		return e.planNewline(s.Text, loc)
	default:
		return Action{}, false
	}
}

func (e *Engine) planTrigger(text []rune, loc int) (Action, bool) {
	p := buffer.ParagraphRangeIn(text, buffer.Caret(loc))
	m, ok := ClassifyTrigger(string(text[p.Start:loc]))
	if !ok || !e.enabled(m.Kind) {
		return Action{}, false
	}

	prefix := m.Prefix()
	return Action{
		Kind:   ActionConvert,
		Range:  buffer.Span(p.Start, loc),
		Text:   prefix,
		Cursor: p.Start + utf8.RuneCountInString(prefix),
		Marker: m,
	}, true
}

func (e *Engine) planNewline(text []rune, loc int) (Action, bool) {
	if len(text) == 0 {
		return Action{}, false
	}

	p := buffer.ParagraphRangeIn(text, buffer.Caret(loc))
	para := string(text[p.Start:p.End])

	if m, ok := e.emptyMarker(strings.TrimSpace(para)); ok {
		return Action{
			Kind:   ActionRemove,
			Range:  p.Enclosing(),
			Text:   "\n",
			Cursor: p.Start + 1,
			Marker: m,
		}, true
	}

	if e.cfg.DisableContinuation {
		return Action{}, false
	}

	var (
		m      Marker
		prefix string
		ok     bool
	)
	if m, prefix, ok = e.numberedContinuation(para); !ok {
		if m, prefix, ok = e.bulletContinuation(para); !ok {
			return Action{}, false
		}
	}

	ins := "\n" + prefix
	return Action{
		Kind:   ActionContinue,
		Range:  buffer.Caret(loc),
		Text:   ins,
		Cursor: loc + utf8.RuneCountInString(ins),
		Marker: m,
	}, true
}

func (e *Engine) emptyMarker(trimmed string) (Marker, bool) {
	if e.cfg.DisableRemoval {
		return Marker{}, false
	}
	if emptyNumberRE.MatchString(trimmed) {
		digits := strings.TrimRightFunc(trimmed, func(r rune) bool { return r < '0' || r > '9' })
		m := numbered(digits)
		return m, e.enabled(m.Kind)
	}
	if sm := emptyBulletRE.FindStringSubmatch(trimmed); sm != nil {
		r, _ := utf8.DecodeRuneInString(sm[1])
		m := Marker{Kind: markerKindOf(r)}
		return m, e.enabled(m.Kind)
	}
	return Marker{}, false
}

// numberedContinuation derives the next marker from the paragraph's own
// number; sibling items are not consulted.
func (e *Engine) numberedContinuation(para string) (Marker, string, bool) {
	if !e.enabled(MarkerNumbered) {
		return Marker{}, "", false
	}
	sm := numberPrefixRE.FindStringSubmatch(para)
	if sm == nil {
		return Marker{}, "", false
	}
	n, err := strconv.Atoi(sm[1])
	if err != nil || n == math.MaxInt {
		return Marker{}, "", false
	}
	next := strconv.Itoa(n + 1)
	return Marker{Kind: MarkerNumbered, Number: n + 1, Digits: next}, next + ". ", true
}

// bulletContinuation repeats the paragraph's marker together with the
// whitespace that follows it.
func (e *Engine) bulletContinuation(para string) (Marker, string, bool) {
	sm := bulletPrefixRE.FindStringSubmatch(para)
	if sm == nil {
		return Marker{}, "", false
	}
	r, _ := utf8.DecodeRuneInString(sm[1])
	m := Marker{Kind: markerKindOf(r)}
	if !e.enabled(m.Kind) {
		return Marker{}, "", false
	}
	return m, sm[0], true
}
