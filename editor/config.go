package editor

import (
	"github.com/iw2rmb/autolist/autoformat"
	"github.com/iw2rmb/autolist/buffer"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string
	// Attributes applied to the initial text and to typing in an empty buffer.
	Attributes buffer.Attributes

	// Rendering options.
	ShowLineNums bool
	// SoftWrap breaks long paragraphs at the viewport width. Continuation rows
	// are indented by the paragraph's HeadIndent.
	SoftWrap bool
	TabWidth int
	Style    Style
	// ScrollPolicy decides whether the mouse wheel may scroll away from the
	// cursor.
	ScrollPolicy ScrollPolicy

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly  bool
	Clipboard Clipboard

	// Autoformat intercepts typed text. When nil an engine with every list
	// form enabled is used, unless DisableAutoformat is set.
	Autoformat        *autoformat.Engine
	DisableAutoformat bool

	MutationMode MutationMode
	OnIntent     func(IntentBatch) IntentDecision
	OnChange     func(ChangeEvent)
}

const defaultTabWidth = 4

func normalizeConfig(cfg Config) Config {
	if len(cfg.KeyMap.Enter.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.Autoformat == nil && !cfg.DisableAutoformat {
		cfg.Autoformat = autoformat.New(autoformat.Config{})
	}
	cfg.MutationMode = normalizeMutationMode(cfg.MutationMode)
	return cfg
}
