package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/autolist/autoformat"
	"github.com/iw2rmb/autolist/buffer"
	"github.com/iw2rmb/autolist/editor"
)

// Config is the complete host configuration.
type Config struct {
	Editor     EditorConfig     `toml:"editor" yaml:"editor"`
	Autoformat AutoformatConfig `toml:"autoformat" yaml:"autoformat"`
	Theme      ThemeConfig      `toml:"theme" yaml:"theme"`
}

// EditorConfig holds editing and layout settings.
type EditorConfig struct {
	ShowLineNumbers bool `toml:"show_line_numbers" yaml:"show_line_numbers"`
	SoftWrap        bool `toml:"soft_wrap" yaml:"soft_wrap"`
	TabWidth        int  `toml:"tab_width" yaml:"tab_width"`
	HistoryLimit    int  `toml:"history_limit" yaml:"history_limit"`

	// Default character colors, lipgloss color strings.
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`
}

// AutoformatConfig switches list behaviors. Enabled gates all of them.
type AutoformatConfig struct {
	Enabled      bool `toml:"enabled" yaml:"enabled"`
	Bullets      bool `toml:"bullets" yaml:"bullets"`
	Dashes       bool `toml:"dashes" yaml:"dashes"`
	Numbers      bool `toml:"numbers" yaml:"numbers"`
	Continuation bool `toml:"continuation" yaml:"continuation"`
	Removal      bool `toml:"removal" yaml:"removal"`
}

// ThemeConfig holds colors as lipgloss color strings ("212", "#3d405b").
type ThemeConfig struct {
	Marker           string `toml:"marker" yaml:"marker"`
	Gutter           string `toml:"gutter" yaml:"gutter"`
	LineNumberActive string `toml:"line_number_active" yaml:"line_number_active"`
	Selection        string `toml:"selection" yaml:"selection"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			ShowLineNumbers: true,
			TabWidth:        4,
			HistoryLimit:    1000,
		},
		Autoformat: AutoformatConfig{
			Enabled:      true,
			Bullets:      true,
			Dashes:       true,
			Numbers:      true,
			Continuation: true,
			Removal:      true,
		},
		Theme: ThemeConfig{
			Marker:           "212",
			Gutter:           "240",
			LineNumberActive: "250",
			Selection:        "237",
		},
	}
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width must be between 1 and 16, got %d", c.Editor.TabWidth)
	}
	if c.Editor.HistoryLimit < 0 {
		return fmt.Errorf("editor.history_limit must not be negative, got %d", c.Editor.HistoryLimit)
	}
	return nil
}

// Engine returns the autoformat engine for c, or nil when autoformatting is
// disabled.
func (c AutoformatConfig) Engine() *autoformat.Engine {
	if !c.Enabled {
		return nil
	}
	return autoformat.New(autoformat.Config{
		DisableBullets:      !c.Bullets,
		DisableDashes:       !c.Dashes,
		DisableNumbers:      !c.Numbers,
		DisableContinuation: !c.Continuation,
		DisableRemoval:      !c.Removal,
	})
}

// Style builds the editor style for the theme on top of the default style.
func (t ThemeConfig) Style() editor.Style {
	st := editor.DefaultStyle()
	if t.Marker != "" {
		st.Marker = st.Marker.Foreground(lipgloss.Color(t.Marker))
	}
	if t.Gutter != "" {
		st.Gutter = st.Gutter.Foreground(lipgloss.Color(t.Gutter))
		st.LineNum = st.LineNum.Foreground(lipgloss.Color(t.Gutter))
	}
	if t.LineNumberActive != "" {
		st.LineNumActive = st.LineNumActive.Foreground(lipgloss.Color(t.LineNumberActive))
	}
	if t.Selection != "" {
		st.Selection = st.Selection.Background(lipgloss.Color(t.Selection))
	}
	return st
}

// EditorConfig returns the editor component configuration for c.
func (c Config) EditorConfig(text string) editor.Config {
	return editor.Config{
		Text: text,
		Attributes: buffer.Attributes{
			Foreground: c.Editor.Foreground,
			Background: c.Editor.Background,
		},
		ShowLineNums:      c.Editor.ShowLineNumbers,
		SoftWrap:          c.Editor.SoftWrap,
		TabWidth:          c.Editor.TabWidth,
		Style:             c.Theme.Style(),
		HistoryLimit:      c.Editor.HistoryLimit,
		Autoformat:        c.Autoformat.Engine(),
		DisableAutoformat: !c.Autoformat.Enabled,
	}
}
