package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/autolist/buffer"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text lipgloss.Style
	// Marker styles the list marker prefix of a paragraph ("•  ", "2. ").
	Marker    lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Marker:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

// attributeStyle layers the character colors over base. Empty colors keep
// the base style's.
func attributeStyle(base lipgloss.Style, a buffer.Attributes) lipgloss.Style {
	if a.Foreground != "" {
		base = base.Foreground(lipgloss.Color(a.Foreground))
	}
	if a.Background != "" {
		base = base.Background(lipgloss.Color(a.Background))
	}
	return base
}
