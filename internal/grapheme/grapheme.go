package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Boundaries returns the rune offsets at which grapheme clusters of text end.
// The result is strictly increasing and its last element equals the rune
// count of text. Empty text has no boundaries.
func Boundaries(text string) []int {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]int, 0, utf8.RuneCountInString(text))
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the rune offset of the grapheme boundary strictly before off,
// or 0 when off is at or before the first boundary.
func Prev(text string, off int) int {
	prev := 0
	for _, b := range Boundaries(text) {
		if b >= off {
			break
		}
		prev = b
	}
	return prev
}

// Next returns the rune offset of the grapheme boundary strictly after off,
// or the rune count of text when off is already at the end.
func Next(text string, off int) int {
	for _, b := range Boundaries(text) {
		if b > off {
			return b
		}
	}
	return utf8.RuneCountInString(text)
}

// Width returns the terminal cell width of a single cluster drawn at
// visualCol. Tabs advance to the next multiple of tabWidth.
func Width(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - visualCol%tabWidth
	}

	w := runewidth.StringWidth(cluster)
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	if w < 0 {
		w = 0
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
