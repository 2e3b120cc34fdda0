package autoformat

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MarkerKind identifies a recognized list marker form.
type MarkerKind uint8

const (
	MarkerNone MarkerKind = iota
	MarkerBullet
	MarkerDash
	MarkerNumbered
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerNone:
		return "none"
	case MarkerBullet:
		return "bullet"
	case MarkerDash:
		return "dash"
	case MarkerNumbered:
		return "numbered"
	default:
		return "unknown"
	}
}

const (
	bulletRune = '•'
	dashRune   = '–'

	bulletPrefix = "•  "
	dashPrefix   = "–  "
)

// Marker is a list marker. Digits holds the numbered marker's text verbatim
// (leading zeros included); Number is its value, or 0 when the digits do not
// fit an int.
type Marker struct {
	Kind   MarkerKind
	Number int
	Digits string
}

// Prefix returns the canonical text a marker occupies at paragraph start.
func (m Marker) Prefix() string {
	switch m.Kind {
	case MarkerBullet:
		return bulletPrefix
	case MarkerDash:
		return dashPrefix
	case MarkerNumbered:
		return m.Digits + ". "
	default:
		return ""
	}
}

// Marker digits are ASCII only: numbers are parsed with strconv and
// continued in ASCII, so "٣." stays plain text. Separating whitespace is
// any Unicode space, which Go's \s alone does not cover.
var (
	triggerNumberRE = regexp.MustCompile(`^([0-9]+)\.$`)
	emptyNumberRE   = regexp.MustCompile(`^[0-9]+\.[\s\p{Zs}]*$`)
	emptyBulletRE   = regexp.MustCompile(`^(•|–)[\s\p{Zs}]*$`)
	numberPrefixRE  = regexp.MustCompile(`^([0-9]+)\.[\s\p{Zs}]+`)
	bulletPrefixRE  = regexp.MustCompile(`^(•|–)[\s\p{Zs}]+`)
	bulletMarkerRE  = regexp.MustCompile(`^(•|–)[\s\p{Zs}]*`)
)

// ClassifyTrigger matches the text between paragraph start and the cursor
// against the trigger forms, in order: "*", "-", digits followed by a
// period. The whole text must match.
func ClassifyTrigger(lineText string) (Marker, bool) {
	switch lineText {
	case "*":
		return Marker{Kind: MarkerBullet}, true
	case "-":
		return Marker{Kind: MarkerDash}, true
	}
	m := triggerNumberRE.FindStringSubmatch(lineText)
	if m == nil {
		return Marker{}, false
	}
	return numbered(m[1]), true
}

func numbered(digits string) Marker {
	n, err := strconv.Atoi(digits)
	if err != nil {
		n = 0
	}
	return Marker{Kind: MarkerNumbered, Number: n, Digits: digits}
}

func markerKindOf(r rune) MarkerKind {
	switch r {
	case bulletRune:
		return MarkerBullet
	case dashRune:
		return MarkerDash
	default:
		return MarkerNone
	}
}

// ParseMarker reports the list marker at the start of a paragraph and the
// length in runes of the prefix it occupies, separating whitespace
// included. Leading whitespace before the marker is not accepted.
func ParseMarker(para string) (Marker, int, bool) {
	if sm := numberPrefixRE.FindStringSubmatch(para); sm != nil {
		return numbered(sm[1]), utf8.RuneCountInString(sm[0]), true
	}
	if emptyNumberRE.MatchString(para) {
		return numbered(para[:strings.IndexByte(para, '.')]), utf8.RuneCountInString(para), true
	}
	if sm := bulletMarkerRE.FindStringSubmatch(para); sm != nil {
		r, _ := utf8.DecodeRuneInString(sm[1])
		return Marker{Kind: markerKindOf(r)}, utf8.RuneCountInString(sm[0]), true
	}
	return Marker{}, 0, false
}
