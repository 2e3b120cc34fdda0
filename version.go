// Package autolist is a terminal text editor with list autoformatting.
//
// The document model lives in buffer, the list rules in autoformat, and the
// Bubble Tea component in editor.
package autolist

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer form, without a leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// UserAgent identifies the program in logs, for
// example "autolist/0.1.0".
func UserAgent() string {
	return "autolist/" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 version without a "v" prefix.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
