package editor

// Clipboard provides editor-level clipboard integration.
//
// Failures are ignored; they never reach the document.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
