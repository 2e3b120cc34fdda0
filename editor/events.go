package editor

import "github.com/iw2rmb/autolist/buffer"

// ChangeEvent is emitted after every buffer version change observed by the
// editor, cursor and selection moves included.
type ChangeEvent struct {
	Version   uint64
	Cursor    int
	Selection buffer.Range
	Text      string

	// Change is the text mutation that produced this version, or nil when
	// only the cursor or selection moved.
	Change *buffer.Change
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version:   b.Version(),
		Cursor:    b.Cursor(),
		Selection: b.Selection(),
		Text:      b.Text(),
	}
	if c, ok := b.LastChange(); ok && c.VersionAfter == ev.Version {
		ev.Change = &c
	}
	return ev
}
