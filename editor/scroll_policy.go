package editor

// ScrollPolicy controls how viewport scrolling may move relative to the
// cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the viewport away from
	// the cursor.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly keeps vertical movement cursor-driven and ignores
	// the wheel.
	ScrollFollowCursorOnly
)
