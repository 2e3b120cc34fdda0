// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// Every character typed into the editor is first offered to an autoformat
// engine, which may turn "* ", "- " and "1. " into list markers, continue a
// list on Enter, or end it when Enter is pressed on an empty item. Hosts can
// observe or veto mutations through intents and follow the document through
// change events.
package editor
