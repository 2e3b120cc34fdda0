// Package buffer implements the attributed, rune-accurate document model used
// by the autolist editor and its autoformat engine.
//
// Offsets are 0-based rune offsets into the whole document. Ranges are
// half-open spans [Location, Location+Length). Row/column positions are
// derived views used for rendering only.
package buffer
