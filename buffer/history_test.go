package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	assert.False(t, b.CanUndo())
	assert.False(t, b.CanRedo())

	b.InsertText("a")
	assert.True(t, b.CanUndo())

	v := b.Version()
	require.True(t, b.Undo())
	assert.Equal(t, "", b.Text())
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, v+1, b.Version())
	assert.True(t, b.CanRedo())

	require.True(t, b.Redo())
	assert.Equal(t, "a", b.Text())
	assert.Equal(t, 1, b.Cursor())
}

func TestBuffer_Undo_RestoresAttributes(t *testing.T) {
	b := New("ab", Options{})
	indented := Attributes{Paragraph: ParagraphStyle{FirstLineHeadIndent: 4}}
	require.NoError(t, b.SetAttributes(Range{Location: 0, Length: 2}, indented))

	require.True(t, b.Undo())
	assert.Equal(t, Attributes{}, b.AttributesAt(0), "attrs after undo")
}

func TestBuffer_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	b.InsertText("b")
	assert.False(t, b.CanRedo(), "new edit must clear redo")
}

func TestBuffer_HistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("a")
	b.InsertText("b")
	b.InsertText("c")

	b.Undo()
	b.Undo()
	assert.False(t, b.Undo(), "expected history capped at 2 steps")
	assert.Equal(t, "a", b.Text())
}

func TestBuffer_NegativeHistoryLimitDisablesUndo(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	assert.False(t, b.CanUndo(), "expected undo disabled")
}
