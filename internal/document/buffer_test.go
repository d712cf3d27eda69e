package document

import (
	"testing"

	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
)

func TestBufferModifiedFlag(t *testing.T) {
	b := NewBuffer()
	assert.False(t, b.Modified())
	assert.Equal(t, "Untitled", b.Name())

	b.SetText("")
	assert.False(t, b.Modified(), "identical text is not an edit")

	b.SetText("hello")
	assert.True(t, b.Modified())

	uri := storage.NewFileURI("/tmp/notes.txt")
	b.MarkSaved(uri)
	assert.False(t, b.Modified())
	assert.Equal(t, "hello", b.Text())
	assert.Equal(t, "notes.txt", b.Name())
}

func TestBufferReplaceClearsModified(t *testing.T) {
	b := NewBuffer()
	b.SetText("draft")

	uri := storage.NewFileURI("/tmp/loaded.txt")
	b.Replace("from disk", uri)

	assert.False(t, b.Modified())
	assert.Equal(t, "from disk", b.Text())
	assert.Equal(t, uri.String(), b.URI().String())
}
