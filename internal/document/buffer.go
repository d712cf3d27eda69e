// Package document holds the single in-memory text buffer and moves its bytes
// to and from storage.
package document

import "fyne.io/fyne/v2"

const untitled = "Untitled"

// Buffer is the editor's text plus the modified flag and the location it was
// last loaded from or saved to. It is owned by the UI goroutine.
type Buffer struct {
	text     string
	modified bool
	uri      fyne.URI
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Text() string {
	return b.text
}

// SetText records a user edit. Setting identical text leaves the flag alone.
func (b *Buffer) SetText(text string) {
	if text == b.text {
		return
	}
	b.text = text
	b.modified = true
}

// Replace swaps in freshly loaded content.
func (b *Buffer) Replace(text string, uri fyne.URI) {
	b.text = text
	b.uri = uri
	b.modified = false
}

// MarkSaved is called once the current text is on disk at uri.
func (b *Buffer) MarkSaved(uri fyne.URI) {
	b.uri = uri
	b.modified = false
}

func (b *Buffer) Modified() bool {
	return b.modified
}

// URI is nil for a buffer that was never loaded or saved.
func (b *Buffer) URI() fyne.URI {
	return b.uri
}

func (b *Buffer) Name() string {
	if b.uri == nil {
		return untitled
	}
	return b.uri.Name()
}
