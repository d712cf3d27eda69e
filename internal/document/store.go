package document

import (
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// ErrNoDestination is returned when a save has no location to write to.
var ErrNoDestination = errors.New("no save destination")

// ErrNoSource is returned when a load has no location to read from.
var ErrNoSource = errors.New("no load source")

// ErrShortWrite is returned when the writer accepted fewer bytes than the
// buffer holds.
var ErrShortWrite = errors.New("short write")

// Load reads every byte from r. Content is returned verbatim.
func Load(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	return string(data), nil
}

// Save writes the whole text to w in one call.
func Save(w io.Writer, text string) error {
	n, err := io.WriteString(w, text)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if n != len(text) {
		return fmt.Errorf("write %d of %d bytes: %w", n, len(text), ErrShortWrite)
	}
	return nil
}

// LoadFrom drains and closes a picker-supplied reader.
func LoadFrom(r fyne.URIReadCloser) (text string, err error) {
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", r.URI(), cerr)
		}
	}()
	text, err = Load(r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", r.URI(), err)
	}
	return text, nil
}

// SaveTo writes text and closes a picker-supplied writer. A failed close
// means the data may not be on disk, so it fails the save.
func SaveTo(w fyne.URIWriteCloser, text string) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", w.URI(), cerr)
		}
	}()
	if err := Save(w, text); err != nil {
		return fmt.Errorf("%s: %w", w.URI(), err)
	}
	return nil
}

// LoadURI opens uri through the Fyne storage repository and reads all of it.
func LoadURI(uri fyne.URI) (string, error) {
	if uri == nil {
		return "", ErrNoSource
	}
	r, err := storage.Reader(uri)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", uri, err)
	}
	return LoadFrom(r)
}

// SaveURI truncates uri through the Fyne storage repository and writes text
// to it.
func SaveURI(uri fyne.URI, text string) error {
	if uri == nil {
		return ErrNoDestination
	}
	w, err := storage.Writer(uri)
	if err != nil {
		return fmt.Errorf("create %s: %w", uri, err)
	}
	return SaveTo(w, text)
}
