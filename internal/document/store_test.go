package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDisk = errors.New("disk full")

type stubWriter struct {
	uri      fyne.URI
	writeErr error
	closeErr error
	limit    int
	written  strings.Builder
	closed   bool
}

func (w *stubWriter) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	if w.limit > 0 && len(p) > w.limit {
		w.written.Write(p[:w.limit])
		return w.limit, nil
	}
	return w.written.Write(p)
}

func (w *stubWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func (w *stubWriter) URI() fyne.URI {
	return w.uri
}

func TestSaveThenOpenIsByteIdentical(t *testing.T) {
	test.NewTempApp(t)
	path := filepath.Join(t.TempDir(), "round.txt")
	uri := storage.NewFileURI(path)
	content := "line one\r\nline two\n\ttabbed \x00 nul\nünïcødé"

	require.NoError(t, SaveURI(uri, content))

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(content), onDisk)

	got, err := LoadURI(uri)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestInvalidUTF8RoundTripsVerbatim(t *testing.T) {
	test.NewTempApp(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "latin1.txt")
	raw := []byte{'c', 'a', 'f', 0xe9, '\n', 0xff, 0xfe}
	require.NoError(t, os.WriteFile(src, raw, 0o644))

	text, err := LoadURI(storage.NewFileURI(src))
	require.NoError(t, err)

	dst := storage.NewFileURI(filepath.Join(dir, "copy.txt"))
	require.NoError(t, SaveURI(dst, text))

	copied, err := os.ReadFile(dst.Path())
	require.NoError(t, err)
	assert.Equal(t, raw, copied)
}

func TestSaveTruncatesExistingFile(t *testing.T) {
	test.NewTempApp(t)
	path := filepath.Join(t.TempDir(), "trunc.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content"), 0o644))

	require.NoError(t, SaveURI(storage.NewFileURI(path), "short"))

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(onDisk))
}

func TestNilLocations(t *testing.T) {
	_, err := LoadURI(nil)
	require.ErrorIs(t, err, ErrNoSource)
	require.ErrorIs(t, SaveURI(nil, "x"), ErrNoDestination)
}

func TestSaveToReportsWriteFailure(t *testing.T) {
	w := &stubWriter{uri: storage.NewFileURI("/x"), writeErr: errDisk}

	err := SaveTo(w, "data")
	require.ErrorIs(t, err, errDisk)
	assert.True(t, w.closed)
}

func TestSaveToReportsShortWrite(t *testing.T) {
	w := &stubWriter{uri: storage.NewFileURI("/x"), limit: 2}

	err := SaveTo(w, "data")
	require.ErrorIs(t, err, ErrShortWrite)
}

func TestSaveToReportsCloseFailure(t *testing.T) {
	w := &stubWriter{uri: storage.NewFileURI("/x"), closeErr: errDisk}

	err := SaveTo(w, "data")
	require.ErrorIs(t, err, errDisk)
	assert.Equal(t, "data", w.written.String())
}

func TestLoadURIMissing(t *testing.T) {
	test.NewTempApp(t)

	_, err := LoadURI(storage.NewFileURI(filepath.Join(t.TempDir(), "nope.txt")))
	require.Error(t, err)
}

func TestLoadURIDirectoryFails(t *testing.T) {
	test.NewTempApp(t)

	_, err := LoadURI(storage.NewFileURI(t.TempDir()))
	require.Error(t, err)
}
