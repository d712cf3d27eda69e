// Package editor implements the File menu flows on top of the single buffer:
// opening a file (offering to save unsaved changes first) and saving.
package editor

import (
	"fmt"

	"fyne.io/fyne/v2"

	"zephyr-lite/internal/document"
	"zephyr-lite/internal/logger"
)

const (
	component = "Editor"

	// SavePromptTitle and SavePromptMessage make up the question asked when
	// opening a file over unsaved changes.
	SavePromptTitle   = "Unsaved Changes"
	SavePromptMessage = "Do you want to save changes before opening a new file?"
)

// Dialogs are the modal pickers and prompts the flows need. Each call returns
// immediately and reports the outcome through its callback; a nil reader or
// writer with a nil error means the user cancelled.
type Dialogs interface {
	ChooseOpen(callback func(fyne.URIReadCloser, error))
	ChooseSave(callback func(fyne.URIWriteCloser, error))
	Confirm(title, message string, callback func(bool))
}

// View is the text widget and window chrome the editor drives.
type View interface {
	SetText(text string)
	SetTitle(title string)
}

// Editor owns the buffer and runs the Open and Save flows against it.
type Editor struct {
	appName string
	buffer  *document.Buffer
	dialogs Dialogs
	view    View
	logger  logger.Logger
}

func New(appName string, dialogs Dialogs, view View, log logger.Logger) *Editor {
	e := &Editor{
		appName: appName,
		buffer:  document.NewBuffer(),
		dialogs: dialogs,
		view:    view,
		logger:  log,
	}
	e.refreshTitle()
	return e
}

// Buffer exposes the current buffer state.
func (e *Editor) Buffer() *document.Buffer {
	return e.buffer
}

// Edited is wired to the text widget's change callback.
func (e *Editor) Edited(text string) {
	wasModified := e.buffer.Modified()
	e.buffer.SetText(text)
	if wasModified != e.buffer.Modified() {
		e.refreshTitle()
	}
}

// Open asks for a file and replaces the buffer with its content. When the
// buffer has unsaved changes the user is first offered a save; whatever the
// outcome of that save, the chosen file is then read by its URI, so a save
// over that same file is what gets loaded.
func (e *Editor) Open() {
	e.dialogs.ChooseOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			e.logger.Warning(component, "open dialog failed", map[string]interface{}{
				"error": err,
			})
			return
		}
		if reader == nil {
			return
		}

		if !e.buffer.Modified() {
			e.load(reader.URI(), func() (string, error) { return document.LoadFrom(reader) })
			return
		}

		uri := reader.URI()
		if err := reader.Close(); err != nil {
			e.logger.Debug(component, "close before prompt failed", map[string]interface{}{
				"uri":   uri.String(),
				"error": err,
			})
		}
		reopen := func() {
			e.load(uri, func() (string, error) { return document.LoadURI(uri) })
		}

		e.dialogs.Confirm(SavePromptTitle, SavePromptMessage, func(save bool) {
			if !save {
				e.logger.Debug(component, "discarding unsaved changes", map[string]interface{}{
					"document": e.buffer.Name(),
				})
				reopen()
				return
			}
			e.saveThen(reopen)
		})
	})
}

// Save asks for a destination and writes the whole buffer there.
func (e *Editor) Save() {
	e.saveThen(nil)
}

func (e *Editor) saveThen(next func()) {
	e.dialogs.ChooseSave(func(writer fyne.URIWriteCloser, err error) {
		if next != nil {
			defer next()
		}
		if err != nil {
			e.logger.Warning(component, "save dialog failed", map[string]interface{}{
				"error": err,
			})
			return
		}
		if writer == nil {
			return
		}

		uri := writer.URI()
		text := e.buffer.Text()
		if err := document.SaveTo(writer, text); err != nil {
			e.logger.Warning(component, "save failed", map[string]interface{}{
				"uri":   uri.String(),
				"error": err,
			})
			return
		}

		e.buffer.MarkSaved(uri)
		e.refreshTitle()
		e.logger.Info(component, "document saved", map[string]interface{}{
			"uri":   uri.String(),
			"bytes": len(text),
		})
	})
}

// load replaces the buffer with what read returns. A read failure leaves
// the buffer as it was.
func (e *Editor) load(uri fyne.URI, read func() (string, error)) {
	text, err := read()
	if err != nil {
		e.logger.Warning(component, "open failed", map[string]interface{}{
			"uri":   uri.String(),
			"error": err,
		})
		return
	}

	e.buffer.Replace(text, uri)
	e.view.SetText(text)
	e.refreshTitle()
	e.logger.Info(component, "document opened", map[string]interface{}{
		"uri":   uri.String(),
		"bytes": len(text),
	})
}

func (e *Editor) refreshTitle() {
	marker := ""
	if e.buffer.Modified() {
		marker = "*"
	}
	e.view.SetTitle(fmt.Sprintf("%s%s - %s", marker, e.buffer.Name(), e.appName))
}
