package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ChooseOpen shows the open-file picker.
func (m *Manager) ChooseOpen(callback func(fyne.URIReadCloser, error)) {
	dialog.ShowFileOpen(callback, m.window)
}

// ChooseSave shows the save-file picker.
func (m *Manager) ChooseSave(callback func(fyne.URIWriteCloser, error)) {
	dialog.ShowFileSave(callback, m.window)
}

// Confirm asks a yes/no question.
func (m *Manager) Confirm(title, message string, callback func(bool)) {
	d := dialog.NewConfirm(title, message, callback, m.window)
	d.SetDismissText("No")
	d.SetConfirmText("Yes")
	d.Show()
}

// AboutInfo is the text shown by the About dialog.
type AboutInfo struct {
	Name      string
	Version   string
	Comments  string
	Copyright string
	License   string
	Website   string
}

func (m *Manager) ShowAbout(info AboutInfo) {
	name := widget.NewLabelWithStyle(info.Name+" "+info.Version, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	comments := widget.NewLabelWithStyle(info.Comments, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	copyright := widget.NewLabelWithStyle(info.Copyright, fyne.TextAlignCenter, fyne.TextStyle{})
	license := widget.NewLabel(info.License)
	license.Wrapping = fyne.TextWrapWord

	items := []fyne.CanvasObject{name, comments, copyright, license}
	if info.Website != "" {
		items = append(items, widget.NewLabelWithStyle(info.Website, fyne.TextAlignCenter, fyne.TextStyle{Monospace: true}))
	}

	d := dialog.NewCustom("About "+info.Name, "Close", container.NewVBox(items...), m.window)
	d.Resize(fyne.NewSize(420, 0))
	d.Show()
}
