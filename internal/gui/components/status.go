package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container     *fyne.Container
	documentLabel *widget.Label
	cursorLabel   *widget.Label
}

func NewStatusBar() *StatusBar {
	documentLabel := widget.NewLabel("Untitled")
	cursorLabel := widget.NewLabel("Ln 1, Col 1")

	mainContainer := container.NewBorder(
		nil, nil,
		documentLabel,
		cursorLabel,
	)

	return &StatusBar{
		container:     mainContainer,
		documentLabel: documentLabel,
		cursorLabel:   cursorLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetDocument(name string) {
	sb.documentLabel.SetText(name)
}

// SetCursor takes the zero-based row and column reported by the entry.
func (sb *StatusBar) SetCursor(row, col int) {
	sb.cursorLabel.SetText(fmt.Sprintf("Ln %d, Col %d", row+1, col+1))
}

func (sb *StatusBar) Document() string {
	return sb.documentLabel.Text
}

func (sb *StatusBar) Cursor() string {
	return sb.cursorLabel.Text
}
