package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DragHandler receives the life cycle of a primary-button drag.
type DragHandler interface {
	Begin()
	Move()
	End()
}

// TitleBar is the grab strip of an undecorated window. Pressing it raises the
// window; dragging it with the primary button moves the window.
type TitleBar struct {
	widget.BaseWidget

	title   *widget.Label
	drag    DragHandler
	onPress func()
	held    bool
}

var (
	_ fyne.Draggable    = (*TitleBar)(nil)
	_ desktop.Mouseable = (*TitleBar)(nil)
)

func NewTitleBar(title string, drag DragHandler, onPress func()) *TitleBar {
	t := &TitleBar{
		title:   widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		drag:    drag,
		onPress: onPress,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TitleBar) SetTitle(title string) {
	t.title.SetText(title)
}

func (t *TitleBar) Title() string {
	return t.title.Text
}

func (t *TitleBar) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(theme.Color(theme.ColorNameHeaderBackground))
	return widget.NewSimpleRenderer(container.NewStack(background, t.title))
}

func (t *TitleBar) MouseDown(ev *desktop.MouseEvent) {
	if t.onPress != nil {
		t.onPress()
	}
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	t.held = true
	t.drag.Begin()
}

// MouseUp ends the drag without moving the window again.
func (t *TitleBar) MouseUp(*desktop.MouseEvent) {
	t.release()
}

func (t *TitleBar) Dragged(*fyne.DragEvent) {
	if !t.held {
		return
	}
	t.drag.Move()
}

func (t *TitleBar) DragEnd() {
	t.release()
}

func (t *TitleBar) release() {
	if !t.held {
		return
	}
	t.held = false
	t.drag.End()
}
