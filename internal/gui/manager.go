package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"zephyr-lite/internal/config"
	"zephyr-lite/internal/gui/components"
	"zephyr-lite/internal/logger"
)

// Handlers are the menu and editing callbacks supplied by the application.
type Handlers struct {
	Open   func()
	Save   func()
	Quit   func()
	About  func()
	Edited func(text string)
}

// Options shape the window content.
type Options struct {
	Wrap        string
	Undecorated bool
	Drag        components.DragHandler
	// Anchor is painted behind the title strip when set.
	Anchor fyne.CanvasObject
}

// Manager owns the editor window: the text area, the File menu, the status
// bar and, for undecorated windows, the title strip.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	entry     *widget.Entry
	statusBar *components.StatusBar
	titleBar  *components.TitleBar
	content   *fyne.Container

	handlers Handlers
}

func NewManager(window fyne.Window, opts Options, log logger.Logger) *Manager {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = wrapping(opts.Wrap)

	m := &Manager{
		window:    window,
		logger:    log,
		entry:     entry,
		statusBar: components.NewStatusBar(),
	}

	entry.OnChanged = m.textChanged
	entry.OnCursorChanged = func() {
		m.statusBar.SetCursor(entry.CursorRow, entry.CursorColumn)
	}

	var top fyne.CanvasObject
	if opts.Undecorated && opts.Drag != nil {
		m.titleBar = components.NewTitleBar(window.Title(), opts.Drag, window.RequestFocus)
		top = m.titleBar
		if opts.Anchor != nil {
			top = container.NewStack(opts.Anchor, m.titleBar)
		}
	}
	m.content = container.NewBorder(top, m.statusBar.GetContainer(), nil, nil, entry)

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"wrap":        opts.Wrap,
		"undecorated": opts.Undecorated,
	})
	return m
}

func wrapping(mode string) fyne.TextWrap {
	switch mode {
	case config.WrapOff:
		return fyne.TextWrapOff
	case config.WrapBreak:
		return fyne.TextWrapBreak
	default:
		return fyne.TextWrapWord
	}
}

// SetHandlers installs the callbacks and builds the File menu around them.
func (m *Manager) SetHandlers(h Handlers) {
	m.handlers = h
	m.setupMenus()
	m.setupShortcuts()
}

func (m *Manager) setupMenus() {
	openItem := fyne.NewMenuItem("Open", m.handlers.Open)
	openItem.Shortcut = openShortcut
	saveItem := fyne.NewMenuItem("Save", m.handlers.Save)
	saveItem.Shortcut = saveShortcut
	quitItem := fyne.NewMenuItem("Quit", m.handlers.Quit)
	quitItem.IsQuit = true
	aboutItem := fyne.NewMenuItem("About", m.handlers.About)

	fileMenu := fyne.NewMenu("File",
		openItem,
		saveItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
		aboutItem,
	)
	m.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

var (
	openShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}
	saveShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
)

func (m *Manager) setupShortcuts() {
	canvas := m.window.Canvas()
	canvas.AddShortcut(openShortcut, func(fyne.Shortcut) { m.handlers.Open() })
	canvas.AddShortcut(saveShortcut, func(fyne.Shortcut) { m.handlers.Save() })
}

func (m *Manager) textChanged(text string) {
	if m.handlers.Edited != nil {
		m.handlers.Edited(text)
	}
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.content
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

// Text returns what the text area currently shows.
func (m *Manager) Text() string {
	return m.entry.Text
}

// SetText replaces the text area content and puts the cursor at the start.
func (m *Manager) SetText(text string) {
	m.entry.SetText(text)
	m.entry.CursorRow = 0
	m.entry.CursorColumn = 0
	m.entry.Refresh()
	m.statusBar.SetCursor(0, 0)
}

func (m *Manager) SetTitle(title string) {
	m.window.SetTitle(title)
	m.statusBar.SetDocument(title)
	if m.titleBar != nil {
		m.titleBar.SetTitle(title)
	}
}

func (m *Manager) Show() {
	m.window.SetContent(m.content)
	m.window.Show()
	m.window.Canvas().Focus(m.entry)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
