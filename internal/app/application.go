package app

import (
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"zephyr-lite/internal/config"
	"zephyr-lite/internal/drag"
	"zephyr-lite/internal/editor"
	"zephyr-lite/internal/gui"
	"zephyr-lite/internal/logger"
)

const (
	AppName    = "Zephyr Lite"
	AppID      = "com.zephyrindustrie.zephyrlite"
	AppVersion = "3.3.24 (Nova)"
)

// anchored movers need an object in the window content to find the native
// window through.
type anchored interface {
	Anchor() fyne.CanvasObject
}

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	editor     *editor.Editor
	logger     logger.Logger
	lifecycle  *Lifecycle
	stopped    atomic.Bool
}

// NewApplication builds the desktop application from cfg.
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log, newGLFWMover())
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger, mover drag.Mover) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Theme.Dark {
		fyneApp.Settings().SetTheme(gui.DarkTheme())
	}

	window := newWindow(fyneApp, cfg.Window.Undecorated)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	opts := gui.Options{Wrap: cfg.Editor.Wrap, Undecorated: cfg.Window.Undecorated}
	if cfg.Window.Undecorated {
		opts.Drag = drag.NewController(mover, log)
		if a, ok := mover.(anchored); ok {
			opts.Anchor = a.Anchor()
		}
	}
	guiManager := gui.NewManager(window, opts, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		editor:     editor.New(AppName, guiManager, guiManager, log),
		logger:     log,
	}
	application.lifecycle = NewLifecycle(guiManager, log)
	application.setupHandlers()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":     AppVersion,
		"width":       cfg.Window.Width,
		"height":      cfg.Window.Height,
		"undecorated": cfg.Window.Undecorated,
		"dark":        cfg.Theme.Dark,
	})
	return application, nil
}

// newWindow creates a borderless window when asked and the driver supports
// one, otherwise a regular decorated window.
func newWindow(fyneApp fyne.App, undecorated bool) fyne.Window {
	if undecorated {
		if drv, ok := fyneApp.Driver().(desktop.Driver); ok {
			w := drv.CreateSplashWindow()
			w.SetTitle(AppName)
			return w
		}
	}
	return fyneApp.NewWindow(AppName)
}

func (a *Application) setupHandlers() {
	a.guiManager.SetHandlers(gui.Handlers{
		Open:   a.editor.Open,
		Save:   a.editor.Save,
		Quit:   a.Quit,
		About:  a.showAbout,
		Edited: a.editor.Edited,
	})
}

// Run shows the window and blocks in the toolkit main loop.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.Quit()
	})

	a.guiManager.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	a.finish()

	return nil
}

// finish runs once the main loop has returned.
func (a *Application) finish() {
	a.stopped.Store(true)
	a.lifecycle.Shutdown()
}

// Quit stops the main loop. Unsaved changes are not prompted for.
func (a *Application) Quit() {
	a.lifecycle.Shutdown()
	a.fyneApp.Quit()
}

// Shutdown may be called from any goroutine. Once the main loop has ended
// there is nothing left to stop and it returns at once.
func (a *Application) Shutdown() {
	if a.stopped.Load() {
		return
	}
	fyne.Do(a.Quit)
}

func (a *Application) showAbout() {
	a.guiManager.ShowAbout(gui.AboutInfo{
		Name:      AppName,
		Version:   AppVersion,
		Comments:  "Code at the speed of light.",
		Copyright: "Copyright © 2024 Zephyr Industrie",
		License:   "Thoq License - (Custom License) - https://raw.githubusercontent.com/Thoq-jar/Zephyr-Lite/main/License",
		Website:   "Coming Soon",
	})
}
