package app

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zephyr-lite/internal/config"
	"zephyr-lite/internal/drag"
	"zephyr-lite/internal/logger"
)

type stillMover struct{}

func (stillMover) Position() (drag.Point, bool) { return drag.Point{}, false }
func (stillMover) Pointer() (drag.Point, bool)  { return drag.Point{}, false }
func (stillMover) MoveTo(drag.Point)            {}

func testConfig() config.Config {
	return config.Config{
		Window: config.WindowConfig{Width: 640, Height: 480},
		Editor: config.EditorConfig{Wrap: config.WrapWord},
		Theme:  config.ThemeConfig{Dark: true},
		Log:    config.LogConfig{Level: "info"},
	}
}

func TestNewApplicationWiresEditor(t *testing.T) {
	a, err := newApplication(test.NewTempApp(t), testConfig(), logger.Nop(), stillMover{})
	require.NoError(t, err)

	assert.Equal(t, "Untitled - Zephyr Lite", a.window.Title())

	a.editor.Edited("typed")
	assert.True(t, a.editor.Buffer().Modified())
	assert.Equal(t, "*Untitled - Zephyr Lite", a.window.Title())
}

func TestNewApplicationRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Editor.Wrap = "diagonal"

	_, err := newApplication(test.NewTempApp(t), cfg, logger.Nop(), stillMover{})
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestQuitShutsDownOnce(t *testing.T) {
	a, err := newApplication(test.NewTempApp(t), testConfig(), logger.Nop(), stillMover{})
	require.NoError(t, err)

	a.Quit()
	a.Quit()
	assert.True(t, a.lifecycle.IsShutdown())
}

func TestShutdownAfterLoopEndsReturns(t *testing.T) {
	a, err := newApplication(test.NewTempApp(t), testConfig(), logger.Nop(), stillMover{})
	require.NoError(t, err)

	a.finish()
	assert.True(t, a.lifecycle.IsShutdown())

	done := make(chan struct{})
	go func() {
		a.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Shutdown blocked after the main loop ended")
	}
}

func TestUndecoratedWindowBuilds(t *testing.T) {
	cfg := testConfig()
	cfg.Window.Undecorated = true

	a, err := newApplication(test.NewTempApp(t), cfg, logger.Nop(), stillMover{})
	require.NoError(t, err)
	assert.NotNil(t, a.window)
}
