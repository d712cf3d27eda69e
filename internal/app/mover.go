package app

import (
	"image"
	"math"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/go-gl/glfw/v3.3/glfw"

	"zephyr-lite/internal/drag"
)

// glfwMover drives the native window behind the Fyne desktop driver.
//
// Fyne only makes the window's GL context current while it paints, and
// pointer callbacks run after the context is detached again. The mover
// therefore captures the window from inside the paint pass, through a
// raster whose generator the GL painter calls with the context current, and
// keeps using that handle from the pointer callbacks.
type glfwMover struct {
	current func() *glfw.Window
	window  atomic.Pointer[glfw.Window]
}

func newGLFWMover() *glfwMover {
	return &glfwMover{current: glfw.GetCurrentContext}
}

// Anchor is a transparent raster to place anywhere in the window content.
// Each time it is painted it records the window that is being painted.
func (m *glfwMover) Anchor() fyne.CanvasObject {
	return canvas.NewRaster(m.generate)
}

func (m *glfwMover) generate(_, _ int) image.Image {
	m.capture()
	return image.NewNRGBA(image.Rect(0, 0, 1, 1))
}

func (m *glfwMover) capture() {
	if w := m.current(); w != nil {
		m.window.Store(w)
	}
}

func (m *glfwMover) resolve() *glfw.Window {
	if w := m.window.Load(); w != nil {
		return w
	}
	m.capture()
	return m.window.Load()
}

func (m *glfwMover) Position() (drag.Point, bool) {
	w := m.resolve()
	if w == nil {
		return drag.Point{}, false
	}
	x, y := w.GetPos()
	return drag.Point{X: x, Y: y}, true
}

// Pointer reports the cursor in screen space: window origin plus the
// window-relative cursor.
func (m *glfwMover) Pointer() (drag.Point, bool) {
	w := m.resolve()
	if w == nil {
		return drag.Point{}, false
	}
	wx, wy := w.GetPos()
	cx, cy := w.GetCursorPos()
	return drag.Point{X: wx + int(math.Round(cx)), Y: wy + int(math.Round(cy))}, true
}

func (m *glfwMover) MoveTo(p drag.Point) {
	if w := m.resolve(); w != nil {
		w.SetPos(p.X, p.Y)
	}
}
