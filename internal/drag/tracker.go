// Package drag moves an undecorated window by following the pointer while
// the primary button is held.
package drag

import "zephyr-lite/internal/logger"

// Point is a position in screen pixels.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Tracker remembers where a drag started. Every motion is resolved from
// those two anchors alone.
type Tracker struct {
	pressed bool
	pointer Point
	origin  Point
}

// Press anchors a drag at the pointer and window origin, both in screen space.
func (t *Tracker) Press(pointer, origin Point) {
	t.pressed = true
	t.pointer = pointer
	t.origin = origin
}

// Motion returns the window origin for the current pointer, or false when no
// drag is active.
func (t *Tracker) Motion(pointer Point) (Point, bool) {
	if !t.pressed {
		return Point{}, false
	}
	return t.origin.Add(pointer.Sub(t.pointer)), true
}

func (t *Tracker) Release() {
	t.pressed = false
}

func (t *Tracker) Active() bool {
	return t.pressed
}

// Mover reads and sets the native window position.
type Mover interface {
	Position() (Point, bool)
	Pointer() (Point, bool)
	MoveTo(p Point)
}

// Controller feeds pointer events from the title strip into a Tracker and
// applies the result to a Mover. Events arrive on the UI goroutine.
type Controller struct {
	mover   Mover
	logger  logger.Logger
	tracker Tracker
}

func NewController(mover Mover, log logger.Logger) *Controller {
	return &Controller{mover: mover, logger: log}
}

// Begin starts a drag from the current native pointer and window position.
func (c *Controller) Begin() {
	origin, ok := c.mover.Position()
	if !ok {
		c.logger.Debug("Drag", "window position unavailable", nil)
		return
	}
	pointer, ok := c.mover.Pointer()
	if !ok {
		c.logger.Debug("Drag", "pointer position unavailable", nil)
		return
	}
	c.tracker.Press(pointer, origin)
}

// Move repositions the window for the current pointer. It does nothing when
// no drag is active.
func (c *Controller) Move() {
	if !c.tracker.Active() {
		return
	}
	pointer, ok := c.mover.Pointer()
	if !ok {
		return
	}
	if next, ok := c.tracker.Motion(pointer); ok {
		c.mover.MoveTo(next)
	}
}

func (c *Controller) End() {
	c.tracker.Release()
}
