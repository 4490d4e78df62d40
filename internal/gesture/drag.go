package gesture

import (
	"math"
	"time"

	"github.com/depeter/wheelpicker/internal/wheel"
)

// DefaultDeadZone is how far a pointer moves before a press becomes a drag.
const DefaultDeadZone = 4.0

// Pointer is the state of the primary pointer for one frame.
type Pointer struct {
	X, Y    float64
	Pressed bool
}

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies inside the rectangle.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W &&
		py >= r.Y && py <= r.Y+r.H
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Handler receives a drag along one axis.
type Handler interface {
	GestureStart(now time.Time)
	GestureUpdate(translation float64)
	GestureEnd(velocity float64, now time.Time)
}

// Drag turns per-frame pointer polls into axis-aligned drag gestures.
// A press must start inside Bounds and move past DeadZone before it
// becomes a drag; a press released earlier is reported as a tap.
type Drag struct {
	Axis     wheel.Axis
	Bounds   Rect
	DeadZone float64

	tracker  *Tracker
	down     bool
	dragging bool
	// blocked swallows a press that started outside Bounds until release.
	blocked bool
	startX  float64
	startY  float64
	lastX   float64
	lastY   float64
	lastAt  time.Time
}

func NewDrag(axis wheel.Axis) *Drag {
	return &Drag{
		Axis:     axis,
		DeadZone: DefaultDeadZone,
		tracker:  NewTracker(DefaultWindow),
	}
}

// Dragging reports whether a drag is in progress.
func (d *Drag) Dragging() bool { return d.dragging }

// Velocity returns the current drag velocity along the axis.
func (d *Drag) Velocity(now time.Time) float64 {
	return d.tracker.Velocity(now)
}

// Update runs the pointer state machine for one frame. It returns the tap
// position when a press is released without having become a drag.
func (d *Drag) Update(p Pointer, h Handler, now time.Time) (tapX, tapY float64, tapped bool) {
	switch {
	case d.blocked:
		d.blocked = p.Pressed

	case p.Pressed && !d.down:
		if !d.Bounds.Contains(p.X, p.Y) {
			d.blocked = true
			return 0, 0, false
		}
		d.down = true
		d.dragging = false
		d.startX, d.startY = p.X, p.Y
		d.lastX, d.lastY, d.lastAt = p.X, p.Y, now

	case !p.Pressed && d.down:
		d.down = false
		if d.dragging {
			d.dragging = false
			h.GestureEnd(d.tracker.Velocity(now), now)
			return 0, 0, false
		}
		return d.lastX, d.lastY, true

	case p.Pressed && d.down:
		if !d.dragging {
			dx := p.X - d.startX
			dy := p.Y - d.startY
			if math.Sqrt(dx*dx+dy*dy) <= d.DeadZone {
				d.lastX, d.lastY, d.lastAt = p.X, p.Y, now
				return 0, 0, false
			}
			// Velocity starts from the last poll inside the dead zone.
			d.dragging = true
			d.tracker.Reset()
			d.tracker.Add(d.translation(d.lastX, d.lastY), d.lastAt)
			h.GestureStart(now)
		}
		d.lastX, d.lastY, d.lastAt = p.X, p.Y, now
		t := d.translation(p.X, p.Y)
		d.tracker.Add(t, now)
		h.GestureUpdate(t)
	}
	return 0, 0, false
}

// Cancel abandons a press without reporting a tap or a release.
func (d *Drag) Cancel(now time.Time, h Handler) {
	if d.dragging {
		h.GestureEnd(0, now)
	}
	d.down = false
	d.dragging = false
}

func (d *Drag) translation(x, y float64) float64 {
	return d.Axis.Main(x-d.startX, y-d.startY)
}
