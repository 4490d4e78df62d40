package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/wheelpicker/internal/wheel"
)

type event struct {
	kind  string
	value float64
}

type recordingHandler struct {
	events []event
}

func (h *recordingHandler) GestureStart(time.Time) {
	h.events = append(h.events, event{kind: "start"})
}

func (h *recordingHandler) GestureUpdate(translation float64) {
	h.events = append(h.events, event{kind: "update", value: translation})
}

func (h *recordingHandler) GestureEnd(velocity float64, _ time.Time) {
	h.events = append(h.events, event{kind: "end", value: velocity})
}

func TestDragVertical(t *testing.T) {
	d := NewDrag(wheel.Vertical)
	d.Bounds = Rect{X: 0, Y: 0, W: 200, H: 400}
	h := &recordingHandler{}

	d.Update(Pointer{X: 100, Y: 200, Pressed: true}, h, at(0))
	d.Update(Pointer{X: 101, Y: 198, Pressed: true}, h, at(16))
	assert.Empty(t, h.events, "inside the dead zone")

	d.Update(Pointer{X: 130, Y: 180, Pressed: true}, h, at(32))
	d.Update(Pointer{X: 160, Y: 164, Pressed: true}, h, at(48))
	assert.True(t, d.Dragging())
	_, _, tapped := d.Update(Pointer{X: 160, Y: 164}, h, at(48))
	assert.False(t, tapped)

	// Cross-axis movement is ignored; velocity spans from the last poll
	// inside the dead zone to the release.
	require.Len(t, h.events, 4)
	assert.Equal(t, []event{
		{kind: "start"},
		{kind: "update", value: -20},
		{kind: "update", value: -36},
	}, h.events[:3])
	assert.Equal(t, "end", h.events[3].kind)
	assert.InDelta(t, -1062.5, h.events[3].value, 1e-6)
}

func TestDragHorizontal(t *testing.T) {
	d := NewDrag(wheel.Horizontal)
	d.Bounds = Rect{W: 400, H: 100}
	h := &recordingHandler{}

	d.Update(Pointer{X: 200, Y: 50, Pressed: true}, h, at(0))
	d.Update(Pointer{X: 250, Y: 90, Pressed: true}, h, at(16))
	assert.Equal(t, event{kind: "update", value: 50}, h.events[1])
}

func TestDragTap(t *testing.T) {
	d := NewDrag(wheel.Vertical)
	d.Bounds = Rect{W: 100, H: 100}
	h := &recordingHandler{}

	d.Update(Pointer{X: 40, Y: 60, Pressed: true}, h, at(0))
	d.Update(Pointer{X: 42, Y: 61, Pressed: true}, h, at(16))
	x, y, tapped := d.Update(Pointer{X: 42, Y: 61}, h, at(32))

	assert.True(t, tapped)
	assert.Equal(t, 42.0, x)
	assert.Equal(t, 61.0, y)
	assert.Empty(t, h.events)
}

func TestDragIgnoresPressOutsideBounds(t *testing.T) {
	d := NewDrag(wheel.Vertical)
	d.Bounds = Rect{X: 100, Y: 100, W: 50, H: 50}
	h := &recordingHandler{}

	d.Update(Pointer{X: 10, Y: 10, Pressed: true}, h, at(0))
	d.Update(Pointer{X: 120, Y: 120, Pressed: true}, h, at(16))
	d.Update(Pointer{X: 120, Y: 200, Pressed: true}, h, at(32))
	_, _, tapped := d.Update(Pointer{X: 120, Y: 200}, h, at(48))

	assert.False(t, tapped)
	assert.Empty(t, h.events)

	// The next press inside is a fresh gesture.
	d.Update(Pointer{X: 120, Y: 110, Pressed: true}, h, at(64))
	d.Update(Pointer{X: 120, Y: 140, Pressed: true}, h, at(80))
	assert.True(t, d.Dragging())
	assert.Equal(t, event{kind: "update", value: 30}, h.events[len(h.events)-1])
}

func TestDragSlowStartVelocity(t *testing.T) {
	d := NewDrag(wheel.Vertical)
	d.Bounds = Rect{W: 200, H: 400}
	h := &recordingHandler{}

	// Creep through the dead zone, then a single poll past it.
	d.Update(Pointer{X: 100, Y: 100, Pressed: true}, h, at(0))
	d.Update(Pointer{X: 100, Y: 102, Pressed: true}, h, at(40))
	d.Update(Pointer{X: 100, Y: 104, Pressed: true}, h, at(80))
	d.Update(Pointer{X: 100, Y: 110, Pressed: true}, h, at(96))
	require.True(t, d.Dragging())

	assert.InDelta(t, 375, d.Velocity(at(96)), 1e-6)
}

func TestDragCancel(t *testing.T) {
	d := NewDrag(wheel.Vertical)
	d.Bounds = Rect{W: 100, H: 100}
	h := &recordingHandler{}

	d.Update(Pointer{X: 50, Y: 50, Pressed: true}, h, at(0))
	d.Update(Pointer{X: 50, Y: 80, Pressed: true}, h, at(16))
	d.Cancel(at(20), h)

	assert.False(t, d.Dragging())
	assert.Equal(t, event{kind: "end", value: 0}, h.events[len(h.events)-1])
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(40, 60))
	assert.False(t, r.Contains(41, 60))
	cx, cy := r.Center()
	assert.Equal(t, 25.0, cx)
	assert.Equal(t, 40.0, cy)
}
