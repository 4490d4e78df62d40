package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/wheelpicker/internal/gesture"
)

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	// Update per-key hold frames
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

// KeyRepeating reports a press on the first frame and then at the repeat rate.
func KeyRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true // just pressed this frame
	}
	// Key held, check repeat timing
	if frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0 {
		return true
	}
	return false
}

// Rect and PointerState are the gesture package's layout types.
type (
	Rect         = gesture.Rect
	PointerState = gesture.Pointer
)

var (
	touchIDs    []ebiten.TouchID
	activeTouch ebiten.TouchID
	touchActive bool
	lastTouch   PointerState
)

// PollPointer reads the primary pointer. A touch stays primary until it
// is lifted, so a second finger never hijacks a drag.
func PollPointer() PointerState {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if touchActive {
		for _, id := range touchIDs {
			if id == activeTouch {
				return pollTouch(id)
			}
		}
		// Lifted: report the release where the finger was last seen.
		touchActive = false
		lastTouch.Pressed = false
		return lastTouch
	}
	if len(touchIDs) > 0 {
		activeTouch = touchIDs[0]
		touchActive = true
		return pollTouch(activeTouch)
	}
	x, y := ebiten.CursorPosition()
	return PointerState{
		X:       float64(x),
		Y:       float64(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

func pollTouch(id ebiten.TouchID) PointerState {
	x, y := ebiten.TouchPosition(id)
	lastTouch = PointerState{X: float64(x), Y: float64(y), Pressed: true}
	return lastTouch
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// BackJustPressed reports Escape, Backspace or the mouse back button.
func BackJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3)
}

// Lerp for smooth easing
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
