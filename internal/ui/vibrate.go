package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vibrator plays a short rumble on the device and on every connected
// gamepad. It satisfies haptics.Haptic.
type Vibrator struct {
	Duration  time.Duration
	Magnitude float64

	gamepads []ebiten.GamepadID
}

func NewVibrator(duration time.Duration, magnitude float64) *Vibrator {
	return &Vibrator{Duration: duration, Magnitude: magnitude}
}

// LightImpact triggers one rumble. Platforms without a vibration motor
// ignore it.
func (v *Vibrator) LightImpact() error {
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  v.Duration,
		Magnitude: v.Magnitude,
	})
	v.gamepads = ebiten.AppendGamepadIDs(v.gamepads[:0])
	for _, id := range v.gamepads {
		ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
			Duration:      v.Duration,
			WeakMagnitude: v.Magnitude,
		})
	}
	return nil
}
