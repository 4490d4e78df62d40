package ui

import "image/color"

// Dark theme with a blue focus band
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorAccent        = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF} // Purple accent
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorFocusBand     = color.NRGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0x30}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
)

// Layout constants
const (
	FontSizeTitle = 28
	FontSizeBody  = 16
	FontSizeSmall = 13

	// WheelFontRatio sizes item labels relative to the item extent.
	WheelFontRatio = 0.5
	WheelPadding   = 24

	StatusBarHeight = 36

	FocusAnimSpeed = 0.15

	// DragDeadZone is how far a pointer moves before a press becomes a drag.
	DragDeadZone = 4.0
)
