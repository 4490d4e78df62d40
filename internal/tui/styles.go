package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Item colors are blended in Lab space, so they are given as hex rather
// than ANSI indices.
var (
	fgHex     = "#E0E0E0"
	bgHex     = "#101014"
	accentHex = "#00A4DC"

	fgColor     = colorful.MustParseHex(fgHex)
	bgColor     = colorful.MustParseHex(bgHex)
	accentColor = colorful.MustParseHex(accentHex)
)

// Terminal theme colors (ANSI 0-15) for the chrome around the wheel.
var (
	colorMagenta     = lipgloss.Color("5")
	colorBrightBlack = lipgloss.Color("8")
	colorWhite       = lipgloss.Color("7")

	mutedColor = colorBrightBlack
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	focusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accentHex))

	statusTextStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	endReachedStyle = lipgloss.NewStyle().
			Foreground(colorMagenta).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)

// fade blends the item foreground towards the background by opacity.
func fade(opacity float64) lipgloss.Color {
	opacity = min(max(opacity, 0), 1)
	return lipgloss.Color(bgColor.BlendLab(fgColor, opacity).Clamped().Hex())
}

// focusFade blends the accent towards the plain foreground as an item
// leaves the focus row.
func focusFade(opacity float64) lipgloss.Color {
	opacity = min(max(opacity, 0), 1)
	return lipgloss.Color(fgColor.BlendLab(accentColor, opacity).Clamped().Hex())
}
