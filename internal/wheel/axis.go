package wheel

import (
	"fmt"
	"strings"
)

// Axis selects the direction the wheel scrolls along.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis accepts "vertical"/"v" and "horizontal"/"h", case-insensitive.
// An empty string is vertical.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown axis %q", s)
}

// Main returns the component of (x, y) along the scroll axis.
func (a Axis) Main(x, y float64) float64 {
	if a == Horizontal {
		return x
	}
	return y
}

// Cross returns the component of (x, y) perpendicular to the scroll axis.
func (a Axis) Cross(x, y float64) float64 {
	if a == Horizontal {
		return y
	}
	return x
}

// Point builds an (x, y) pair from main- and cross-axis components.
func (a Axis) Point(main, cross float64) (x, y float64) {
	if a == Horizontal {
		return main, cross
	}
	return cross, main
}
