package wheel

import "math"

// Transform is the visual state of one item for one frame.
type Transform struct {
	// CrossTranslation displaces the item perpendicular to the scroll axis.
	CrossTranslation float64
	Opacity          float64
	// Scale applies on the cross axis.
	Scale float64
}

// Normalized maps an item's distance from the focal point into [-1, 1].
//
// The distance is measured in units of extent/distanceMultiplier, clamped
// to a quarter period and eased through a sine so the curve never folds
// back on itself. A zero extent or multiplier yields 0 (fully in focus).
func Normalized(offset float64, index int, extent, distanceMultiplier float64) float64 {
	if extent == 0 || distanceMultiplier == 0 {
		return 0
	}
	span := extent / distanceMultiplier
	v := (offset + float64(index)*extent) / span
	if math.IsNaN(v) {
		return 0
	}
	return math.Sin(clamp(v, -math.Pi/2, math.Pi/2))
}

// ItemTransform computes the transform of the item at index for the shared
// offset. It is pure and cheap enough to call for every item every frame.
func ItemTransform(offset float64, index int, cfg Config) Transform {
	n := Normalized(offset, index, cfg.ItemExtent, cfg.DistanceMultiplier)
	fade := 1 - math.Abs(n)
	return Transform{
		CrossTranslation: n * cfg.ItemExtent * cfg.WheelHeightMultiplier,
		Opacity:          fade,
		Scale:            fade,
	}
}

// saturationRadius is how many items away from focus the normalized value
// reaches ±1.
func saturationRadius(cfg Config) float64 {
	if cfg.DistanceMultiplier <= 0 {
		return math.Inf(1)
	}
	return (math.Pi / 2) / cfg.DistanceMultiplier
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
