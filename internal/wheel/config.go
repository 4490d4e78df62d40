package wheel

import "math"

// Defaults for the configuration surface.
const (
	DefaultItemExtent            = 40.0
	DefaultDistanceMultiplier    = 0.285
	DefaultWheelHeightMultiplier = 2.6
	DefaultEndOffset             = 10

	// DefaultDeceleration is the per-millisecond velocity factor of the decay phase.
	DefaultDeceleration = 0.985
	// DefaultVelocityThreshold is the speed (units/s) below which decay is at rest.
	DefaultVelocityThreshold = 1.0
)

// SpringConfig parameterizes the settle phase as a damped harmonic oscillator.
type SpringConfig struct {
	Damping   float64
	Mass      float64
	Stiffness float64

	// OvershootClamping ends the spring the moment it passes its target.
	OvershootClamping bool

	RestSpeedThreshold        float64
	RestDisplacementThreshold float64
}

// DefaultSpringConfig returns the settle spring used to land on an item.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{
		Damping:                   40,
		Mass:                      1,
		Stiffness:                 500,
		OvershootClamping:         true,
		RestSpeedThreshold:        0.001,
		RestDisplacementThreshold: 0.001,
	}
}

// angularFrequency and dampingRatio convert physical parameters into the
// form harmonica expects.
func (s SpringConfig) angularFrequency() float64 {
	return math.Sqrt(s.Stiffness / s.Mass)
}

func (s SpringConfig) dampingRatio() float64 {
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// Config is the full configuration of a wheel. Zero-valued fields are
// replaced by their defaults once, when the controller is built.
type Config struct {
	// ItemExtent is the item height on a vertical wheel, its width on a
	// horizontal one.
	ItemExtent float64
	// DistanceMultiplier controls how tightly the wheel curves.
	DistanceMultiplier float64
	// WheelHeightMultiplier scales the radius of the perspective arc.
	WheelHeightMultiplier float64
	// EndOffset is how many items from the tail count as "near the end".
	EndOffset int
	Axis      Axis

	Deceleration      float64
	VelocityThreshold float64
	Spring            SpringConfig
}

// DefaultConfig returns a vertical wheel with every default applied.
func DefaultConfig() Config {
	return Config{
		ItemExtent:            DefaultItemExtent,
		DistanceMultiplier:    DefaultDistanceMultiplier,
		WheelHeightMultiplier: DefaultWheelHeightMultiplier,
		EndOffset:             DefaultEndOffset,
		Axis:                  Vertical,
		Deceleration:          DefaultDeceleration,
		VelocityThreshold:     DefaultVelocityThreshold,
		Spring:                DefaultSpringConfig(),
	}
}

// Resolve returns c with unset or unusable fields replaced by defaults.
func (c Config) Resolve() Config {
	d := DefaultConfig()
	if !(c.ItemExtent > 0) || math.IsInf(c.ItemExtent, 0) {
		c.ItemExtent = d.ItemExtent
	}
	if !(c.DistanceMultiplier > 0) {
		c.DistanceMultiplier = d.DistanceMultiplier
	}
	if !(c.WheelHeightMultiplier > 0) {
		c.WheelHeightMultiplier = d.WheelHeightMultiplier
	}
	if c.EndOffset <= 0 {
		c.EndOffset = d.EndOffset
	}
	if c.Axis != Horizontal {
		c.Axis = Vertical
	}
	if !(c.Deceleration > 0 && c.Deceleration < 1) {
		c.Deceleration = d.Deceleration
	}
	if !(c.VelocityThreshold > 0) {
		c.VelocityThreshold = d.VelocityThreshold
	}
	if c.Spring == (SpringConfig{}) {
		c.Spring = d.Spring
	} else {
		if !(c.Spring.Mass > 0) {
			c.Spring.Mass = d.Spring.Mass
		}
		if !(c.Spring.Stiffness > 0) {
			c.Spring.Stiffness = d.Spring.Stiffness
		}
		if c.Spring.Damping < 0 {
			c.Spring.Damping = d.Spring.Damping
		}
		if !(c.Spring.RestSpeedThreshold > 0) {
			c.Spring.RestSpeedThreshold = d.Spring.RestSpeedThreshold
		}
		if !(c.Spring.RestDisplacementThreshold > 0) {
			c.Spring.RestDisplacementThreshold = d.Spring.RestDisplacementThreshold
		}
	}
	return c
}
