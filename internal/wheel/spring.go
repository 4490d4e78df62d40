package wheel

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// settle springs the offset from a start state onto a target, never
// leaving [lo, hi].
type settle struct {
	from     float64
	velocity float64
	target   float64
	lo, hi   float64

	cfg   SpringConfig
	omega float64
	zeta  float64
}

// newSettle drops a velocity pointing away from target so the spring
// cannot run out of bounds before turning around.
func newSettle(from, velocity, target, lo, hi float64, cfg SpringConfig) settle {
	if (target-from)*velocity <= 0 {
		velocity = 0
	}
	return settle{
		from:     clamp(from, lo, hi),
		velocity: velocity,
		target:   clamp(target, lo, hi),
		lo:       lo,
		hi:       hi,
		cfg:      cfg,
		omega:    cfg.angularFrequency(),
		zeta:     cfg.dampingRatio(),
	}
}

// at samples the spring after elapsed. harmonica's step is the closed-form
// solution of the oscillator, so one step of length elapsed from the start
// state is exact for any frame timing.
func (s settle) at(elapsed time.Duration) (pos, vel float64, done bool) {
	pos, vel = s.from, s.velocity
	if t := elapsed.Seconds(); t > 0 {
		pos, vel = harmonica.NewSpring(t, s.omega, s.zeta).Update(s.from, s.velocity, s.target)
	}
	if pos < s.lo || pos > s.hi {
		pos, vel = clamp(pos, s.lo, s.hi), 0
	}
	if s.cfg.OvershootClamping && s.overshot(pos) {
		return s.target, 0, true
	}
	if math.Abs(vel) < s.cfg.RestSpeedThreshold && math.Abs(pos-s.target) < s.cfg.RestDisplacementThreshold {
		return s.target, 0, true
	}
	return pos, vel, false
}

func (s settle) overshot(pos float64) bool {
	switch {
	case s.from < s.target:
		return pos > s.target
	case s.from > s.target:
		return pos < s.target
	}
	return false
}
