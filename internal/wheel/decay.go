package wheel

import (
	"math"
	"time"
)

// decay is an exponentially decelerating glide bounded to [min, max].
//
// The velocity is multiplied by deceleration every millisecond, so
// v(t) = v0 * d^t and x(t) = x0 + v0/k * (1 - d^t) with k = -ln d.
type decay struct {
	from     float64
	velocity float64 // units per second
	min, max float64

	deceleration float64
	threshold    float64
}

func newDecay(from, velocity, min, max float64, cfg Config) decay {
	return decay{
		from:         clamp(from, min, max),
		velocity:     velocity,
		min:          min,
		max:          max,
		deceleration: cfg.Deceleration,
		threshold:    cfg.VelocityThreshold,
	}
}

// at samples the glide after elapsed. done reports that the velocity fell
// below the threshold or a bound was hit; the position is final then.
func (d decay) at(elapsed time.Duration) (pos, vel float64, done bool) {
	ms := float64(elapsed) / float64(time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	kv := math.Pow(d.deceleration, ms)
	k := -math.Log(d.deceleration)

	pos = d.from + (d.velocity/1000)*(1-kv)/k
	vel = d.velocity * kv

	switch {
	case pos <= d.min && d.velocity <= 0:
		return d.min, 0, true
	case pos >= d.max && d.velocity >= 0:
		return d.max, 0, true
	case math.Abs(vel) < d.threshold:
		return pos, 0, true
	}
	return pos, vel, false
}
