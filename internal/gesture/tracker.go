// Package gesture turns a stream of drag samples into the release velocity
// the wheel decays with.
package gesture

import "time"

// DefaultWindow is how far back Velocity looks.
const DefaultWindow = 100 * time.Millisecond

// Sample is one translation reading along the drag axis.
type Sample struct {
	Translation float64
	At          time.Time
}

// Tracker keeps the recent samples of a single drag.
//
// Not safe for concurrent use; gestures arrive from one input source.
type Tracker struct {
	Window  time.Duration
	samples []Sample
}

// NewTracker returns a tracker with the given window, or DefaultWindow
// when window is not positive.
func NewTracker(window time.Duration) *Tracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tracker{
		Window:  window,
		samples: make([]Sample, 0, 16),
	}
}

// Reset forgets every sample. Call it when a drag starts.
func (t *Tracker) Reset() {
	t.samples = t.samples[:0]
}

// Add records translation at the given time. Samples older than the
// window are dropped, keeping one sample at or before the window edge so a
// slow drag still spans the whole window.
func (t *Tracker) Add(translation float64, at time.Time) {
	t.samples = append(t.samples, Sample{Translation: translation, At: at})
	t.prune(at)
}

func (t *Tracker) prune(now time.Time) {
	cutoff := now.Add(-t.Window)
	drop := 0
	for drop+1 < len(t.samples) && !t.samples[drop+1].At.After(cutoff) {
		drop++
	}
	if drop > 0 {
		t.samples = append(t.samples[:0], t.samples[drop:]...)
	}
}

// Len returns the number of retained samples.
func (t *Tracker) Len() int { return len(t.samples) }

// Velocity returns the translation speed in units per second over the
// window ending at now. It is 0 with fewer than two samples or when the
// pointer rested for longer than the window.
func (t *Tracker) Velocity(now time.Time) float64 {
	if len(t.samples) == 0 {
		return 0
	}
	last := t.samples[len(t.samples)-1]
	if now.Sub(last.At) > t.Window {
		return 0
	}
	t.prune(now)
	if len(t.samples) < 2 {
		return 0
	}
	first := t.samples[0]
	last = t.samples[len(t.samples)-1]
	dt := last.At.Sub(first.At).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.Translation - first.Translation) / dt
}
