package ui

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// InputEvent is a captured evdev event.
type InputEvent struct {
	Time   time.Time
	Device string // e.g. "event3"
	Type   uint16
	Code   uint16
	Value  int32
}

const recentEventsMax = 8

// Dial collects the steps of rotary encoders (crowns, knobs, jog dials)
// reported as REL_DIAL. Steps are accumulated by reader goroutines and
// drained once per frame by the game loop.
type Dial struct {
	logger *log.Logger

	steps atomic.Int64

	mu      sync.Mutex
	recent  []InputEvent
	closers []io.Closer

	closeOnce sync.Once
}

// StartDial opens every readable input device. On platforms without evdev
// the dial never reports steps.
func StartDial(logger *log.Logger) *Dial {
	if logger == nil {
		logger = log.Default()
	}
	d := &Dial{logger: logger}
	d.open()
	return d
}

// Steps returns the detents turned since the last call. Positive values
// turn towards later items.
func (d *Dial) Steps() int {
	return int(d.steps.Swap(0))
}

// RecentEvents returns a snapshot of the most recent dial events.
func (d *Dial) RecentEvents() []InputEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]InputEvent, len(d.recent))
	copy(out, d.recent)
	return out
}

func (d *Dial) record(ev InputEvent) {
	d.steps.Add(int64(ev.Value))

	d.mu.Lock()
	d.recent = append(d.recent, ev)
	if len(d.recent) > recentEventsMax {
		d.recent = d.recent[len(d.recent)-recentEventsMax:]
	}
	d.mu.Unlock()

	d.logger.Debug("dial: step", "device", ev.Device, "value", ev.Value)
}

// Close stops the readers. It is safe to call more than once.
func (d *Dial) Close() error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		closers := d.closers
		d.closers = nil
		d.mu.Unlock()
		for _, c := range closers {
			_ = c.Close()
		}
	})
	return nil
}
