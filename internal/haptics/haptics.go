// Package haptics implements the "light impact" side channel fired while
// the wheel crosses item boundaries.
package haptics

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Haptic triggers a light impact.
type Haptic interface {
	LightImpact() error
}

// Func adapts a plain function to Haptic.
type Func func() error

func (f Func) LightImpact() error { return f() }

// Nop does nothing.
type Nop struct{}

func (Nop) LightImpact() error { return nil }

// Async hands impacts to a worker goroutine so the caller never waits on
// the device. When the queue is full the impact is dropped. Errors and
// panics from the wrapped haptic are logged at debug and otherwise lost.
type Async struct {
	next   Haptic
	logger *log.Logger

	queue     chan struct{}
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once

	dropped atomic.Int64
}

// NewAsync starts the worker. depth bounds the number of queued impacts.
func NewAsync(next Haptic, logger *log.Logger, depth int) *Async {
	if logger == nil {
		logger = log.Default()
	}
	if depth <= 0 {
		depth = 4
	}
	a := &Async{
		next:   next,
		logger: logger,
		queue:  make(chan struct{}, depth),
		done:   make(chan struct{}),
	}
	a.wg.Add(1)
	go a.loop()
	return a
}

// LightImpact queues an impact and returns immediately.
func (a *Async) LightImpact() error {
	select {
	case <-a.done:
		return nil
	default:
	}
	select {
	case a.queue <- struct{}{}:
	default:
		a.dropped.Add(1)
	}
	return nil
}

// Dropped returns how many impacts were discarded on a full queue.
func (a *Async) Dropped() int64 { return a.dropped.Load() }

// Close stops the worker and waits for it. Safe to call more than once.
func (a *Async) Close() {
	a.closeOnce.Do(func() { close(a.done) })
	a.wg.Wait()
}

func (a *Async) loop() {
	defer a.wg.Done()
	for {
		select {
		case <-a.done:
			return
		case <-a.queue:
			a.run()
		}
	}
}

func (a *Async) run() {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Debug("haptics: impact panicked", "recovered", r)
		}
	}()
	if err := a.next.LightImpact(); err != nil {
		a.logger.Debug("haptics: impact failed", "err", err)
	}
}
