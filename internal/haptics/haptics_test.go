package haptics

import (
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func quiet() *log.Logger { return log.New(io.Discard) }

func TestAsyncDelivers(t *testing.T) {
	var calls atomic.Int32
	a := NewAsync(Func(func() error {
		calls.Add(1)
		return nil
	}), quiet(), 8)
	defer a.Close()

	for i := 0; i < 3; i++ {
		assert.NoError(t, a.LightImpact())
	}
	assert.Eventually(t, func() bool { return calls.Load() == 3 }, time.Second, time.Millisecond)
}

func TestAsyncSurvivesFailures(t *testing.T) {
	var calls atomic.Int32
	a := NewAsync(Func(func() error {
		n := calls.Add(1)
		switch n {
		case 1:
			panic("motor on fire")
		case 2:
			return errors.New("no motor")
		}
		return nil
	}), quiet(), 8)
	defer a.Close()

	for i := 0; i < 3; i++ {
		a.LightImpact()
		// Let each impact run before queueing the next one.
		want := int32(i + 1)
		assert.Eventually(t, func() bool { return calls.Load() == want }, time.Second, time.Millisecond)
	}
}

func TestAsyncDropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	a := NewAsync(Func(func() error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return nil
	}), quiet(), 1)

	a.LightImpact()
	<-started // worker is now blocked inside the first impact
	a.LightImpact()
	start := time.Now()
	a.LightImpact()
	a.LightImpact()
	assert.Less(t, time.Since(start), 100*time.Millisecond, "LightImpact never blocks")
	assert.Equal(t, int64(2), a.Dropped())

	close(release)
	a.Close()
}

func TestAsyncCloseIdempotent(t *testing.T) {
	a := NewAsync(Nop{}, quiet(), 0)
	a.Close()
	assert.NotPanics(t, a.Close)
	assert.NoError(t, a.LightImpact())
}
