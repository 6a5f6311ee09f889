package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestFrameLoopRunsAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	var frames atomic.Int32
	fl := NewFrameLoop(2*time.Millisecond, func() { frames.Add(1) })
	fl.Start()
	fl.Start()

	assert.Eventually(t, func() bool { return frames.Load() >= 3 }, time.Second, time.Millisecond)

	fl.Stop()
	stopped := frames.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, frames.Load(), "no frames after Stop returns")
	assert.Equal(t, uint64(stopped), fl.Frames())

	fl.Stop()
}

func TestFrameLoopFirstFrameImmediate(t *testing.T) {
	defer goleak.VerifyNone(t)

	first := make(chan struct{}, 1)
	fl := NewFrameLoop(time.Hour, func() {
		select {
		case first <- struct{}{}:
		default:
		}
	})
	fl.Start()
	defer fl.Stop()

	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("first frame not rendered on Start")
	}
}

func TestFrameLoopStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	fl := NewFrameLoop(time.Millisecond, func() {})
	fl.Stop()
	assert.Zero(t, fl.Frames())
}

func TestFrameLoopRecoversPanickingFrame(t *testing.T) {
	defer goleak.VerifyNone(t)

	type crash struct {
		value any
		stack []byte
	}
	crashed := make(chan crash, 1)

	var frames atomic.Int32
	fl := NewFrameLoop(time.Millisecond, func() {
		if frames.Add(1) == 3 {
			panic("render failed")
		}
	})
	fl.SetPanicHandler(func(r any, stack []byte) {
		crashed <- crash{value: r, stack: stack}
	})
	fl.Start()

	select {
	case c := <-crashed:
		assert.Equal(t, "render failed", c.value)
		assert.NotEmpty(t, c.stack)
	case <-time.After(time.Second):
		t.Fatal("panic was not reported")
	}

	// The loop ends after a crash; Stop still returns
	fl.Stop()
	assert.Equal(t, int32(3), frames.Load())
	assert.Equal(t, uint64(2), fl.Frames(), "the crashed frame is not counted")
}
