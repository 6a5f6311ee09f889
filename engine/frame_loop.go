package engine

import (
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// FrameLoop invokes a frame callback on a fixed interval from a single goroutine
// Start and Stop are idempotent; Stop blocks until the loop goroutine exits
type FrameLoop struct {
	interval time.Duration
	onFrame  func()
	onPanic  func(r any, stack []byte)

	frameCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFrameLoop creates a loop that calls onFrame every interval
func NewFrameLoop(interval time.Duration, onFrame func()) *FrameLoop {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &FrameLoop{
		interval: interval,
		onFrame:  onFrame,
		stopChan: make(chan struct{}),
	}
}

// SetPanicHandler recovers a panicking frame and reports it to fn, ending the loop
// Without a handler the panic propagates; must be set before Start
func (fl *FrameLoop) SetPanicHandler(fn func(r any, stack []byte)) {
	fl.onPanic = fn
}

// Start renders the first frame immediately then begins the loop
func (fl *FrameLoop) Start() {
	if fl.running.CompareAndSwap(false, true) {
		fl.wg.Add(1)
		go fl.loop()
	}
}

// Stop halts the loop and waits for the in-flight frame to complete
func (fl *FrameLoop) Stop() {
	fl.stopOnce.Do(func() {
		close(fl.stopChan)
		fl.wg.Wait()
	})
}

// Frames returns the number of frames rendered so far
func (fl *FrameLoop) Frames() uint64 {
	return fl.frameCount.Load()
}

func (fl *FrameLoop) loop() {
	defer fl.wg.Done()
	defer fl.recoverFrame()

	ticker := time.NewTicker(fl.interval)
	defer ticker.Stop()

	select {
	case <-fl.stopChan:
		return
	default:
	}

	fl.frame()
	for {
		select {
		case <-fl.stopChan:
			return
		case <-ticker.C:
			// Stop wins over a simultaneously ready tick
			select {
			case <-fl.stopChan:
				return
			default:
			}
			fl.frame()
		}
	}
}

func (fl *FrameLoop) recoverFrame() {
	if fl.onPanic == nil {
		return
	}
	if r := recover(); r != nil {
		fl.onPanic(r, debug.Stack())
	}
}

func (fl *FrameLoop) frame() {
	fl.onFrame()
	fl.frameCount.Add(1)
}
