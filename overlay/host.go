// Package overlay hosts confetti sessions above a terminal's own content.
//
// A Host owns the render pipeline for one terminal: the host content
// (a message banner) is drawn at content priority and each celebration
// mounts a ConfettiRenderer at overlay priority for the life of its session.
// The overlay never consumes input; key events are forwarded to the host's
// KeyHandler and the host quit keys tear the celebration down early.
package overlay

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/confetti/audio"
	"github.com/lixenwraith/confetti/confetti"
	"github.com/lixenwraith/confetti/engine"
	"github.com/lixenwraith/confetti/parameter"
	"github.com/lixenwraith/confetti/render"
	"github.com/lixenwraith/confetti/render/renderers"
	"github.com/lixenwraith/confetti/terminal"
)

var (
	ErrBusy           = errors.New("overlay: celebration already running")
	ErrTerminalClosed = errors.New("overlay: terminal closed")
	ErrCrashed        = errors.New("overlay: celebration crashed")
)

// PanicError is returned by Celebrate when rendering or input handling panicked
// The terminal is left initialized; the caller restores it
type PanicError struct {
	Where string // "render" or "input"
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("overlay: %s panicked: %v", e.Where, e.Value)
}

func (e *PanicError) Unwrap() error { return ErrCrashed }

// DismissHint is shown under the host message
const DismissHint = "esc / q to dismiss"

// KeyHandler receives every key event while a celebration is mounted
type KeyHandler func(ev terminal.Event)

// HostOption configures a Host
type HostOption func(*Host)

// WithClock sets the clock for frame timestamps and session deadlines
func WithClock(c engine.Clock) HostOption {
	return func(h *Host) { h.clock = c }
}

// WithLogger sets the host logger, shared with sessions
func WithLogger(l *zap.Logger) HostOption {
	return func(h *Host) { h.logger = l }
}

// WithSound plays the chime when a celebration becomes active
func WithSound(sm *audio.SoundManager) HostOption {
	return func(h *Host) { h.sound = sm }
}

// WithFrameInterval sets the render period
func WithFrameInterval(d time.Duration) HostOption {
	return func(h *Host) { h.interval = d }
}

// WithKeyHandler sets the handler for forwarded key events
func WithKeyHandler(fn KeyHandler) HostOption {
	return func(h *Host) { h.onKey = fn }
}

// WithMessage sets the host content message
func WithMessage(message string) HostOption {
	return func(h *Host) { h.messageText = message }
}

// Host mounts celebrations on a terminal
type Host struct {
	term     terminal.Terminal
	clock    engine.Clock
	logger   *zap.Logger
	sound    *audio.SoundManager
	interval time.Duration
	onKey    KeyHandler

	messageText string
	message     *renderers.MessageRenderer
	orch        *render.RenderOrchestrator

	mu      sync.Mutex
	current *confetti.Session
}

// NewHost creates a host drawing on term, sized to the terminal's current size
func NewHost(term terminal.Terminal, opts ...HostOption) *Host {
	h := &Host{
		term:        term,
		interval:    parameter.FrameUpdateInterval,
		messageText: parameter.DefaultMessage,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.clock == nil {
		h.clock = engine.NewTimeProvider()
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}

	w, ht := term.Size()
	h.orch = render.NewRenderOrchestrator(term, w, ht)
	h.message = renderers.NewMessageRenderer(h.messageText, DismissHint)
	h.orch.Register(h.message, render.PriorityContent)
	return h
}

// SetMessage replaces the host content message
func (h *Host) SetMessage(message string) {
	h.message.SetMessage(message)
}

// Current returns the mounted session, nil when none
func (h *Host) Current() *confetti.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// RenderFrame draws one frame of the host content and any mounted overlay
func (h *Host) RenderFrame() {
	h.orch.RenderFrame(render.RenderContext{Now: h.clock.Now()})
}

// Celebrate mounts a new session and blocks until it is unmounted
// Returns nil on deadline or quit key, ctx.Err() on cancellation
func (h *Host) Celebrate(ctx context.Context, opts ...confetti.Option) error {
	base := []confetti.Option{confetti.WithClock(h.clock), confetti.WithLogger(h.logger)}
	session := confetti.NewSession(append(base, opts...)...)

	h.mu.Lock()
	if h.current != nil {
		h.mu.Unlock()
		return ErrBusy
	}
	h.current = session
	h.mu.Unlock()

	logger := h.logger.With(zap.Stringer("session", session.ID()))
	layer := renderers.NewConfettiRenderer(session, nil)
	h.orch.Register(layer, render.PriorityOverlay)

	defer func() {
		session.Teardown()
		h.orch.Unregister(layer)
		// Final frame without the overlay so nothing lingers on screen
		h.RenderFrame()

		h.mu.Lock()
		h.current = nil
		h.mu.Unlock()
	}()

	if err := session.Activate(); err != nil {
		return err
	}
	if !session.Active() {
		logger.Debug("celebration empty")
		return nil
	}

	if h.sound != nil {
		h.sound.PlayChime()
	}

	// At most one crash per goroutine
	crashes := make(chan *PanicError, 2)

	loop := engine.NewFrameLoop(h.interval, h.RenderFrame)
	loop.SetPanicHandler(func(r any, stack []byte) {
		crashes <- &PanicError{Where: "render", Value: r, Stack: stack}
		session.Teardown()
	})
	loop.Start()
	defer loop.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				pe := &PanicError{Where: "input", Value: r, Stack: debug.Stack()}
				crashes <- pe
				err = pe
			}
		}()
		return h.pollEvents(session)
	})

	select {
	case <-session.Done():
	case <-gctx.Done():
		session.Teardown()
	}

	// Wake the poller; it exits on the first interrupt
	h.term.PostEvent(terminal.Event{Type: terminal.EventInterrupt})
	err := g.Wait()

	logger.Debug("celebration unmounted",
		zap.Stringer("reason", session.Reason()),
		zap.Uint64("frames", loop.Frames()))

	select {
	case pe := <-crashes:
		logger.Error("celebration crashed",
			zap.String("where", pe.Where),
			zap.Any("panic", pe.Value),
			zap.ByteString("stack", pe.Stack))
		return pe
	default:
	}
	if err != nil {
		return err
	}
	return ctx.Err()
}

// pollEvents forwards input until interrupted
func (h *Host) pollEvents(session *confetti.Session) error {
	for {
		ev := h.term.PollEvent()
		switch ev.Type {
		case terminal.EventInterrupt:
			return nil
		case terminal.EventClosed:
			return ErrTerminalClosed
		case terminal.EventResize:
			h.logger.Debug("terminal resized", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
			h.orch.Resize(ev.Width, ev.Height)
		case terminal.EventKey:
			if h.onKey != nil {
				h.onKey(ev)
			}
			if IsQuitKey(ev) {
				session.Teardown()
			}
		}
	}
}

// IsQuitKey reports whether ev is one of the host quit keys: Esc, q, Ctrl-C
func IsQuitKey(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return true
	case terminal.KeyRune:
		return ev.Rune == 'q' || ev.Rune == 'Q'
	}
	return false
}
