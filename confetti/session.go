package confetti

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/confetti/engine"
	"github.com/lixenwraith/confetti/parameter"
	"github.com/lixenwraith/confetti/terminal"
)

// State is the lifecycle state of a Session
type State uint8

const (
	StateIdle State = iota
	StateActive
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Reason records why a Session terminated
type Reason uint8

const (
	ReasonNone     Reason = iota
	ReasonDeadline        // Deadline timer fired
	ReasonTeardown        // Host tore the session down
	ReasonEmpty           // Nothing to show: zero count or non-positive duration
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonDeadline:
		return "deadline"
	case ReasonTeardown:
		return "teardown"
	case ReasonEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

var (
	ErrAlreadyActive     = errors.New("confetti: session already active")
	ErrSessionTerminated = errors.New("confetti: session terminated")
)

type options struct {
	duration time.Duration
	count    int
	palette  []terminal.RGB
	sampler  Sampler
	clock    engine.Clock
	logger   *zap.Logger
}

// Option configures a Session
type Option func(*options)

// WithDuration sets how long the overlay stays mounted; <= 0 terminates on activation
func WithDuration(d time.Duration) Option {
	return func(o *options) { o.duration = d }
}

// WithCount sets the batch size; <= 0 terminates on activation
func WithCount(n int) Option {
	return func(o *options) { o.count = n }
}

// WithPalette overrides the particle colors; only a full five-color palette is used
func WithPalette(p []terminal.RGB) Option {
	return func(o *options) {
		o.palette = append([]terminal.RGB(nil), p...)
	}
}

// WithSampler injects the randomness source used for generation
func WithSampler(s Sampler) Option {
	return func(o *options) { o.sampler = s }
}

// WithClock injects the clock used for the deadline timer
func WithClock(c engine.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the session logger
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Session is one Idle → Active → Terminated lifecycle of the effect
type Session struct {
	id  uuid.UUID
	cfg options

	mu        sync.Mutex
	state     State
	reason    Reason
	batch     []Particle
	timer     engine.Timer
	startedAt time.Time
	done      chan struct{}
}

// NewSession creates an idle session with default duration and count unless overridden
func NewSession(opts ...Option) *Session {
	cfg := options{
		duration: parameter.ConfettiDuration,
		count:    parameter.ConfettiCount,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.clock == nil {
		cfg.clock = engine.NewTimeProvider()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	s := &Session{
		id:   uuid.New(),
		cfg:  cfg,
		done: make(chan struct{}),
	}
	s.cfg.logger = cfg.logger.With(zap.Stringer("session", s.id))
	return s
}

// Activate generates the batch and schedules the deadline timer
// Zero count or non-positive duration terminates immediately without holding a timer
func (s *Session) Activate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateActive:
		return ErrAlreadyActive
	case StateTerminated:
		return ErrSessionTerminated
	}

	s.startedAt = s.cfg.clock.Now()

	if s.cfg.count <= 0 || s.cfg.duration <= 0 {
		s.batch = []Particle{}
		s.terminateLocked(ReasonEmpty)
		return nil
	}

	sampler := s.cfg.sampler
	if sampler == nil {
		sampler = NewSampler()
	}
	s.batch = Generate(s.cfg.count, s.cfg.palette, sampler)
	s.state = StateActive
	s.timer = s.cfg.clock.AfterFunc(s.cfg.duration, s.expire)

	s.cfg.logger.Debug("session activated",
		zap.Int("count", len(s.batch)),
		zap.Duration("duration", s.cfg.duration))
	return nil
}

// Teardown terminates the session early and releases the deadline timer
// Safe to call in any state and more than once
func (s *Session) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminated {
		return
	}
	s.terminateLocked(ReasonTeardown)
}

// Run activates the session and blocks until the deadline or ctx cancellation
// The session is always terminated on return
func (s *Session) Run(ctx context.Context) error {
	defer s.Teardown()

	if err := s.Activate(); err != nil {
		return err
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// expire is the deadline callback; a late call after teardown is a no-op
func (s *Session) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return
	}
	s.terminateLocked(ReasonDeadline)
}

// terminateLocked moves to Terminated, caller holds mu
func (s *Session) terminateLocked(reason Reason) {
	defer s.releaseTimerLocked()

	s.state = StateTerminated
	s.reason = reason
	close(s.done)

	s.cfg.logger.Debug("session terminated", zap.Stringer("reason", reason))
}

// releaseTimerLocked stops and drops the timer handle, caller holds mu
func (s *Session) releaseTimerLocked() {
	if s.timer == nil {
		return
	}
	s.timer.Stop()
	s.timer = nil
}

// ID returns the session identifier used in logs
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current lifecycle state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Active reports whether the overlay should be presented
func (s *Session) Active() bool {
	return s.State() == StateActive
}

// Reason returns why the session terminated, ReasonNone before termination
func (s *Session) Reason() Reason {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

// Done is closed when the session terminates
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Batch returns a copy of the generated particles, nil before activation
func (s *Session) Batch() []Particle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.batch == nil {
		return nil
	}
	out := make([]Particle, len(s.batch))
	copy(out, s.batch)
	return out
}

// StartedAt returns the activation time, zero before activation
func (s *Session) StartedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt
}

// Duration returns the configured deadline
func (s *Session) Duration() time.Duration {
	return s.cfg.duration
}

// HoldsTimer reports whether a deadline timer is currently held
func (s *Session) HoldsTimer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
