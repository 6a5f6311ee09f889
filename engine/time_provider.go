package engine

import "time"

// Timer is a scheduled callback handle
type Timer interface {
	// Stop cancels the callback, returns false if it already fired or was stopped
	Stop() bool
}

// Clock provides the current time and one-shot callback scheduling
// Real and mock implementations allow deterministic lifecycle tests
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on its own goroutine after d
func (p *TimeProvider) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
