package engine

import (
	"sort"
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Scheduled callbacks run synchronously inside Advance/SetTime once due
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	timers      []*mockTimer
	seq         uint64
	scheduled   int
	fired       int
}

type mockTimer struct {
	owner    *MockTimeProvider
	deadline time.Time
	seq      uint64
	f        func()
	done     bool
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// AfterFunc registers f to run when mocked time reaches now+d
func (m *MockTimeProvider) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.scheduled++
	t := &mockTimer{
		owner:    m,
		deadline: m.currentTime.Add(d),
		seq:      m.seq,
		f:        f,
	}
	m.timers = append(m.timers, t)
	return t
}

func (t *mockTimer) Stop() bool {
	m := t.owner
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	m.removeLocked(t)
	return true
}

// removeLocked drops t from the pending list, caller holds mu
func (m *MockTimeProvider) removeLocked(t *mockTimer) {
	for i, p := range m.timers {
		if p == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

// SetTime sets the current time and fires callbacks that became due
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.currentTime = t
	m.mu.Unlock()
	m.fireDue()
}

// Advance advances the current time by the given duration and fires callbacks that became due
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.currentTime = m.currentTime.Add(d)
	m.mu.Unlock()
	m.fireDue()
}

// fireDue runs due callbacks in deadline order without holding the lock
// Callbacks may schedule or stop other timers
func (m *MockTimeProvider) fireDue() {
	for {
		m.mu.Lock()
		var next *mockTimer
		for _, t := range m.timers {
			if t.deadline.After(m.currentTime) {
				continue
			}
			if next == nil || t.deadline.Before(next.deadline) ||
				(t.deadline.Equal(next.deadline) && t.seq < next.seq) {
				next = t
			}
		}
		if next == nil {
			m.mu.Unlock()
			return
		}
		next.done = true
		m.removeLocked(next)
		m.fired++
		m.mu.Unlock()

		next.f()
	}
}

// Pending returns the number of timers scheduled but neither fired nor stopped
func (m *MockTimeProvider) Pending() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.timers)
}

// Scheduled returns the total number of AfterFunc calls
func (m *MockTimeProvider) Scheduled() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scheduled
}

// Fired returns the number of callbacks executed
func (m *MockTimeProvider) Fired() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fired
}

// Deadlines returns pending deadlines in ascending order
func (m *MockTimeProvider) Deadlines() []time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]time.Time, 0, len(m.timers))
	for _, t := range m.timers {
		out = append(out, t.deadline)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
