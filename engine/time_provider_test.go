package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeProvider(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	fired := make(chan struct{})
	provider.AfterFunc(5*time.Millisecond, func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("AfterFunc callback did not run")
	}
}

func TestTimeProviderStop(t *testing.T) {
	provider := NewTimeProvider()

	var calls atomic.Int32
	timer := provider.AfterFunc(50*time.Millisecond, func() { calls.Add(1) })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second Stop must report already stopped")

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	now := mock.Now()
	if !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	assert.True(t, mock.Now().Equal(newTime))

	mock.Advance(1 * time.Hour)
	assert.True(t, mock.Now().Equal(newTime.Add(time.Hour)))

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	assert.True(t, mock.Now().Equal(newTime.Add(time.Hour+45*time.Minute)))
}

func TestMockTimeProviderAfterFunc(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))

	var order []int
	mock.AfterFunc(300*time.Millisecond, func() { order = append(order, 3) })
	mock.AfterFunc(100*time.Millisecond, func() { order = append(order, 1) })
	mock.AfterFunc(200*time.Millisecond, func() { order = append(order, 2) })

	require.Equal(t, 3, mock.Pending())
	require.Equal(t, 3, mock.Scheduled())

	mock.Advance(99 * time.Millisecond)
	assert.Empty(t, order)

	mock.Advance(150 * time.Millisecond)
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 1, mock.Pending())

	mock.Advance(time.Second)
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Zero(t, mock.Pending())
	assert.Equal(t, 3, mock.Fired())
}

func TestMockTimeProviderStop(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))

	called := false
	timer := mock.AfterFunc(500*time.Millisecond, func() { called = true })

	mock.Advance(100 * time.Millisecond)
	assert.True(t, timer.Stop())
	assert.Zero(t, mock.Pending())

	mock.Advance(time.Second)
	assert.False(t, called)
	assert.False(t, timer.Stop())
	assert.Zero(t, mock.Fired())
}

func TestMockTimeProviderReentrantSchedule(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))

	var chained bool
	mock.AfterFunc(10*time.Millisecond, func() {
		mock.AfterFunc(10*time.Millisecond, func() { chained = true })
	})

	mock.Advance(10 * time.Millisecond)
	assert.False(t, chained)
	assert.Equal(t, 1, mock.Pending())

	mock.Advance(10 * time.Millisecond)
	assert.True(t, chained)
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
			done <- true
		}()
	}
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
			done <- true
		}()
	}
	for i := 0; i < 15; i++ {
		<-done
	}

	assert.True(t, mock.Now().Equal(time.Date(2025, 1, 1, 0, 0, 0, 500*int(time.Millisecond), time.UTC)))
}
