package game

import (
	"context"
	"sync"
	"time"
)

// Clock suspends the loop between ticks
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock sleeps on a timer and wakes early on cancellation
type RealClock struct{}

// Sleep waits for d or until ctx is done
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// MockClock records sleeps without waiting
type MockClock struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

// NewMockClock creates a mock clock
func NewMockClock() *MockClock {
	return &MockClock{}
}

// Sleep records d and returns immediately
func (m *MockClock) Sleep(ctx context.Context, d time.Duration) error {
	m.mu.Lock()
	m.sleeps = append(m.sleeps, d)
	m.mu.Unlock()
	return ctx.Err()
}

// Sleeps returns the recorded durations
func (m *MockClock) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.sleeps...)
}
