package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manual clock for tests
// Time only moves through Advance, as an offset from the start instant
type MockTimeProvider struct {
	start   time.Time
	elapsed atomic.Int64
}

// NewMockTimeProvider creates a clock reading start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

// Now implements Clock
func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.elapsed.Load()))
}

// Advance moves the clock forward by d and returns the new reading
// Negative durations are ignored so the clock never runs backwards
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	if d < 0 {
		d = 0
	}
	return m.start.Add(time.Duration(m.elapsed.Add(int64(d))))
}
