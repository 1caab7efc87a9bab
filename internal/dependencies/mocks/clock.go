package mocks

import (
	"sync"
	"time"

	"github.com/jax2600/warpstery/internal/dependencies/clock"
)

var _ clock.Clock = (*MockClock)(nil)

// MockClock is a hand-driven clock. It is safe to share between the
// session service and a test goroutine.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward, e.g. past a session TTL
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
