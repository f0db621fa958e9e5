package mocks

import (
	"time"

	"github.com/mcoot/blockdrop/internal/dependencies/clock"
)

// MockClock is a manually advanced Clock for frame-driver tests
type MockClock struct {
	CurrentTime time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward and returns the new time
func (c *MockClock) Advance(d time.Duration) time.Time {
	c.CurrentTime = c.CurrentTime.Add(d)
	return c.CurrentTime
}
