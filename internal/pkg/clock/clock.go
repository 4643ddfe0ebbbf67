package clock

import "time"

// Clock is the source of created/updated timestamps. Values are UTC and
// truncated to microseconds so they survive a round trip through Postgres.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return normalize(time.Now())
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: normalize(t)}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = normalize(t)
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = normalize(c.currentTime.Add(d))
}

func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
