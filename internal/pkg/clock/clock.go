package clock

import "time"

type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type RealClock struct {
	loc *time.Location
}

func NewRealClock() Clock {
	return &RealClock{loc: time.Local}
}

// NewRealClockIn reports the current time in loc; day boundaries are computed there.
func NewRealClockIn(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *RealClock) Location() *time.Location {
	return c.loc
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Location() *time.Location {
	return c.currentTime.Location()
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// StartOfDay returns local midnight of t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
