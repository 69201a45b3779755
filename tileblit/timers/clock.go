package timers

import "time"

// Clock returns a non-decreasing count of elapsed ticks.
type Clock interface {
	Now() int64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() int64

func (f ClockFunc) Now() int64 {
	return f()
}

type monotonicClock struct {
	origin time.Time
}

// NewMonotonicClock returns a Clock counting nanoseconds since its
// creation. time.Since uses the monotonic reading, so wall clock jumps do
// not affect it.
func NewMonotonicClock() Clock {
	return &monotonicClock{origin: time.Now()}
}

func (c *monotonicClock) Now() int64 {
	return int64(time.Since(c.origin))
}
