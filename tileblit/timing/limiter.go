package timing

import (
	"fmt"
	"time"
)

// Limiter controls frame rate timing for the render loop.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// FrameDuration returns the target duration of a single frame.
func FrameDuration(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// New builds a limiter by name: delay, ticker, adaptive or none.
func New(kind string, fps int) (Limiter, error) {
	if fps <= 0 && kind != "none" {
		return nil, fmt.Errorf("target fps must be positive, got %d", fps)
	}

	switch kind {
	case "delay", "":
		return NewDelayLimiter(fps), nil
	case "ticker":
		return NewTickerLimiter(fps), nil
	case "adaptive":
		return NewAdaptiveLimiter(fps), nil
	case "none":
		return NewNoOpLimiter(), nil
	default:
		return nil, fmt.Errorf("unknown limiter %q", kind)
	}
}
