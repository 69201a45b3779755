package timing

import (
	"time"

	"github.com/valerio/go-tileblit/tileblit/display"
	"github.com/valerio/go-tileblit/tileblit/timers"
)

const workTimer = "Work"

// DelayLimiter waits out what is left of the frame budget after the work
// done since the previous wait, but always at least MinFrameDelayMs. It
// never tries to catch up on slow frames.
type DelayLimiter struct {
	budgetMs float64
	timers   *timers.Registry
	sleep    func(time.Duration)
	lastWait time.Duration
}

func NewDelayLimiter(fps int) *DelayLimiter {
	return newDelayLimiter(fps, timers.New(timers.WithTimers(workTimer), timers.WithCapacity(1)), time.Sleep)
}

func newDelayLimiter(fps int, reg *timers.Registry, sleep func(time.Duration)) *DelayLimiter {
	d := &DelayLimiter{
		budgetMs: float64(FrameDuration(fps)) / float64(time.Millisecond),
		timers:   reg,
		sleep:    sleep,
	}
	d.Reset()
	return d
}

func (d *DelayLimiter) WaitForNextFrame() {
	d.timers.Stop(workTimer)
	d.lastWait = Delay(d.budgetMs, d.timers.Last(workTimer))
	d.sleep(d.lastWait)
	d.timers.Start(workTimer)
}

func (d *DelayLimiter) Reset() {
	d.timers.Reset(workTimer)
	d.timers.Start(workTimer)
}

// LastWait returns the delay chosen by the previous WaitForNextFrame.
func (d *DelayLimiter) LastWait() time.Duration {
	return d.lastWait
}

// Delay returns max(budget - elapsed, MinFrameDelayMs) using whole
// milliseconds for the elapsed time.
func Delay(budgetMs, elapsedMs float64) time.Duration {
	wait := int64(budgetMs) - int64(elapsedMs)
	if wait < display.MinFrameDelayMs {
		wait = display.MinFrameDelayMs
	}
	return time.Duration(wait) * time.Millisecond
}
