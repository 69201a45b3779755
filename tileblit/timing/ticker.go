package timing

import "time"

// TickerLimiter uses time.Ticker for simple, consistent frame timing.
// Less accurate than AdaptiveLimiter but simpler and good enough for most cases.
type TickerLimiter struct {
	ticker   *time.Ticker
	ch       <-chan time.Time
	interval time.Duration
}

func NewTickerLimiter(fps int) *TickerLimiter {
	interval := FrameDuration(fps)
	ticker := time.NewTicker(interval)
	return &TickerLimiter{
		ticker:   ticker,
		ch:       ticker.C,
		interval: interval,
	}
}

func (t *TickerLimiter) WaitForNextFrame() {
	<-t.ch
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(t.interval)
}

func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}
