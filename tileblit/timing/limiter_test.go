package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-tileblit/tileblit/timers"
)

func TestFrameDuration(t *testing.T) {
	assert.Equal(t, 50*time.Millisecond, FrameDuration(20))
	assert.Equal(t, time.Duration(0), FrameDuration(0))
}

func TestDelay(t *testing.T) {
	tests := []struct {
		name     string
		budget   float64
		elapsed  float64
		expected time.Duration
	}{
		{"idle frame", 50, 0, 50 * time.Millisecond},
		{"partial frame", 50, 12.7, 38 * time.Millisecond},
		{"exact budget", 50, 50, time.Millisecond},
		{"overrun", 50, 80, time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Delay(tt.budget, tt.elapsed))
		})
	}
}

func TestDelayLimiter(t *testing.T) {
	var now int64
	reg := timers.New(
		timers.WithClock(timers.ClockFunc(func() int64 { return now }), time.Millisecond),
		timers.WithTimers(workTimer),
	)

	var slept []time.Duration
	lim := newDelayLimiter(20, reg, func(d time.Duration) {
		slept = append(slept, d)
		now += int64(d / time.Millisecond)
	})

	now += 10
	lim.WaitForNextFrame()
	now += 70
	lim.WaitForNextFrame()

	require.Len(t, slept, 2)
	assert.Equal(t, 40*time.Millisecond, slept[0])
	assert.Equal(t, time.Millisecond, slept[1], "never less than the minimum delay")
	assert.Equal(t, time.Millisecond, lim.LastWait())

	// sleeping is not counted as work
	assert.Equal(t, []float64{10, 70}, reg.Window(workTimer, 0))
}

func TestNew(t *testing.T) {
	for _, kind := range []string{"delay", "ticker", "adaptive", "none", ""} {
		lim, err := New(kind, 20)
		require.NoError(t, err, kind)
		assert.NotNil(t, lim)
		if ticker, ok := lim.(*TickerLimiter); ok {
			ticker.Stop()
		}
	}

	_, err := New("vsync", 20)
	assert.Error(t, err)

	_, err = New("delay", 0)
	assert.Error(t, err)

	_, err = New("none", 0)
	assert.NoError(t, err)
}

func TestNoOpLimiter(t *testing.T) {
	lim := NewNoOpLimiter()
	start := time.Now()
	for i := 0; i < 100; i++ {
		lim.WaitForNextFrame()
	}
	lim.Reset()
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestAdaptiveLimiter_Paces(t *testing.T) {
	lim := NewAdaptiveLimiter(200)
	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.WaitForNextFrame()
	}
	// first frame is immediate, four more at 5ms each
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}
