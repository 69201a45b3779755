package tileblit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-tileblit/tileblit/display"
	"github.com/valerio/go-tileblit/tileblit/input/action"
	"github.com/valerio/go-tileblit/tileblit/tiles"
	"github.com/valerio/go-tileblit/tileblit/timers"
	"github.com/valerio/go-tileblit/tileblit/video"
)

// tickingClock advances 10ms on every read. Each frame reads it three
// times (frame update, paint start, paint stop), so frames are 30ms apart
// and painting takes 10ms.
func tickingClock() timers.Option {
	var now int64
	clock := timers.ClockFunc(func() int64 {
		now += 10
		return now
	})
	return timers.WithClock(clock, time.Millisecond)
}

func testShowcase(t *testing.T, mode tiles.Mode) *Showcase {
	t.Helper()
	s, err := NewShowcase(ShowcaseConfig{
		Grid:        tiles.GridConfig{TilesX: 3, TilesY: 2, TilesZ: 1, TileWidth: 4, TileHeight: 5, Seed: 42},
		Mode:        mode,
		ReportEvery: 4,
		TimerOpts:   []timers.Option{tickingClock()},
	})
	require.NoError(t, err)
	return s
}

func runFrames(t *testing.T, s Scene, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, s.RunUntilFrame())
	}
}

func TestShowcase_ReportsFPS(t *testing.T) {
	s := testShowcase(t, tiles.ModeImage)

	runFrames(t, s, 3)
	assert.Zero(t, s.FPS(), "no report before ReportEvery frames")

	runFrames(t, s, 1)
	assert.InDelta(t, 1000.0/30, s.FPS(), 1e-9)

	stats := s.ExtractStats()
	assert.Equal(t, "showcase", stats.Scene)
	assert.Equal(t, "image", stats.Mode)
	assert.Equal(t, uint64(4), stats.Frames)
	assert.Equal(t, 3, stats.FrameSamples, "first frame only arms the timer")
	assert.Equal(t, 4, stats.PaintSamples)
	assert.InDelta(t, 10.0, stats.PaintMean, 1e-9)
	assert.InDelta(t, 10.0, stats.PaintLast, 1e-9)
	assert.False(t, stats.Paused)
}

func TestShowcase_ModeToggle(t *testing.T) {
	s := testShowcase(t, tiles.ModeImage)
	runFrames(t, s, 1)
	imageFrame := append([]uint32(nil), s.GetCurrentFrame().ToSlice()...)

	s.HandleAction(action.ModeToggle, false)
	assert.Equal(t, tiles.ModeImage, s.Mode(), "releases are ignored")

	s.HandleAction(action.ModeToggle, true)
	assert.Equal(t, tiles.ModeFill, s.Mode())
	runFrames(t, s, 1)
	assert.Equal(t, imageFrame, s.GetCurrentFrame().ToSlice())

	s.HandleAction(action.ModeToggle, true)
	assert.Equal(t, tiles.ModeImage, s.Mode())
}

func TestShowcase_PauseAndStep(t *testing.T) {
	s := testShowcase(t, tiles.ModeImage)
	runFrames(t, s, 2)
	require.Equal(t, 1, s.Timers().Count(display.FPSTimer))

	s.HandleAction(action.EmulatorPauseToggle, true)
	runFrames(t, s, 3)
	assert.Equal(t, uint64(2), s.ExtractStats().Frames)
	assert.True(t, s.ExtractStats().Paused)

	s.HandleAction(action.EmulatorStepFrame, true)
	runFrames(t, s, 1)
	assert.Equal(t, uint64(3), s.ExtractStats().Frames)
	assert.Equal(t, 1, s.Timers().Count(display.FPSTimer), "stepped frames record no interval")

	runFrames(t, s, 1)
	assert.Equal(t, uint64(3), s.ExtractStats().Frames, "step is single shot")

	s.HandleAction(action.EmulatorPauseToggle, true)
	runFrames(t, s, 1)
	assert.Equal(t, 2, s.Timers().Count(display.FPSTimer))
	assert.InDelta(t, 10.0, s.Timers().Last(display.FPSTimer), 1e-9, "interval starts at resume")
}

func TestShowcase_StepIgnoredWhileRunning(t *testing.T) {
	s := testShowcase(t, tiles.ModeImage)
	s.HandleAction(action.EmulatorStepFrame, true)
	runFrames(t, s, 2)
	assert.Equal(t, 1, s.Timers().Count(display.FPSTimer))
}

func TestShowcase_TimersReset(t *testing.T) {
	s := testShowcase(t, tiles.ModeFill)
	runFrames(t, s, 4)
	require.NotZero(t, s.FPS())

	s.HandleAction(action.TimersReset, true)
	assert.Zero(t, s.FPS())
	assert.Zero(t, s.Timers().Count(display.FPSTimer))
	assert.Zero(t, s.Timers().Count(display.PaintTimer))
	assert.Equal(t, []string{display.FPSTimer, display.PaintTimer}, s.Timers().Names())
}

func TestShowcase_InvalidGrid(t *testing.T) {
	_, err := NewShowcase(ShowcaseConfig{Grid: tiles.GridConfig{TilesX: 0, TilesY: 1, TilesZ: 1, TileWidth: 1, TileHeight: 1}})
	assert.Error(t, err)
}

func TestStress_PaintsCentredTile(t *testing.T) {
	config := DefaultStressConfig()
	config.Count = 10
	config.TimerOpts = []timers.Option{tickingClock()}
	s, err := NewStress(config)
	require.NoError(t, err)
	assert.Equal(t, tiles.ModeFill, s.Mode())

	runFrames(t, s, 1)
	frame := s.GetCurrentFrame()
	require.Equal(t, display.StressFrameSize, frame.Width())
	require.Equal(t, display.StressFrameSize, frame.Height())

	color := tiles.NewColorSource(display.DefaultSeed).Next()
	assert.Equal(t, uint32(color), frame.GetPixel(50, 50))
	assert.Equal(t, uint32(video.BlackColor), frame.GetPixel(0, 0))
	assert.Equal(t, uint32(video.BlackColor), frame.GetPixel(99, 99))

	s.HandleAction(action.ModeToggle, true)
	runFrames(t, s, 1)
	assert.Equal(t, tiles.ModeImage, s.Mode())
	assert.Equal(t, uint32(color), frame.GetPixel(50, 50))
	assert.Equal(t, "image", s.ExtractStats().Mode)
	assert.Equal(t, 2, s.Timers().Count(display.PaintTimer))
}

func TestStress_InvalidConfig(t *testing.T) {
	config := DefaultStressConfig()
	config.Count = 0
	_, err := NewStress(config)
	assert.Error(t, err)

	config = DefaultStressConfig()
	config.TileWidth = 0
	_, err = NewStress(config)
	assert.Error(t, err)
}

func BenchmarkShowcase(b *testing.B) {
	for _, mode := range []tiles.Mode{tiles.ModeImage, tiles.ModeFill} {
		b.Run(mode.String(), func(b *testing.B) {
			config := DefaultShowcaseConfig()
			config.Mode = mode
			s, err := NewShowcase(config)
			if err != nil {
				b.Fatalf("Failed to create showcase: %v", err)
			}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if err := s.RunUntilFrame(); err != nil {
					b.Fatalf("Frame failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkStress(b *testing.B) {
	for _, mode := range []tiles.Mode{tiles.ModeImage, tiles.ModeFill} {
		b.Run(mode.String(), func(b *testing.B) {
			config := DefaultStressConfig()
			config.Mode = mode
			s, err := NewStress(config)
			if err != nil {
				b.Fatalf("Failed to create stress scene: %v", err)
			}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if err := s.RunUntilFrame(); err != nil {
					b.Fatalf("Frame failed: %v", err)
				}
			}
		})
	}
}
