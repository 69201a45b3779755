package tileblit

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-tileblit/tileblit/debug"
	"github.com/valerio/go-tileblit/tileblit/display"
	"github.com/valerio/go-tileblit/tileblit/input/action"
	"github.com/valerio/go-tileblit/tileblit/tiles"
	"github.com/valerio/go-tileblit/tileblit/timers"
	"github.com/valerio/go-tileblit/tileblit/timing"
	"github.com/valerio/go-tileblit/tileblit/video"
)

// StressConfig configures the single tile overdraw scene
type StressConfig struct {
	Count       int // draws per frame
	TileWidth   int
	TileHeight  int
	Seed        uint64
	Mode        tiles.Mode
	ReportEvery int
	Limiter     timing.Limiter
	TimerOpts   []timers.Option
}

func DefaultStressConfig() StressConfig {
	return StressConfig{
		Count:       display.DefaultStressCount,
		TileWidth:   display.DefaultTileWidth,
		TileHeight:  display.DefaultTileHeight,
		Seed:        display.DefaultSeed,
		Mode:        tiles.ModeFill,
		ReportEvery: display.DefaultTargetFPS,
	}
}

// Stress draws the same tile Count times at the centre of a small frame,
// isolating the per-draw cost of each mode from the grid layout.
type Stress struct {
	tile    *tiles.Tile
	count   int
	frame   *video.FrameBuffer
	meter   *meter
	limiter timing.Limiter
	mode    tiles.Mode
	paused  bool
	step    bool
}

func NewStress(config StressConfig) (*Stress, error) {
	if config.Count <= 0 {
		return nil, fmt.Errorf("stress count must be positive, got %d", config.Count)
	}
	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %dx%d", config.TileWidth, config.TileHeight)
	}

	limiter := config.Limiter
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}

	size := display.StressFrameSize
	color := tiles.NewColorSource(config.Seed).Next()
	tile := tiles.NewTile(
		size/2-config.TileWidth/2, size/2-config.TileHeight/2,
		config.TileWidth, config.TileHeight,
		color,
	)

	slog.Info("Stress scene created", "count", config.Count, "color", color.Hex(), "mode", config.Mode.String())

	return &Stress{
		tile:    tile,
		count:   config.Count,
		frame:   video.NewFrameBuffer(size, size),
		meter:   newMeter(config.ReportEvery, config.TimerOpts...),
		limiter: limiter,
		mode:    config.Mode,
	}, nil
}

func (s *Stress) RunUntilFrame() error {
	if s.paused && !s.step {
		s.limiter.WaitForNextFrame()
		return nil
	}
	stepped := s.step
	s.step = false

	s.meter.frameDone(stepped, "stress", s.mode)
	s.meter.paint(func() {
		s.frame.Clear(video.BlackColor)
		for i := 0; i < s.count; i++ {
			s.tile.Paint(s.frame, s.mode)
		}
	})

	s.limiter.WaitForNextFrame()
	return nil
}

func (s *Stress) GetCurrentFrame() *video.FrameBuffer {
	return s.frame
}

func (s *Stress) HandleAction(act action.Action, pressed bool) {
	if !pressed {
		return
	}
	switch act {
	case action.ModeToggle:
		s.mode = s.mode.Toggle()
		slog.Info("Switched mode", "mode", s.mode.String())
	case action.TimersReset:
		s.meter.reset()
	case action.EmulatorPauseToggle:
		s.paused = !s.paused
		if !s.paused {
			s.meter.resume()
			s.limiter.Reset()
		}
		slog.Info("Pause toggled", "paused", s.paused)
	case action.EmulatorStepFrame:
		if s.paused {
			s.step = true
		}
	}
}

func (s *Stress) ExtractStats() *debug.Stats {
	return s.meter.stats("stress", s.mode, s.paused)
}

func (s *Stress) Mode() tiles.Mode {
	return s.mode
}

func (s *Stress) Timers() *timers.Registry {
	return s.meter.timers
}
