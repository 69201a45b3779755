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

// ShowcaseConfig configures the tile grid scene
type ShowcaseConfig struct {
	Grid        tiles.GridConfig
	Mode        tiles.Mode
	ReportEvery int            // frames between FPS reports, also the FPS window
	Limiter     timing.Limiter // nil means no limiting
	TimerOpts   []timers.Option
}

// DefaultShowcaseConfig returns the default grid, image mode and 20 FPS reporting
func DefaultShowcaseConfig() ShowcaseConfig {
	return ShowcaseConfig{
		Grid:        tiles.DefaultGridConfig(),
		Mode:        tiles.ModeImage,
		ReportEvery: display.DefaultTargetFPS,
	}
}

// Showcase paints the whole tile grid every frame, either by blitting the
// pre-rendered tile images or by filling rectangles.
type Showcase struct {
	grid    *tiles.Grid
	frame   *video.FrameBuffer
	meter   *meter
	limiter timing.Limiter
	mode    tiles.Mode
	paused  bool
	step    bool
}

func NewShowcase(config ShowcaseConfig) (*Showcase, error) {
	grid, err := tiles.NewGrid(config.Grid)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	limiter := config.Limiter
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}

	width, height := config.Grid.PixelSize()
	slog.Info("Showcase created",
		"tiles", len(grid.Tiles()),
		"size", fmt.Sprintf("%dx%d", width, height),
		"mode", config.Mode.String())

	return &Showcase{
		grid:    grid,
		frame:   video.NewFrameBuffer(width, height),
		meter:   newMeter(config.ReportEvery, config.TimerOpts...),
		limiter: limiter,
		mode:    config.Mode,
	}, nil
}

// RunUntilFrame paints one frame. While paused the previous frame is kept
// unless a single step was requested.
func (s *Showcase) RunUntilFrame() error {
	if s.paused && !s.step {
		s.limiter.WaitForNextFrame()
		return nil
	}
	stepped := s.step
	s.step = false

	s.meter.frameDone(stepped, "showcase", s.mode)
	s.meter.paint(func() {
		s.frame.Clear(video.BlackColor)
		s.grid.Paint(s.frame, s.mode)
	})

	s.limiter.WaitForNextFrame()
	return nil
}

func (s *Showcase) GetCurrentFrame() *video.FrameBuffer {
	return s.frame
}

func (s *Showcase) HandleAction(act action.Action, pressed bool) {
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

func (s *Showcase) ExtractStats() *debug.Stats {
	return s.meter.stats("showcase", s.mode, s.paused)
}

func (s *Showcase) Mode() tiles.Mode {
	return s.mode
}

func (s *Showcase) Grid() *tiles.Grid {
	return s.grid
}

// Timers exposes the FPS and Paint timers
func (s *Showcase) Timers() *timers.Registry {
	return s.meter.timers
}

// FPS returns the frame rate computed at the last report
func (s *Showcase) FPS() float64 {
	return s.meter.fps
}
