package tileblit

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-tileblit/tileblit/debug"
	"github.com/valerio/go-tileblit/tileblit/display"
	"github.com/valerio/go-tileblit/tileblit/timers"
)

// meter owns the frame and paint timers of a scene and turns them into
// periodic FPS reports.
type meter struct {
	timers      *timers.Registry
	reportEvery int
	frames      uint64
	fps         float64
}

func newMeter(reportEvery int, opts ...timers.Option) *meter {
	if reportEvery <= 0 {
		reportEvery = display.DefaultTargetFPS
	}
	opts = append(opts, timers.WithTimers(display.FPSTimer, display.PaintTimer))
	return &meter{
		timers:      timers.New(opts...),
		reportEvery: reportEvery,
	}
}

// frameDone marks the end of a frame. A stepped frame only re-arms the
// frame timer, so time spent paused never shows up as a sample.
func (m *meter) frameDone(stepped bool, scene string, mode fmt.Stringer) {
	m.frames++
	if stepped {
		m.timers.Start(display.FPSTimer)
		return
	}
	m.timers.Update(display.FPSTimer)

	if m.timers.Valid(display.FPSTimer) && m.frames%uint64(m.reportEvery) == 0 {
		m.fps = m.timers.Rate(display.FPSTimer, m.reportEvery)
		slog.Info("FPS",
			"scene", scene,
			"fps", fmt.Sprintf("%.1f", m.fps),
			"mode", mode.String(),
			"paint_ms", fmt.Sprintf("%.3f", m.timers.WindowMean(display.PaintTimer, m.reportEvery)))
	}
}

// paint runs fn between Start and Stop of the paint timer.
func (m *meter) paint(fn func()) {
	m.timers.Start(display.PaintTimer)
	fn()
	m.timers.Stop(display.PaintTimer)
}

// resume drops the interval that covers a pause.
func (m *meter) resume() {
	m.timers.Start(display.FPSTimer)
}

func (m *meter) reset() {
	m.timers.Reset(display.FPSTimer)
	m.timers.Reset(display.PaintTimer)
	m.fps = 0
	slog.Info("Timers reset")
}

func (m *meter) stats(scene string, mode fmt.Stringer, paused bool) *debug.Stats {
	return &debug.Stats{
		Scene:        scene,
		Mode:         mode.String(),
		FPS:          m.fps,
		PaintMean:    m.timers.WindowMean(display.PaintTimer, m.reportEvery),
		PaintLast:    m.timers.Last(display.PaintTimer),
		FrameSamples: m.timers.Count(display.FPSTimer),
		PaintSamples: m.timers.Count(display.PaintTimer),
		Frames:       m.frames,
		Paused:       paused,
	}
}
