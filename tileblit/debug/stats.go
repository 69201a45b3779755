package debug

import "fmt"

// Stats is a point-in-time view of a scene for status displays
type Stats struct {
	Scene        string
	Mode         string
	FPS          float64 // trailing-window frame rate
	PaintMean    float64 // ms, trailing window
	PaintLast    float64 // ms
	FrameSamples int
	PaintSamples int
	Frames       uint64
	Paused       bool
}

// Lines formats the stats for text panes
func (s *Stats) Lines() []string {
	status := "RUNNING"
	if s.Paused {
		status = "PAUSED"
	}
	return []string{
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("Scene: %s", s.Scene),
		fmt.Sprintf("Mode: %s", s.Mode),
		fmt.Sprintf("FPS: %.1f", s.FPS),
		fmt.Sprintf("Paint: %.3f ms (last %.3f)", s.PaintMean, s.PaintLast),
		fmt.Sprintf("Samples: frame %d, paint %d", s.FrameSamples, s.PaintSamples),
		fmt.Sprintf("Frames: %d", s.Frames),
	}
}
