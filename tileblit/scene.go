package tileblit

import (
	"github.com/valerio/go-tileblit/tileblit/debug"
	"github.com/valerio/go-tileblit/tileblit/input/action"
	"github.com/valerio/go-tileblit/tileblit/video"
)

// Scene produces one frame per RunUntilFrame call.
type Scene interface {
	RunUntilFrame() error
	GetCurrentFrame() *video.FrameBuffer
	HandleAction(act action.Action, pressed bool)
	ExtractStats() *debug.Stats
}

var (
	_ Scene = (*Showcase)(nil)
	_ Scene = (*Stress)(nil)
)
