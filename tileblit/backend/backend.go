package backend

import (
	"github.com/valerio/go-tileblit/tileblit/debug"
	"github.com/valerio/go-tileblit/tileblit/input"
	"github.com/valerio/go-tileblit/tileblit/input/action"
	"github.com/valerio/go-tileblit/tileblit/input/event"
	"github.com/valerio/go-tileblit/tileblit/video"
)

// Backend represents a complete output platform (rendering + input).
// Backends are responsible for:
// - Rendering frames to their specific output (terminal, SDL window, etc.)
// - Translating platform-specific input events to Actions
// - Handling backend-specific features (snapshots, stats panes)
type Backend interface {
	// Init configures the backend with the provided configuration.
	// This is a required step before calling Update.
	Init(config BackendConfig) error

	// Update renders the provided frame and returns the input events
	// collected since the previous call.
	Update(frame *video.FrameBuffer) ([]InputEvent, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// ActionHandler is implemented by backends that react to actions
// themselves, e.g. snapshots or debug panes.
type ActionHandler interface {
	HandleAction(act action.Action)
}

// StatsProvider exposes scene statistics to backends.
type StatsProvider interface {
	ExtractStats() *debug.Stats
}

// InputEvent is an action produced by a backend.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title         string
	Scale         int
	ShowDebug     bool           // Backends may ignore unsupported features
	StatsProvider StatsProvider  // Source for FPS readouts and stats panes
	InputManager  *input.Manager // Optional shared manager for backend callbacks
}
