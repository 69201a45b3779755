//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/valerio/go-tileblit/tileblit/backend"
	"github.com/valerio/go-tileblit/tileblit/debug"
	"github.com/valerio/go-tileblit/tileblit/display"
	"github.com/valerio/go-tileblit/tileblit/input"
	"github.com/valerio/go-tileblit/tileblit/input/action"
	"github.com/valerio/go-tileblit/tileblit/input/event"
	"github.com/valerio/go-tileblit/tileblit/video"
	"github.com/veandco/go-sdl2/sdl"
)

// Backend implements the Backend interface using SDL2 bindings
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed renderer, see build tags (sdl2)
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	running  bool
	config   backend.BackendConfig

	// texture dimensions, recreated when the frame size changes
	texWidth  int
	texHeight int
	pixels    []byte

	title      string
	eventQueue []backend.InputEvent

	// Snapshot state
	currentFrame *video.FrameBuffer
}

// New creates a new SDL2 backend
func New() *Backend {
	return &Backend{}
}

// Init initializes the SDL2 backend
func (s *Backend) Init(config backend.BackendConfig) error {
	s.config = config
	if s.config.Scale < 1 {
		s.config.Scale = display.DefaultPixelScale
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	// sized properly once the first frame arrives
	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		display.StressFrameSize,
		display.StressFrameSize,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	s.window = window

	// no vsync: the frame limiter owns pacing
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer = renderer

	s.running = true
	slog.Info("SDL2 backend initialized", "scale", s.config.Scale)

	return nil
}

// Update renders a frame and processes events
func (s *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	for evt := sdl.PollEvent(); evt != nil; evt = sdl.PollEvent() {
		s.handleEvent(evt)
	}

	events := s.eventQueue
	s.eventQueue = nil

	if !s.running || frame == nil {
		return events, nil
	}

	if err := s.ensureTexture(frame.Width(), frame.Height()); err != nil {
		return events, err
	}

	s.currentFrame = frame
	if err := s.renderFrame(frame); err != nil {
		return events, err
	}
	s.updateTitle()

	return events, nil
}

// Cleanup cleans up SDL2 resources
func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

// HandleAction processes backend-specific actions
func (s *Backend) HandleAction(act action.Action) {
	switch act {
	case action.EmulatorSnapshot:
		debug.TakeSnapshot(s.currentFrame, s.stats().Mode)
	case action.EmulatorDebugToggle:
		s.config.ShowDebug = !s.config.ShowDebug
		s.title = ""
	}
}

func (s *Backend) stats() *debug.Stats {
	if s.config.StatsProvider == nil {
		return &debug.Stats{}
	}
	return s.config.StatsProvider.ExtractStats()
}

func (s *Backend) handleEvent(evt sdl.Event) {
	switch e := evt.(type) {
	case *sdl.QuitEvent:
		s.running = false
		s.eventQueue = append(s.eventQueue, backend.InputEvent{Action: action.EmulatorQuit, Type: event.Press})

	case *sdl.KeyboardEvent:
		// Ignore key repeat events
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return
		}
		if act, exists := keyMapping[e.Keysym.Sym]; exists {
			if act == action.EmulatorQuit {
				s.running = false
			}
			s.eventQueue = append(s.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
		}
	}
}

// sdlKeyNameMap converts SDL2 keys to key names used in default mappings
var sdlKeyNameMap = map[sdl.Keycode]string{
	sdl.K_u:          "u",
	sdl.K_m:          "m",
	sdl.K_r:          "r",
	sdl.K_p:          "p",
	sdl.K_f:          "f",
	sdl.K_q:          "q",
	sdl.K_SPACE:      "Space",
	sdl.K_F10:        "F10",
	sdl.K_F12:        "F12",
	sdl.K_ESCAPE:     "Escape",
	sdl.K_EQUALS:     "=",
	sdl.K_PLUS:       "+",
	sdl.K_KP_PLUS:    "+",
	sdl.K_MINUS:      "-",
	sdl.K_KP_MINUS:   "-",
	sdl.K_UNDERSCORE: "_",
}

// keyMapping maps SDL2 keys to actions
var keyMapping = buildKeyMapping()

func buildKeyMapping() map[sdl.Keycode]action.Action {
	mapping := make(map[sdl.Keycode]action.Action)
	for key, name := range sdlKeyNameMap {
		if act, ok := input.GetDefaultMapping(name); ok {
			mapping[key] = act
		}
	}
	return mapping
}

func (s *Backend) ensureTexture(width, height int) error {
	if s.texture != nil && width == s.texWidth && height == s.texHeight {
		return nil
	}
	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}

	texture, err := s.renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(width),
		int32(height),
	)
	if err != nil {
		return fmt.Errorf("failed to create texture: %w", err)
	}

	s.texture = texture
	s.texWidth = width
	s.texHeight = height
	s.pixels = make([]byte, width*height*display.RGBABytesPerPixel)
	s.window.SetSize(int32(width*s.config.Scale), int32(height*s.config.Scale))
	return nil
}

func (s *Backend) renderFrame(frame *video.FrameBuffer) error {
	for i, pixel := range frame.ToSlice() {
		c := video.Color(pixel)
		idx := i * display.RGBABytesPerPixel

		// ABGR byte order for little-endian RGBA8888
		s.pixels[idx] = c.A()
		s.pixels[idx+1] = c.B()
		s.pixels[idx+2] = c.G()
		s.pixels[idx+3] = c.R()
	}

	if err := s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), s.texWidth*display.RGBABytesPerPixel); err != nil {
		return fmt.Errorf("failed to update texture: %w", err)
	}

	s.renderer.SetDrawColor(0, 0, 0, display.FullAlpha)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
	return nil
}

// updateTitle shows the FPS readout in the window title
func (s *Backend) updateTitle() {
	stats := s.stats()
	title := fmt.Sprintf("%s [%s] %.1f FPS", s.config.Title, stats.Mode, stats.FPS)
	if s.config.ShowDebug {
		title += fmt.Sprintf(" | paint %.2f ms", stats.PaintMean)
	}
	if stats.Paused {
		title += " (paused)"
	}
	if title != s.title {
		s.window.SetTitle(title)
		s.title = title
	}
}
