package tileblit

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-tileblit/tileblit/backend"
	"github.com/valerio/go-tileblit/tileblit/input"
	"github.com/valerio/go-tileblit/tileblit/input/action"
	"github.com/valerio/go-tileblit/tileblit/input/event"
)

// Run initializes the backend and drives the frame loop until the backend
// reports a quit or an error occurs. Once Init succeeds the backend is
// always cleaned up. Events pass through config.InputManager when set, so
// callers can hook their own callbacks.
func Run(scene Scene, b backend.Backend, config backend.BackendConfig) error {
	if config.StatsProvider == nil {
		config.StatsProvider = scene
	}
	if config.InputManager == nil {
		config.InputManager = input.NewManager()
	}
	manager := config.InputManager
	quit := false
	manager.On(action.EmulatorQuit, event.Press, func() {
		quit = true
	})

	if err := b.Init(config); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if err := b.Cleanup(); err != nil {
			slog.Error("Backend cleanup failed", "error", err)
		}
	}()

	for {
		if err := scene.RunUntilFrame(); err != nil {
			return fmt.Errorf("failed to run frame: %w", err)
		}

		events, err := b.Update(scene.GetCurrentFrame())
		if err != nil {
			return fmt.Errorf("backend update failed: %w", err)
		}

		dispatch(scene, b, manager, events)
		if quit {
			slog.Info("Quit requested")
			return nil
		}
	}
}

// dispatch routes debounced events to the manager callbacks, the scene and
// the backend.
func dispatch(scene Scene, b backend.Backend, manager *input.Manager, events []backend.InputEvent) {
	for _, evt := range events {
		if !manager.Trigger(evt.Action, evt.Type) || evt.Action == action.EmulatorQuit {
			continue
		}

		pressed := evt.Type == event.Press
		scene.HandleAction(evt.Action, pressed)
		if ah, ok := b.(backend.ActionHandler); ok && pressed {
			ah.HandleAction(evt.Action)
		}
	}
}
