package input

import (
	"github.com/valerio/go-tileblit/tileblit/input/action"
	"github.com/valerio/go-tileblit/tileblit/input/event"
)

// Manager dispatches debounced actions to registered callbacks
type Manager struct {
	handlers map[action.Action]map[event.Type][]func()
	debounce *Handler
}

func NewManager() *Manager {
	return &Manager{
		handlers: make(map[action.Action]map[event.Type][]func()),
		debounce: NewHandler(),
	}
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}

	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger runs the callbacks for the given action and event type.
// Returns false when the event was debounced.
func (m *Manager) Trigger(act action.Action, evt event.Type) bool {
	if !m.debounce.ProcessEvent(act, evt) {
		return false
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
	return true
}
