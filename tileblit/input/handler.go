package input

import (
	"time"

	"github.com/valerio/go-tileblit/tileblit/input/action"
	"github.com/valerio/go-tileblit/tileblit/input/event"
)

// debounceDuration is the minimum time between debounced events
const debounceDuration = 300 * time.Millisecond

// Handler manages input processing with debouncing for UI actions
type Handler struct {
	lastActionTime map[action.Action]map[event.Type]time.Time
	debounceDelay  time.Duration
	now            func() time.Time
}

func NewHandler() *Handler {
	return &Handler{
		lastActionTime: make(map[action.Action]map[event.Type]time.Time),
		debounceDelay:  debounceDuration,
		now:            time.Now,
	}
}

// ProcessEvent applies debouncing to Press and Release events.
// Returns true if the event should be handled, false if it was debounced
func (h *Handler) ProcessEvent(act action.Action, typ event.Type) bool {
	if typ == event.Hold {
		return true
	}

	now := h.now()
	if h.lastActionTime[act] == nil {
		h.lastActionTime[act] = make(map[event.Type]time.Time)
	}
	if lastTime, exists := h.lastActionTime[act][typ]; exists {
		if now.Sub(lastTime) < h.debounceDelay {
			return false
		}
	}
	h.lastActionTime[act][typ] = now

	return true
}
