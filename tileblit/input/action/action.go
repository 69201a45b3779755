package action

// Action represents input actions that can be performed in the demo
type Action int

const (
	// Rendering controls
	ModeToggle Action = iota
	TimersReset

	// Loop controls
	EmulatorPauseToggle
	EmulatorStepFrame
	EmulatorSnapshot
	EmulatorDebugToggle
	EmulatorQuit

	// Debug controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

// Category groups actions by who consumes them
type Category int

const (
	CategoryRendering Category = iota
	CategoryLoop
	CategoryDebug
)

// Info describes an action for logs and help text
type Info struct {
	Description string
	Category    Category
}

var actionInfo = map[Action]Info{
	ModeToggle:            {"Toggle image/fill mode", CategoryRendering},
	TimersReset:           {"Reset timers", CategoryRendering},
	EmulatorPauseToggle:   {"Pause/resume", CategoryLoop},
	EmulatorStepFrame:     {"Step one frame", CategoryLoop},
	EmulatorSnapshot:      {"Save snapshot", CategoryLoop},
	EmulatorDebugToggle:   {"Toggle debug view", CategoryDebug},
	EmulatorQuit:          {"Quit", CategoryLoop},
	DebugLogLevelIncrease: {"Show more logs", CategoryDebug},
	DebugLogLevelDecrease: {"Show fewer logs", CategoryDebug},
}

// GetInfo returns the description of an action
func GetInfo(act Action) Info {
	if info, ok := actionInfo[act]; ok {
		return info
	}
	return Info{Description: "Unknown", Category: CategoryDebug}
}

func (a Action) String() string {
	return GetInfo(a).Description
}
