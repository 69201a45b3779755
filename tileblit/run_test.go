package tileblit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-tileblit/tileblit/backend"
	"github.com/valerio/go-tileblit/tileblit/backend/headless"
	"github.com/valerio/go-tileblit/tileblit/input"
	"github.com/valerio/go-tileblit/tileblit/input/action"
	"github.com/valerio/go-tileblit/tileblit/input/event"
	"github.com/valerio/go-tileblit/tileblit/tiles"
	"github.com/valerio/go-tileblit/tileblit/video"
)

// MockBackend is a test backend that returns predetermined events
type MockBackend struct {
	events      []backend.InputEvent
	initErr     error
	updateErr   error
	config      backend.BackendConfig
	initialized bool
	cleanedUp   bool
	updateCalls int
	handled     []action.Action
	quitAfter   int
}

func (m *MockBackend) Init(config backend.BackendConfig) error {
	if m.initErr != nil {
		return m.initErr
	}
	m.config = config
	m.initialized = true
	return nil
}

func (m *MockBackend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	m.updateCalls++
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	// Return events only on first call
	if m.updateCalls == 1 {
		return m.events, nil
	}
	if m.updateCalls >= m.quitAfter {
		return []backend.InputEvent{{Action: action.EmulatorQuit, Type: event.Press}}, nil
	}
	return nil, nil
}

func (m *MockBackend) Cleanup() error {
	m.cleanedUp = true
	return nil
}

func (m *MockBackend) HandleAction(act action.Action) {
	m.handled = append(m.handled, act)
}

func TestEventFlow(t *testing.T) {
	tests := []struct {
		name          string
		events        []backend.InputEvent
		expectedMode  tiles.Mode
		expectedCalls int
		handled       []action.Action
	}{
		{
			name: "quit event stops loop",
			events: []backend.InputEvent{
				{Action: action.EmulatorQuit, Type: event.Press},
			},
			expectedMode:  tiles.ModeImage,
			expectedCalls: 1,
		},
		{
			name: "mode toggle reaches scene and backend",
			events: []backend.InputEvent{
				{Action: action.ModeToggle, Type: event.Press},
				{Action: action.EmulatorQuit, Type: event.Press},
			},
			expectedMode:  tiles.ModeFill,
			expectedCalls: 1,
			handled:       []action.Action{action.ModeToggle},
		},
		{
			name: "repeated presses are debounced",
			events: []backend.InputEvent{
				{Action: action.ModeToggle, Type: event.Press},
				{Action: action.ModeToggle, Type: event.Press},
				{Action: action.EmulatorQuit, Type: event.Press},
			},
			expectedMode:  tiles.ModeFill,
			expectedCalls: 1,
			handled:       []action.Action{action.ModeToggle},
		},
		{
			name: "releases go to the scene only",
			events: []backend.InputEvent{
				{Action: action.ModeToggle, Type: event.Release},
				{Action: action.EmulatorQuit, Type: event.Release},
			},
			expectedMode:  tiles.ModeImage,
			expectedCalls: 5,
		},
		{
			name:          "no events runs until quit",
			events:        []backend.InputEvent{},
			expectedMode:  tiles.ModeImage,
			expectedCalls: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := testShowcase(t, tiles.ModeImage)
			mockBackend := &MockBackend{events: tt.events, quitAfter: 5}

			err := Run(scene, mockBackend, backend.BackendConfig{Title: "Test"})
			require.NoError(t, err)

			assert.True(t, mockBackend.initialized)
			assert.True(t, mockBackend.cleanedUp)
			assert.Equal(t, tt.expectedCalls, mockBackend.updateCalls)
			assert.Equal(t, tt.expectedMode, scene.Mode())
			assert.Equal(t, tt.handled, mockBackend.handled)
			assert.Equal(t, scene, mockBackend.config.StatsProvider, "scene is the default stats provider")
		})
	}
}

func TestRun_Errors(t *testing.T) {
	t.Run("init failure skips cleanup", func(t *testing.T) {
		mockBackend := &MockBackend{initErr: errors.New("no display")}
		err := Run(testShowcase(t, tiles.ModeImage), mockBackend, backend.BackendConfig{})
		assert.ErrorIs(t, err, mockBackend.initErr)
		assert.False(t, mockBackend.cleanedUp)
	})

	t.Run("update failure cleans up", func(t *testing.T) {
		mockBackend := &MockBackend{updateErr: errors.New("lost window")}
		err := Run(testShowcase(t, tiles.ModeImage), mockBackend, backend.BackendConfig{})
		assert.ErrorIs(t, err, mockBackend.updateErr)
		assert.True(t, mockBackend.cleanedUp)
		assert.Equal(t, 1, mockBackend.updateCalls)
	})
}

func TestRun_Headless(t *testing.T) {
	scene := testShowcase(t, tiles.ModeFill)
	h := headless.New(8, headless.SnapshotConfig{})

	require.NoError(t, Run(scene, h, backend.BackendConfig{Title: "Test"}))
	assert.Equal(t, 8, h.FrameCount())
	assert.Equal(t, uint64(8), scene.ExtractStats().Frames)
	assert.InDelta(t, 1000.0/30, scene.FPS(), 1e-9)
}

func TestRun_InputManagerCallbacks(t *testing.T) {
	manager := input.NewManager()
	snapshots := 0
	manager.On(action.EmulatorSnapshot, event.Press, func() {
		snapshots++
	})

	mockBackend := &MockBackend{
		events: []backend.InputEvent{
			{Action: action.EmulatorSnapshot, Type: event.Press},
			{Action: action.EmulatorSnapshot, Type: event.Press},
		},
		quitAfter: 3,
	}
	err := Run(testShowcase(t, tiles.ModeImage), mockBackend, backend.BackendConfig{InputManager: manager})
	require.NoError(t, err)

	assert.Equal(t, 1, snapshots, "second press is debounced")
	assert.Same(t, manager, mockBackend.config.InputManager)
	assert.Equal(t, []action.Action{action.EmulatorSnapshot}, mockBackend.handled)
	assert.Equal(t, 3, mockBackend.updateCalls)
}
