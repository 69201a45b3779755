package headless_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-tileblit/tileblit/backend"
	"github.com/valerio/go-tileblit/tileblit/backend/headless"
	"github.com/valerio/go-tileblit/tileblit/debug"
	"github.com/valerio/go-tileblit/tileblit/input/action"
	"github.com/valerio/go-tileblit/tileblit/input/event"
	"github.com/valerio/go-tileblit/tileblit/video"
)

type fixedStats struct{}

func (fixedStats) ExtractStats() *debug.Stats {
	return &debug.Stats{FPS: 20, Mode: "image"}
}

func TestHeadlessBackend(t *testing.T) {
	t.Run("normal operation", func(t *testing.T) {
		// Create headless backend for 3 frames
		h := headless.New(3, headless.SnapshotConfig{})

		err := h.Init(backend.BackendConfig{Title: "Test", StatsProvider: fixedStats{}})
		assert.NoError(t, err)

		frame := video.NewFrameBuffer(8, 8)

		for i := 0; i < 3; i++ {
			events, err := h.Update(frame)
			assert.NoError(t, err)

			if i < 2 {
				// Should not quit before reaching max frames
				assert.Empty(t, events)
			} else {
				// Should send quit event on last frame
				assert.Len(t, events, 1)
				assert.Equal(t, action.EmulatorQuit, events[0].Action)
				assert.Equal(t, event.Press, events[0].Type)
			}
		}
		assert.Equal(t, 3, h.FrameCount())

		err = h.Cleanup()
		assert.NoError(t, err)
	})

	t.Run("zero frames rejected", func(t *testing.T) {
		h := headless.New(0, headless.SnapshotConfig{})
		assert.Error(t, h.Init(backend.BackendConfig{Title: "Test"}))
	})
}

func TestHeadlessSnapshots(t *testing.T) {
	dir := t.TempDir()
	config, err := headless.CreateSnapshotConfig(2, dir, "grid")
	require.NoError(t, err)
	assert.True(t, config.Enabled)
	assert.Equal(t, dir, config.Directory)

	h := headless.New(5, config)
	require.NoError(t, h.Init(backend.BackendConfig{Title: "Test"}))

	frame := video.NewFrameBuffer(4, 4)
	frame.Clear(video.WhiteColor)
	for i := 0; i < 5; i++ {
		_, err := h.Update(frame)
		require.NoError(t, err)
	}

	// frames 2 and 4, plus the final frame 5
	require.Len(t, h.Snapshots(), 3)
	for _, path := range h.Snapshots() {
		_, err := os.Stat(path)
		assert.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(path))
	}
}

func TestCreateSnapshotConfig(t *testing.T) {
	config, err := headless.CreateSnapshotConfig(0, "", "grid")
	require.NoError(t, err)
	assert.False(t, config.Enabled)
	assert.Empty(t, config.Directory)

	nested := filepath.Join(t.TempDir(), "a", "b")
	config, err = headless.CreateSnapshotConfig(10, nested, "grid")
	require.NoError(t, err)
	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, "grid", config.BaseName)
}

func TestHeadlessImplementsBackend(t *testing.T) {
	// Compile-time check that headless.Backend implements backend.Backend
	var _ backend.Backend = (*headless.Backend)(nil)
}

func TestHeadlessProgressLoggedAtInfo(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var out bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo})))

	h := headless.New(20, headless.SnapshotConfig{})
	require.NoError(t, h.Init(backend.BackendConfig{Title: "Test", StatsProvider: fixedStats{}}))

	frame := video.NewFrameBuffer(2, 2)
	for i := 0; i < 10; i++ {
		_, err := h.Update(frame)
		require.NoError(t, err)
	}

	logs := out.String()
	assert.Contains(t, logs, "level=INFO msg=\"Frame progress\" completed=10 total=20")
	assert.Contains(t, logs, "fps=20.0 mode=image")
}
