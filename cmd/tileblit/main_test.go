package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) error {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
	return newApp().Run(append([]string{"tileblit"}, args...))
}

func TestHeadlessShowcase(t *testing.T) {
	dir := t.TempDir()
	err := runArgs(t,
		"--backend", "headless",
		"--frames", "4",
		"--tiles-x", "4",
		"--tiles-y", "3",
		"--mode", "fill",
		"--snapshot-interval", "2",
		"--snapshot-dir", dir,
	)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "tileblit_showcase_*.png"))
	require.NoError(t, err)
	assert.NotEmpty(t, matches)
}

func TestHeadlessStress(t *testing.T) {
	err := runArgs(t,
		"--backend", "headless",
		"--scene", "stress",
		"--frames", "3",
		"--stress-count", "10",
	)
	assert.NoError(t, err)
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"headless without frames", []string{"--backend", "headless"}},
		{"unknown backend", []string{"--backend", "vga", "--frames", "1"}},
		{"unknown scene", []string{"--backend", "headless", "--frames", "1", "--scene", "maze"}},
		{"unknown mode", []string{"--backend", "headless", "--frames", "1", "--mode", "stipple"}},
		{"unknown limiter", []string{"--backend", "headless", "--frames", "1", "--limiter", "vsync"}},
		{"bad fps", []string{"--backend", "headless", "--frames", "1", "--limiter", "delay", "--fps", "0"}},
		{"bad grid", []string{"--backend", "headless", "--frames", "1", "--tiles-x", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, runArgs(t, tt.args...))
		})
	}
}

func TestMain(m *testing.M) {
	// keep snapshot files out of the package directory
	dir, err := os.MkdirTemp("", "tileblit-cmd-test-*")
	if err != nil {
		panic(err)
	}
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestHeadlessWithStatsview(t *testing.T) {
	err := runArgs(t,
		"--backend", "headless",
		"--frames", "2",
		"--tiles-x", "2",
		"--tiles-y", "2",
		"--statsview",
		"--statsview-addr", "localhost:0",
	)
	assert.NoError(t, err)
}
