//go:build statsview

package statsview

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Viewer runs the charts server in the background
type Viewer struct {
	addr    string
	refresh time.Duration
	manager *statsview.ViewManager
}

// New prepares a viewer listening on addr. Nothing is served until Start.
func New(addr string, refresh time.Duration) *Viewer {
	if addr == "" {
		addr = DefaultAddress
	}
	if refresh <= 0 {
		refresh = DefaultRefresh
	}
	return &Viewer{addr: addr, refresh: refresh}
}

// Start launches the server on its own goroutine
func (v *Viewer) Start() {
	// viewer options are package-level in statsview, so they must be set
	// before the manager is built
	viewer.SetConfiguration(
		viewer.WithAddr(v.addr),
		viewer.WithInterval(int(v.refresh/time.Millisecond)),
	)
	v.manager = statsview.New()

	go func() {
		if err := v.manager.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Stats server stopped", "addr", v.addr, "error", err)
		}
	}()

	slog.Info("Stats server started", "url", PageURL(v.addr), "refresh", v.refresh)
}

// Stop shuts the server down. It is safe to call without Start.
func (v *Viewer) Stop() {
	if v.manager == nil {
		return
	}
	v.manager.Stop()
	v.manager = nil
	slog.Info("Stats server stopped", "addr", v.addr)
}

// Addr returns the listen address
func (v *Viewer) Addr() string {
	return v.addr
}

// Available reports whether the charts server was compiled in.
func Available() bool {
	return true
}
