//go:build !statsview

package statsview

import (
	"log/slog"
	"time"
)

// Viewer is a placeholder in builds without the statsview tag
type Viewer struct {
	addr string
}

func New(addr string, refresh time.Duration) *Viewer {
	if addr == "" {
		addr = DefaultAddress
	}
	return &Viewer{addr: addr}
}

// Start only warns that the server is missing
func (v *Viewer) Start() {
	slog.Warn("Stats server not available - build with -tags statsview to enable", "addr", v.addr)
}

func (v *Viewer) Stop() {}

func (v *Viewer) Addr() string {
	return v.addr
}

// Available reports whether the charts server was compiled in.
func Available() bool {
	return false
}
