package statsview

import "time"

const (
	// DefaultAddress is where the viewer listens unless told otherwise
	DefaultAddress = "localhost:12600"
	// DefaultRefresh is how often the charts poll the runtime
	DefaultRefresh = 2 * time.Second

	chartsPath = "/debug/statsview"
)

// PageURL returns the charts page served for a listen address. A bare
// ":port" address is shown as localhost.
func PageURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		addr = "localhost" + addr
	}
	return "http://" + addr + chartsPath
}
