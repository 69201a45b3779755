// Package statsview serves live charts of the Go runtime (heap, GC pauses,
// goroutines) next to the demo, so allocation behaviour of the image and
// fill paint modes can be watched while the FPS readout runs.
//
// The server is only compiled in with the statsview build tag. Other
// builds get a Viewer whose Start logs a warning and does nothing, so
// callers never need their own build constraints.
//
// With the default address the charts are at
//
//	http://localhost:12600/debug/statsview
//
// and the standard pprof handlers at /debug/pprof/ on the same server.
package statsview
