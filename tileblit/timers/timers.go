// Package timers keeps rolling duration samples for named timers.
//
// Every timer owns a fixed-capacity ring of samples in milliseconds. Once
// the ring is full new samples overwrite the oldest one, so memory stays
// bounded no matter how long the frame loop runs:
//
//	reg := timers.New(timers.WithTimers("FPS"))
//	for {
//		reg.Update("FPS")
//		fps := reg.Rate("FPS", 20)
//		...
//	}
//
// Unknown timer names never panic. Mutators return ErrUnknownTimer and do
// nothing, queries return zero values, so a frame loop can ignore errors.
package timers

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// MaxSize is the default number of samples kept per timer.
const MaxSize = 1000

// ErrUnknownTimer is returned by mutators called with an unregistered name.
var ErrUnknownTimer = errors.New("unknown timer")

// Registry owns a set of named timers sharing one clock.
type Registry struct {
	mutex     sync.RWMutex
	timers    map[string]*timer
	clock     Clock
	msPerTick float64
	capacity  int
	initial   []string
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the clock and the duration of one clock tick.
func WithClock(c Clock, unit time.Duration) Option {
	return func(r *Registry) {
		r.clock = c
		r.msPerTick = float64(unit) / float64(time.Millisecond)
	}
}

// WithCapacity overrides MaxSize. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// WithTimers registers the given names at construction.
func WithTimers(names ...string) Option {
	return func(r *Registry) {
		r.initial = append(r.initial, names...)
	}
}

// New creates a registry. Without WithClock it reads a monotonic clock in
// nanoseconds.
func New(opts ...Option) *Registry {
	r := &Registry{
		timers:    make(map[string]*timer),
		clock:     NewMonotonicClock(),
		msPerTick: float64(time.Nanosecond) / float64(time.Millisecond),
		capacity:  MaxSize,
	}
	for _, opt := range opts {
		opt(r)
	}

	// rings are sized after every option has been applied
	for _, name := range r.initial {
		r.register(name)
	}
	r.initial = nil

	return r
}

// Capacity returns the number of samples each timer keeps.
func (r *Registry) Capacity() int {
	return r.capacity
}

// Register adds a timer. It returns false, leaving the existing timer and
// its samples untouched, when the name is already registered.
func (r *Registry) Register(name string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.register(name)
}

func (r *Registry) register(name string) bool {
	if _, exists := r.timers[name]; exists {
		slog.Debug("Timer already registered", "timer", name)
		return false
	}
	r.timers[name] = newTimer(r.capacity)
	return true
}

// Names returns the registered timer names in sorted order.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.timers))
	for name := range r.timers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start discards any pending interval and arms a fresh mark. No sample is
// recorded.
func (r *Registry) Start(name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	t, err := r.lookup(name)
	if err != nil {
		return err
	}
	t.marked = false
	r.update(t)
	return nil
}

// Update records the time elapsed since the previous mark, then re-arms
// the mark. The first call after Start or Register only arms the mark.
func (r *Registry) Update(name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	t, err := r.lookup(name)
	if err != nil {
		return err
	}
	r.update(t)
	return nil
}

// Stop is Update under the name that reads better after Start.
func (r *Registry) Stop(name string) error {
	return r.Update(name)
}

// Reset drops every sample of a timer and unsets its mark.
func (r *Registry) Reset(name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	t, err := r.lookup(name)
	if err != nil {
		return err
	}
	t.samples.clear()
	t.marked = false
	return nil
}

func (r *Registry) update(t *timer) {
	now := r.clock.Now()
	if t.marked {
		t.samples.add(float64(now-t.mark) * r.msPerTick)
	}
	t.mark = now
	t.marked = true
}

// Valid reports whether the timer exists and holds at least one sample.
func (r *Registry) Valid(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	t, ok := r.timers[name]
	return ok && t.samples.len() > 0
}

// Count returns how many samples the timer holds.
func (r *Registry) Count(name string) int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if t, ok := r.timers[name]; ok {
		return t.samples.len()
	}
	return 0
}

// Last returns the most recent sample in milliseconds, or 0.
func (r *Registry) Last(name string) float64 {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if t, ok := r.timers[name]; ok {
		return t.samples.last()
	}
	return 0
}

// Mean returns the mean of all held samples in milliseconds, or 0.
func (r *Registry) Mean(name string) float64 {
	return r.WindowMean(name, 0)
}

// WindowMean returns the mean of the most recent n samples. When n < 1 or
// n exceeds the sample count all samples are used. Empty timers yield 0.
func (r *Registry) WindowMean(name string, n int) float64 {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	t, ok := r.timers[name]
	if !ok {
		return 0
	}
	return t.samples.mean(n)
}

// Window returns a copy of the most recent n samples, oldest first. n < 1
// returns every held sample.
func (r *Registry) Window(name string, n int) []float64 {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	t, ok := r.timers[name]
	if !ok {
		return nil
	}
	return t.samples.window(n)
}

// Rate converts the windowed mean interval into events per second.
func (r *Registry) Rate(name string, n int) float64 {
	mean := r.WindowMean(name, n)
	if mean <= 0 {
		return 0
	}
	return 1000 / mean
}

func (r *Registry) lookup(name string) (*timer, error) {
	t, ok := r.timers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimer, name)
	}
	return t, nil
}

type timer struct {
	samples *ring
	mark    int64
	marked  bool
}

func newTimer(capacity int) *timer {
	return &timer{samples: newRing(capacity)}
}
