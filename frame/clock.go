// Package frame supplies time samples and one-shot frame callbacks to
// everything that animates.
package frame

import (
	"sync"
	"time"
)

// Source supplies time samples.
type Source interface {
	Now() time.Time
}

// SystemSource reads the wall clock.
type SystemSource struct{}

func (SystemSource) Now() time.Time { return time.Now() }

// ManualSource is a Source moved by hand. It is used by tests and by tools
// that render frames offline.
type ManualSource struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualSource starts a manual source at start.
func NewManualSource(start time.Time) *ManualSource {
	return &ManualSource{now: start}
}

func (m *ManualSource) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the source to t.
func (m *ManualSource) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the source forward by d.
func (m *ManualSource) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Clock tracks elapsed time for one mount of an animated component.
type Clock struct {
	start   time.Time
	current time.Time
	delta   time.Duration
}

// Reset restarts the clock at now.
func (c *Clock) Reset(now time.Time) {
	c.start = now
	c.current = now
	c.delta = 0
}

// Advance moves the clock to now and returns the elapsed time since Reset.
// Samples earlier than the current one are ignored.
func (c *Clock) Advance(now time.Time) time.Duration {
	if c.start.IsZero() {
		c.Reset(now)
	}
	if now.After(c.current) {
		c.delta = now.Sub(c.current)
		c.current = now
	} else {
		c.delta = 0
	}
	return c.current.Sub(c.start)
}

// Elapsed returns the time between Reset and the latest sample.
func (c *Clock) Elapsed() time.Duration {
	return c.current.Sub(c.start)
}

// Delta returns the step taken by the latest Advance.
func (c *Clock) Delta() time.Duration {
	return c.delta
}
