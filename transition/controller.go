// Package transition drives the warp progress scalar through page entry and
// exit animations.
package transition

import (
	"time"

	"github.com/vignesh-b/portfolio/common"
	"github.com/vignesh-b/portfolio/frame"
)

// Phase is the controller's lifecycle state.
type Phase int

const (
	Idle Phase = iota
	Entering
	Exiting
	TornDown
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Entering:
		return "entering"
	case Exiting:
		return "exiting"
	case TornDown:
		return "torn_down"
	default:
		return "unknown"
	}
}

// Config holds the animation durations. Exit also drives the content fade.
type Config struct {
	Entry time.Duration `yaml:"entry"`
	Exit  time.Duration `yaml:"exit"`
}

func DefaultConfig() Config {
	return Config{Entry: 700 * time.Millisecond, Exit: 500 * time.Millisecond}
}

// Sink receives the progress value every animation frame.
type Sink interface {
	SetProgress(p float64)
}

// Controller animates progress 1 -> 0 on entry and 0 -> 1 on exit. Progress
// is derived from wall-clock time, never from frame counts.
type Controller struct {
	sched *frame.Scheduler
	sink  Sink
	cfg   Config

	phase    Phase
	progress float64
	exitT    float64
	start    time.Time
	handle   frame.Handle
	done     func()
}

// New creates an idle controller. Zero durations in cfg are replaced by the
// defaults.
func New(sched *frame.Scheduler, sink Sink, cfg Config) *Controller {
	def := DefaultConfig()
	if cfg.Entry <= 0 {
		cfg.Entry = def.Entry
	}
	if cfg.Exit <= 0 {
		cfg.Exit = def.Exit
	}
	return &Controller{sched: sched, sink: sink, cfg: cfg}
}

// Enter starts the entry animation from full warp. A pending exit is
// cancelled and its completion callback never fires.
func (c *Controller) Enter() {
	if c == nil || c.phase == TornDown {
		return
	}
	c.cancel()
	c.done = nil
	c.phase = Entering
	c.exitT = 0
	c.write(1)
	c.start = c.sched.Now()
	c.handle = c.sched.Request(c.enterFrame)
}

// Exit starts the exit animation and calls done once it reaches full warp.
// It cancels an in-flight entry. It returns false if an exit is already
// running or the controller is torn down.
func (c *Controller) Exit(done func()) bool {
	if c == nil || c.phase == TornDown || c.phase == Exiting {
		return false
	}
	c.cancel()
	c.phase = Exiting
	c.exitT = 0
	c.done = done
	c.write(0)
	c.start = c.sched.Now()
	c.handle = c.sched.Request(c.exitFrame)
	return true
}

// Teardown cancels any pending frame. Every later call is ignored.
func (c *Controller) Teardown() {
	if c == nil || c.phase == TornDown {
		return
	}
	c.cancel()
	c.done = nil
	c.phase = TornDown
}

func (c *Controller) enterFrame(now time.Time) {
	c.handle = 0
	t := c.fraction(now, c.cfg.Entry)
	if t >= 1 {
		c.write(0)
		c.phase = Idle
		return
	}
	c.write(1 - EaseOutCubic(t))
	c.handle = c.sched.Request(c.enterFrame)
}

func (c *Controller) exitFrame(now time.Time) {
	c.handle = 0
	t := c.fraction(now, c.cfg.Exit)
	c.exitT = t
	if t >= 1 {
		c.write(1)
		done := c.done
		c.done = nil
		if done != nil {
			done()
		}
		return
	}
	c.write(EaseInCubic(t))
	c.handle = c.sched.Request(c.exitFrame)
}

func (c *Controller) fraction(now time.Time, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return common.Clamp01(float64(now.Sub(c.start)) / float64(d))
}

func (c *Controller) write(p float64) {
	c.progress = p
	if c.sink != nil {
		c.sink.SetProgress(p)
	}
}

func (c *Controller) cancel() {
	if c.handle != 0 {
		c.sched.Cancel(c.handle)
		c.handle = 0
	}
}

func (c *Controller) Phase() Phase {
	if c == nil {
		return Idle
	}
	return c.phase
}

// Progress returns the last value written to the sink.
func (c *Controller) Progress() float64 {
	if c == nil {
		return 0
	}
	return c.progress
}

// Animating reports whether a frame callback is pending.
func (c *Controller) Animating() bool {
	return c != nil && c.handle != 0
}

// Config returns the effective durations.
func (c *Controller) Config() Config {
	if c == nil {
		return DefaultConfig()
	}
	return c.cfg
}

// ContentAlpha is the opacity for page content while the overlay animates.
// Content fades out over the exit and back in as the entry warp clears.
func (c *Controller) ContentAlpha() float64 {
	if c == nil {
		return 1
	}
	switch c.phase {
	case Exiting:
		return 1 - c.exitT
	case Entering:
		return common.Clamp01(1 - c.progress)
	default:
		return 1
	}
}
