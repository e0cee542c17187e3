// Package stage mounts one page at a time behind the warp overlay and
// coordinates the exit/entry animations when navigating between pages.
package stage

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vignesh-b/portfolio/frame"
	"github.com/vignesh-b/portfolio/transition"
	"github.com/vignesh-b/portfolio/warp"
)

// Mount is one page's lifetime on the stage. It owns a renderer, a
// transition controller and the render loop callback.
type Mount struct {
	Route string

	clock    frame.Clock
	renderer *warp.Renderer
	ctrl     *transition.Controller
	loop     frame.Handle
	sched    *frame.Scheduler
	logger   *log.Logger
	closed   bool
}

func (m *Mount) Renderer() *warp.Renderer           { return m.renderer }
func (m *Mount) Controller() *transition.Controller { return m.ctrl }

// Elapsed returns the time since the mount started animating.
func (m *Mount) Elapsed() time.Duration { return m.clock.Elapsed() }

// render redraws the overlay every frame, whatever the progress.
func (m *Mount) render(now time.Time) {
	m.loop = 0
	if !m.draw(now) {
		return
	}
	m.loop = m.sched.Request(m.render)
}

// draw renders one frame at the renderer's current progress. It reports
// whether the mount can keep drawing.
func (m *Mount) draw(now time.Time) bool {
	if m.closed {
		return false
	}
	elapsed := m.clock.Advance(now)
	if err := m.renderer.RenderFrame(elapsed.Seconds(), m.renderer.Progress()); err != nil {
		if errors.Is(err, warp.ErrDisposed) {
			return false
		}
		m.logger.Debug("render frame", "route", m.Route, "err", err)
	}
	return true
}

// requeue moves the render loop behind every callback queued so far, so a
// controller frame requested after mount still runs before the draw.
func (m *Mount) requeue() {
	if m.closed {
		return
	}
	if m.loop != 0 {
		m.sched.Cancel(m.loop)
	}
	m.loop = m.sched.Request(m.render)
}

// close cancels the loop, then tears down the controller, then disposes
// the renderer.
func (m *Mount) close() {
	if m == nil || m.closed {
		return
	}
	m.closed = true
	if m.loop != 0 {
		m.sched.Cancel(m.loop)
		m.loop = 0
	}
	m.ctrl.Teardown()
	m.renderer.Dispose()
}

// Stage holds the current mount and the viewport it is sized to.
type Stage struct {
	sched  *frame.Scheduler
	device warp.Device
	cfg    transition.Config
	logger *log.Logger

	w, h    int
	current *Mount
	pending string
	exiting bool

	// OnSwap is called after a new route is mounted.
	OnSwap func(route string)
}

// New creates an empty stage. A nil logger uses log.Default().
func New(sched *frame.Scheduler, device warp.Device, cfg transition.Config, logger *log.Logger) *Stage {
	if logger == nil {
		logger = log.Default()
	}
	if sched == nil {
		sched = frame.NewScheduler(nil)
	}
	return &Stage{sched: sched, device: device, cfg: cfg, logger: logger}
}

// Resize reconfigures the live mount's renderer.
func (s *Stage) Resize(w, h int) {
	if s == nil || (w == s.w && h == s.h) {
		return
	}
	s.w, s.h = w, h
	if s.current != nil {
		if err := s.current.renderer.Configure(w, h); err != nil {
			s.logger.Debug("resize overlay", "w", w, "h", h, "err", err)
		}
	}
}

// Open mounts route immediately, replacing whatever is on the stage.
func (s *Stage) Open(route string) {
	if s == nil {
		return
	}
	s.swap(route)
}

// Navigate moves to route. An idle or entering page plays its exit first.
// Navigating again while an exit is pending abandons that exit and mounts
// the new route at once. It reports whether anything changed.
func (s *Stage) Navigate(route string) bool {
	if s == nil {
		return false
	}
	if s.current == nil {
		s.swap(route)
		return true
	}
	if s.exiting {
		s.swap(route)
		return true
	}
	if route == s.current.Route {
		return false
	}
	s.pending = route
	cur := s.current
	s.exiting = cur.ctrl.Exit(func() {
		// The exit's last write is full warp; show it before unmounting.
		cur.draw(s.sched.Now())
		s.swap(s.pending)
	})
	if !s.exiting {
		s.swap(route)
		return true
	}
	cur.requeue()
	return true
}

func (s *Stage) swap(route string) {
	s.exiting = false
	s.pending = ""
	if s.current != nil {
		s.current.close()
		s.current = nil
	}
	s.current = s.mount(route)
	if s.OnSwap != nil {
		s.OnSwap(route)
	}
}

func (s *Stage) mount(route string) *Mount {
	r := warp.NewRenderer(s.device, s.logger)
	m := &Mount{
		Route:    route,
		renderer: r,
		ctrl:     transition.New(s.sched, r, s.cfg),
		sched:    s.sched,
		logger:   s.logger,
	}
	if err := r.Configure(s.w, s.h); err != nil {
		s.logger.Debug("configure overlay", "route", route, "err", err)
	}
	m.clock.Reset(s.sched.Now())
	// Controller first so progress is updated before the draw each frame.
	m.ctrl.Enter()
	m.loop = s.sched.Request(m.render)
	s.logger.Debug("mounted", "route", route)
	return m
}

// Route returns the mounted route, or "" before the first Open.
func (s *Stage) Route() string {
	if s == nil || s.current == nil {
		return ""
	}
	return s.current.Route
}

// Pending returns the route waiting for the current exit to finish.
func (s *Stage) Pending() string {
	if s == nil || !s.exiting {
		return ""
	}
	return s.pending
}

func (s *Stage) Current() *Mount {
	if s == nil {
		return nil
	}
	return s.current
}

// Renderer returns the live mount's renderer.
func (s *Stage) Renderer() *warp.Renderer {
	if s == nil || s.current == nil {
		return nil
	}
	return s.current.renderer
}

// ContentAlpha is the opacity the shell applies to page content.
func (s *Stage) ContentAlpha() float64 {
	if s == nil || s.current == nil {
		return 1
	}
	return s.current.ctrl.ContentAlpha()
}

// Close tears down the current mount.
func (s *Stage) Close() {
	if s == nil || s.current == nil {
		return
	}
	s.current.close()
	s.current = nil
	s.exiting = false
	s.pending = ""
}
