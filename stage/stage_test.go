package stage

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vignesh-b/portfolio/frame"
	"github.com/vignesh-b/portfolio/transition"
	"github.com/vignesh-b/portfolio/warp"
)

func newStage(t *testing.T) (*Stage, *frame.ManualSource, *frame.Scheduler) {
	t.Helper()
	src := frame.NewManualSource(time.Unix(5000, 0))
	sched := frame.NewScheduler(src)
	s := New(sched, &warp.SoftwareDevice{Downsample: 8}, transition.DefaultConfig(), log.New(io.Discard))
	s.Resize(64, 48)
	return s, src, sched
}

func tick(src *frame.ManualSource, sched *frame.Scheduler, frames int) {
	for i := 0; i < frames; i++ {
		src.Advance(16 * time.Millisecond)
		sched.Tick()
	}
}

func surfaceOf(t *testing.T, m *Mount) *warp.SoftwareSurface {
	t.Helper()
	s, ok := m.Renderer().Surface().(*warp.SoftwareSurface)
	if !ok {
		t.Fatalf("expected software surface, got %T", m.Renderer().Surface())
	}
	return s
}

func TestOpenStartsEntry(t *testing.T) {
	s, src, sched := newStage(t)
	var swapped []string
	s.OnSwap = func(r string) { swapped = append(swapped, r) }

	s.Open("/about")
	if s.Route() != "/about" || len(swapped) != 1 {
		t.Fatalf("expected /about mounted, route=%q swaps=%v", s.Route(), swapped)
	}
	if s.Current().Controller().Phase() != transition.Entering {
		t.Fatalf("expected entering, got %v", s.Current().Controller().Phase())
	}
	if s.ContentAlpha() != 0 {
		t.Fatalf("content should start hidden under full warp, got %v", s.ContentAlpha())
	}

	tick(src, sched, 60)

	if s.Current().Controller().Phase() != transition.Idle {
		t.Fatalf("entry should have finished")
	}
	if s.ContentAlpha() != 1 {
		t.Fatalf("content should be opaque after entry, got %v", s.ContentAlpha())
	}
	// Only the render loop remains.
	if sched.Pending() != 1 {
		t.Fatalf("expected the render loop alone, got %d pending", sched.Pending())
	}
	if surfaceOf(t, s.Current()).Frames() < 60 {
		t.Fatalf("render loop should draw every frame")
	}
}

func TestNavigateSwapsAfterExit(t *testing.T) {
	s, src, sched := newStage(t)
	s.Open("/about")
	tick(src, sched, 60)

	old := s.Current()
	if !s.Navigate("/skills") {
		t.Fatalf("navigate should start an exit")
	}
	if s.Route() != "/about" || s.Pending() != "/skills" {
		t.Fatalf("old page stays mounted while exiting, route=%q pending=%q", s.Route(), s.Pending())
	}

	tick(src, sched, 40)

	if s.Route() != "/skills" {
		t.Fatalf("expected /skills after the exit, got %q", s.Route())
	}
	if !old.Renderer().Disposed() {
		t.Fatalf("old renderer should be disposed")
	}
	if s.Current().Controller().Phase() == transition.Exiting {
		t.Fatalf("new mount should not be exiting")
	}
}

func TestNavigateSameRouteIsNoop(t *testing.T) {
	s, src, sched := newStage(t)
	s.Open("/about")
	tick(src, sched, 60)

	if s.Navigate("/about") {
		t.Fatalf("navigating to the mounted route should do nothing")
	}
	if s.Current().Controller().Phase() != transition.Idle {
		t.Fatalf("expected idle, got %v", s.Current().Controller().Phase())
	}
}

func TestRemountDuringExitLeavesNoStaleWriter(t *testing.T) {
	s, src, sched := newStage(t)
	s.Open("/a")
	tick(src, sched, 10)

	a := s.Current()
	aSurface := surfaceOf(t, a)

	s.Navigate("/b")
	tick(src, sched, 3)
	s.Navigate("/c")

	if s.Route() != "/c" {
		t.Fatalf("second navigate should mount at once, got %q", s.Route())
	}
	if !a.Renderer().Disposed() || !aSurface.Disposed() {
		t.Fatalf("abandoned mount should be disposed immediately")
	}

	// Entry controller and render loop of the live mount.
	if sched.Pending() != 2 {
		t.Fatalf("expected only the live mount's callbacks, got %d", sched.Pending())
	}

	tick(src, sched, 120)

	if n := aSurface.WritesAfterDispose(); n != 0 {
		t.Fatalf("disposed surface was written %d times", n)
	}
	if sched.Pending() != 1 {
		t.Fatalf("expected the live render loop alone, got %d", sched.Pending())
	}
	if s.Route() != "/c" {
		t.Fatalf("abandoned exit must not swap later, route=%q", s.Route())
	}
}

func TestResizeReconfiguresLiveMount(t *testing.T) {
	s, src, sched := newStage(t)
	s.Open("/about")
	s.Resize(128, 96)
	tick(src, sched, 1)

	u := s.Renderer().Uniforms()
	if u.Width != 128 || u.Height != 96 {
		t.Fatalf("expected 128x96, got %dx%d", u.Width, u.Height)
	}
	w, h := s.Renderer().Surface().Size()
	if w != 128 || h != 96 {
		t.Fatalf("expected reallocated surface, got %dx%d", w, h)
	}
}

func TestCloseCancelsEverything(t *testing.T) {
	s, src, sched := newStage(t)
	s.Open("/about")
	s.Navigate("/cp")
	s.Close()

	if sched.Pending() != 0 {
		t.Fatalf("close left %d callbacks", sched.Pending())
	}
	tick(src, sched, 50)
	if s.Route() != "" {
		t.Fatalf("closed stage should be empty, got %q", s.Route())
	}
}

type recordingSurface struct{ w, h int }

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }
func (s *recordingSurface) Dispose()         {}

type recordingProgram struct{ drawn []float64 }

func (p *recordingProgram) Render(_ warp.Surface, u warp.Uniforms) error {
	p.drawn = append(p.drawn, u.Progress)
	return nil
}

func (p *recordingProgram) Dispose() {}

// recordingDevice keeps one program per mount, in mount order.
type recordingDevice struct{ programs []*recordingProgram }

func (d *recordingDevice) NewSurface(w, h int) (warp.Surface, error) {
	return &recordingSurface{w: w, h: h}, nil
}

func (d *recordingDevice) NewProgram() (warp.Program, error) {
	p := &recordingProgram{}
	d.programs = append(d.programs, p)
	return p, nil
}

func TestEveryDrawSeesThatFramesProgress(t *testing.T) {
	src := frame.NewManualSource(time.Unix(5000, 0))
	sched := frame.NewScheduler(src)
	dev := &recordingDevice{}
	s := New(sched, dev, transition.DefaultConfig(), log.New(io.Discard))
	s.Resize(64, 48)

	step := func(phase string, m *Mount, p *recordingProgram) {
		t.Helper()
		before := len(p.drawn)
		src.Advance(16 * time.Millisecond)
		sched.Tick()
		if len(p.drawn) != before+1 {
			t.Fatalf("%s: expected one draw this frame, got %d", phase, len(p.drawn)-before)
		}
		if got, want := p.drawn[len(p.drawn)-1], m.Controller().Progress(); got != want {
			t.Fatalf("%s: drew progress %v, controller wrote %v", phase, got, want)
		}
	}

	s.Open("/about")
	first := s.Current()
	for i := 0; i < 50; i++ {
		step("entry", first, dev.programs[0])
	}
	if first.Controller().Phase() != transition.Idle {
		t.Fatalf("entry should have finished, phase %v", first.Controller().Phase())
	}
	for i := 0; i < 5; i++ {
		step("idle", first, dev.programs[0])
	}

	if !s.Navigate("/skills") {
		t.Fatalf("navigate should start an exit")
	}
	for s.Current() == first {
		step("exit", first, dev.programs[0])
		if len(dev.programs[0].drawn) > 200 {
			t.Fatalf("exit never finished")
		}
	}
	if got := dev.programs[0].drawn[len(dev.programs[0].drawn)-1]; got != 1 {
		t.Fatalf("last frame before the swap drew %v, want full warp", got)
	}

	second := s.Current()
	if len(dev.programs) != 2 {
		t.Fatalf("expected a program for the new mount, got %d", len(dev.programs))
	}
	for i := 0; i < 50; i++ {
		step("entry after swap", second, dev.programs[1])
	}
}
