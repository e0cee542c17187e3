// Package background paints the decorative animated layer behind the pages.
package background

import (
	"image/color"
	"time"

	"github.com/vignesh-b/portfolio/frame"
)

// Point is a canvas coordinate in pixels.
type Point struct {
	X, Y float32
}

// Canvas is the painter an Animator draws with.
type Canvas interface {
	Fill(c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, c color.Color)
	// StrokePolyline strokes connected segments as one translucent shape.
	StrokePolyline(pts []Point, width float32, c color.Color)
}

// Animator is one background style.
type Animator interface {
	Resize(w, h int)
	SetPalette(p Palette)
	Step(dt float64)
	Paint(dst Canvas)
}

// MaxStep bounds the dt passed to Step after a stall.
const MaxStep = 100 * time.Millisecond

// Runner steps an Animator once per frame from the shared scheduler.
type Runner struct {
	sched  *frame.Scheduler
	anim   Animator
	handle frame.Handle
	last   time.Time
}

func NewRunner(sched *frame.Scheduler, anim Animator) *Runner {
	return &Runner{sched: sched, anim: anim}
}

// Start requests the first frame. It does nothing if already running.
func (r *Runner) Start() {
	if r == nil || r.anim == nil || r.handle != 0 {
		return
	}
	r.last = time.Time{}
	r.handle = r.sched.Request(r.frame)
}

// Stop cancels the pending frame.
func (r *Runner) Stop() {
	if r == nil || r.handle == 0 {
		return
	}
	r.sched.Cancel(r.handle)
	r.handle = 0
}

func (r *Runner) Running() bool { return r != nil && r.handle != 0 }

func (r *Runner) Animator() Animator {
	if r == nil {
		return nil
	}
	return r.anim
}

func (r *Runner) frame(now time.Time) {
	r.handle = 0
	var dt time.Duration
	if !r.last.IsZero() {
		dt = now.Sub(r.last)
	}
	if dt > MaxStep {
		dt = MaxStep
	}
	r.last = now
	r.anim.Step(dt.Seconds())
	r.handle = r.sched.Request(r.frame)
}

// Kind names a background style in config.
type Kind string

const (
	KindParticles Kind = "particles"
	KindWaves     Kind = "waves"
	KindBlobs     Kind = "blobs"
)

// New builds the animator for kind. Unknown kinds fall back to particles.
func New(kind Kind, seed int64) Animator {
	switch kind {
	case KindWaves:
		return NewWaveField()
	case KindBlobs:
		return NewBlobField(seed)
	default:
		return NewParticleField(seed)
	}
}
