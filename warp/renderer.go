// Package warp renders the full-viewport transition overlay: a per-pixel
// swirl, chromatic split and flash driven by a progress scalar.
package warp

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Renderer owns one surface and one program sized to the viewport.
type Renderer struct {
	device  Device
	logger  *log.Logger
	surface Surface
	program Program
	u       Uniforms

	degraded bool
	disposed bool
}

// NewRenderer creates an unconfigured renderer. Nothing is allocated until
// Configure.
func NewRenderer(device Device, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{device: device, logger: logger}
}

// Configure sizes the drawing surface to the viewport, acquiring the
// surface and program on first use. If the drawing context cannot be
// created the renderer degrades: later frames draw nothing.
func (r *Renderer) Configure(w, h int) error {
	if r == nil {
		return nil
	}
	if r.disposed {
		return ErrDisposed
	}
	if w == r.u.Width && h == r.u.Height && (r.surface != nil || r.degraded) {
		return nil
	}
	r.u.Width, r.u.Height = w, h
	if w <= 0 || h <= 0 {
		if r.surface != nil {
			r.surface.Dispose()
			r.surface = nil
		}
		return nil
	}
	if r.device == nil {
		return r.degrade(fmt.Errorf("warp: no drawing device"))
	}
	if err := r.acquire(w, h); err != nil {
		return r.degrade(err)
	}
	r.degraded = false
	return nil
}

// acquire replaces the surface and creates the program if needed. Anything
// acquired before a failure, including a panic, is released before
// returning.
func (r *Renderer) acquire(w, h int) (err error) {
	var surface Surface
	program := r.program
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("warp: acquire drawing context: %v", rec)
		}
		if err == nil {
			return
		}
		if surface != nil {
			surface.Dispose()
		}
		if program != nil && program != r.program {
			program.Dispose()
		}
	}()

	if program == nil {
		program, err = r.device.NewProgram()
		if err != nil {
			return fmt.Errorf("warp: create program: %w", err)
		}
	}
	surface, err = r.device.NewSurface(w, h)
	if err != nil {
		return fmt.Errorf("warp: create surface %dx%d: %w", w, h, err)
	}

	old := r.surface
	r.surface, r.program = surface, program
	if old != nil {
		old.Dispose()
	}
	return nil
}

func (r *Renderer) degrade(err error) error {
	if !r.degraded {
		r.logger.Warn("warp overlay disabled", "err", err)
	}
	r.degraded = true
	return err
}

// SetProgress records the transition progress, clamped to [0,1].
func (r *Renderer) SetProgress(p float64) {
	if r == nil || r.disposed {
		return
	}
	r.u.SetProgress(p)
}

// RenderFrame shades one frame. A degraded renderer draws nothing and
// returns nil.
func (r *Renderer) RenderFrame(elapsedSeconds, progress float64) error {
	if r == nil {
		return nil
	}
	if r.disposed {
		return ErrDisposed
	}
	r.u.Elapsed = elapsedSeconds
	r.u.SetProgress(progress)
	if r.degraded || r.surface == nil || r.program == nil {
		return nil
	}
	if err := r.program.Render(r.surface, r.u); err != nil {
		return r.degrade(fmt.Errorf("warp: render frame: %w", err))
	}
	return nil
}

// Dispose releases the surface and program. It is safe to call more than
// once.
func (r *Renderer) Dispose() {
	if r == nil || r.disposed {
		return
	}
	r.disposed = true
	if r.surface != nil {
		r.surface.Dispose()
		r.surface = nil
	}
	if r.program != nil {
		r.program.Dispose()
		r.program = nil
	}
}

// Progress returns the last progress written.
func (r *Renderer) Progress() float64 {
	if r == nil {
		return 0
	}
	return r.u.Progress
}

// Uniforms returns a copy of the current frame input.
func (r *Renderer) Uniforms() Uniforms {
	if r == nil {
		return Uniforms{}
	}
	return r.u
}

// Surface returns the live surface, or nil when none is allocated.
func (r *Renderer) Surface() Surface {
	if r == nil {
		return nil
	}
	return r.surface
}

func (r *Renderer) Degraded() bool { return r != nil && r.degraded }

func (r *Renderer) Disposed() bool { return r != nil && r.disposed }
