package warp

import (
	"image"
	"image/color"
	"sync/atomic"
)

// SoftwareDevice shades on the CPU into an *image.NRGBA. It backs headless
// frame rendering and tests.
type SoftwareDevice struct {
	// Downsample shades one pixel per Downsample x Downsample block.
	Downsample int
}

func (d *SoftwareDevice) NewSurface(w, h int) (Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyViewport
	}
	return &SoftwareSurface{img: image.NewNRGBA(image.Rect(0, 0, w, h))}, nil
}

func (d *SoftwareDevice) NewProgram() (Program, error) {
	step := 1
	if d != nil && d.Downsample > 1 {
		step = d.Downsample
	}
	return &softwareProgram{step: step}, nil
}

// SoftwareSurface is a CPU drawing target.
type SoftwareSurface struct {
	img      *image.NRGBA
	disposed atomic.Bool
	frames   atomic.Int64
	leaked   atomic.Int64
}

func (s *SoftwareSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *SoftwareSurface) Dispose() {
	s.disposed.Store(true)
}

// Image returns the shaded pixels.
func (s *SoftwareSurface) Image() *image.NRGBA {
	return s.img
}

// Disposed reports whether Dispose has run.
func (s *SoftwareSurface) Disposed() bool {
	return s.disposed.Load()
}

// Frames returns the number of frames rendered into the surface.
func (s *SoftwareSurface) Frames() int64 {
	return s.frames.Load()
}

// WritesAfterDispose counts render attempts made after Dispose.
func (s *SoftwareSurface) WritesAfterDispose() int64 {
	return s.leaked.Load()
}

type softwareProgram struct {
	step     int
	disposed bool
}

func (p *softwareProgram) Render(dst Surface, u Uniforms) error {
	if p.disposed {
		return ErrDisposed
	}
	s, ok := dst.(*SoftwareSurface)
	if !ok {
		return ErrForeignSurface
	}
	if s.Disposed() {
		s.leaked.Add(1)
		return ErrDisposed
	}

	w, h := s.Size()
	for y := 0; y < h; y += p.step {
		for x := 0; x < w; x += p.step {
			// Sample the block centre; v grows downward like the GPU path.
			px := Shade(u, (float64(x)+0.5*float64(p.step))/float64(w), (float64(y)+0.5*float64(p.step))/float64(h))
			c := toNRGBA(px)
			for by := y; by < y+p.step && by < h; by++ {
				for bx := x; bx < x+p.step && bx < w; bx++ {
					s.img.SetNRGBA(bx, by, c)
				}
			}
		}
	}
	s.frames.Add(1)
	return nil
}

func (p *softwareProgram) Dispose() {
	p.disposed = true
}

func toNRGBA(px Pixel) color.NRGBA {
	return color.NRGBA{
		R: uint8(px.R*255 + 0.5),
		G: uint8(px.G*255 + 0.5),
		B: uint8(px.B*255 + 0.5),
		A: uint8(px.A*255 + 0.5),
	}
}
