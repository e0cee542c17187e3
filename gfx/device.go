// Package gfx adapts the warp and background packages to ebiten.
package gfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vignesh-b/portfolio/warp"
)

// Device runs the warp program as a Kage shader on offscreen images. The
// shader is compiled once and shared by every program the device creates.
type Device struct {
	src     []byte
	compile func([]byte) (*ebiten.Shader, error)

	compiled bool
	shader   *ebiten.Shader
	err      error
}

func NewDevice(src []byte) *Device {
	return &Device{src: src, compile: ebiten.NewShader}
}

func (d *Device) NewSurface(w, h int) (warp.Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, warp.ErrEmptyViewport
	}
	return &Surface{img: ebiten.NewImage(w, h)}, nil
}

// NewProgram returns a program over the shared shader. A compile failure
// is remembered, so every renderer on this device degrades without
// recompiling.
func (d *Device) NewProgram() (warp.Program, error) {
	sh, err := d.loadShader()
	if err != nil {
		return nil, err
	}
	return &program{shader: sh}, nil
}

func (d *Device) loadShader() (*ebiten.Shader, error) {
	if d.compiled {
		return d.shader, d.err
	}
	d.compiled = true
	if len(d.src) == 0 {
		d.err = fmt.Errorf("gfx: empty shader source")
		return nil, d.err
	}
	sh, err := d.compile(d.src)
	if err != nil {
		d.err = fmt.Errorf("gfx: compile warp shader: %w", err)
		return nil, d.err
	}
	d.shader = sh
	return sh, nil
}

// Dispose frees the shared shader. Programs created earlier stop drawing.
func (d *Device) Dispose() {
	if d.shader != nil {
		d.shader.Deallocate()
		d.shader = nil
	}
	d.compiled = true
	d.err = warp.ErrDisposed
}

// Surface is an offscreen ebiten image.
type Surface struct {
	img *ebiten.Image
}

func (s *Surface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Dispose() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}

// Image returns the backing image, or nil once disposed.
func (s *Surface) Image() *ebiten.Image { return s.img }

type program struct {
	shader *ebiten.Shader
}

func (p *program) Render(dst warp.Surface, u warp.Uniforms) error {
	if p.shader == nil {
		return warp.ErrDisposed
	}
	s, ok := dst.(*Surface)
	if !ok {
		return warp.ErrForeignSurface
	}
	if s.img == nil {
		return warp.ErrDisposed
	}
	w, h := s.Size()
	s.img.Clear()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Time":     float32(u.Elapsed),
		"Progress": float32(u.Progress),
	}
	s.img.DrawRectShader(w, h, p.shader, op)
	return nil
}

// Dispose drops the program's reference. The shader belongs to the device.
func (p *program) Dispose() {
	p.shader = nil
}
