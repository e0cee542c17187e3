package warp

import "errors"

var (
	ErrDisposed       = errors.New("warp: renderer disposed")
	ErrForeignSurface = errors.New("warp: surface belongs to another device")
	ErrEmptyViewport  = errors.New("warp: empty viewport")
)

// Surface is a drawing target owned by exactly one renderer.
type Surface interface {
	Size() (w, h int)
	Dispose()
}

// Program evaluates the warp function into a surface.
type Program interface {
	Render(dst Surface, u Uniforms) error
	Dispose()
}

// Device creates drawing resources. Creation fails when the environment
// cannot provide a drawing context.
type Device interface {
	NewSurface(w, h int) (Surface, error)
	NewProgram() (Program, error)
}
