package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/vignesh-b/portfolio/background"
)

// Canvas paints background animators onto an ebiten image.
type Canvas struct {
	dst     *ebiten.Image
	scratch *ebiten.Image
}

// Target sets the image painted by the next calls.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *Canvas) FillCircle(cx, cy, r float32, clr color.Color) {
	vector.FillCircle(c.dst, cx, cy, r, clr, true)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(c.dst, x0, y0, x1, y1, width, clr, true)
}

// StrokePolyline draws the path opaque on a scratch layer and composites it
// once, so overlapping joints do not stack alpha.
func (c *Canvas) StrokePolyline(pts []background.Point, width float32, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	layer := c.layer()
	layer.Clear()

	r, g, b, a := clr.RGBA()
	if a == 0 {
		return
	}
	opaque := color.NRGBA{
		R: uint8((r * 0xffff / a) >> 8),
		G: uint8((g * 0xffff / a) >> 8),
		B: uint8((b * 0xffff / a) >> 8),
		A: 0xff,
	}
	for i := 1; i < len(pts); i++ {
		p, q := pts[i-1], pts[i]
		vector.StrokeLine(layer, p.X, p.Y, q.X, q.Y, width, opaque, true)
		vector.FillCircle(layer, q.X, q.Y, width/2, opaque, true)
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(a) / 0xffff)
	c.dst.DrawImage(layer, op)
}

func (c *Canvas) layer() *ebiten.Image {
	b := c.dst.Bounds()
	if c.scratch == nil || c.scratch.Bounds().Dx() != b.Dx() || c.scratch.Bounds().Dy() != b.Dy() {
		if c.scratch != nil {
			c.scratch.Deallocate()
		}
		c.scratch = ebiten.NewImage(b.Dx(), b.Dy())
	}
	return c.scratch
}

var _ background.Canvas = (*Canvas)(nil)
