package gfx

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vignesh-b/portfolio/warp"
)

// Compositor draws a warp surface over the screen. Software surfaces are
// uploaded through a cached image.
type Compositor struct {
	upload *ebiten.Image
	pixels []byte
}

// Draw stretches s over dst. Nil or disposed surfaces draw nothing.
func (c *Compositor) Draw(dst *ebiten.Image, s warp.Surface) {
	if s == nil {
		return
	}
	switch surf := s.(type) {
	case *Surface:
		if surf.img != nil {
			drawStretched(dst, surf.img)
		}
	case *warp.SoftwareSurface:
		if surf.Disposed() {
			return
		}
		drawStretched(dst, c.uploadSoftware(surf.Image()))
	}
}

func (c *Compositor) uploadSoftware(src *image.NRGBA) *ebiten.Image {
	b := src.Bounds()
	if c.upload == nil || c.upload.Bounds().Dx() != b.Dx() || c.upload.Bounds().Dy() != b.Dy() {
		if c.upload != nil {
			c.upload.Deallocate()
		}
		c.upload = ebiten.NewImage(b.Dx(), b.Dy())
		c.pixels = make([]byte, 4*b.Dx()*b.Dy())
	}
	// WritePixels takes premultiplied alpha.
	for i := 0; i+3 < len(src.Pix) && i+3 < len(c.pixels); i += 4 {
		a := uint32(src.Pix[i+3])
		c.pixels[i] = uint8(uint32(src.Pix[i]) * a / 255)
		c.pixels[i+1] = uint8(uint32(src.Pix[i+1]) * a / 255)
		c.pixels[i+2] = uint8(uint32(src.Pix[i+2]) * a / 255)
		c.pixels[i+3] = uint8(a)
	}
	c.upload.WritePixels(c.pixels)
	return c.upload
}

func drawStretched(dst, src *ebiten.Image) {
	sb, db := src.Bounds(), dst.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

// DrawFaded draws src onto dst at alpha, used for the page content fade.
func DrawFaded(dst, src *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(alpha))
	}
	dst.DrawImage(src, op)
}
