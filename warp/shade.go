package warp

import (
	"math"

	"github.com/vignesh-b/portfolio/common"
	"github.com/vignesh-b/portfolio/noise"
)

// MaxAlpha is the overlay opacity at full progress.
const MaxAlpha = 0.85

// Uniforms is the per-frame input of the warp program.
type Uniforms struct {
	Elapsed  float64
	Progress float64
	Width    int
	Height   int
}

// SetProgress stores p clamped to [0,1].
func (u *Uniforms) SetProgress(p float64) {
	u.Progress = common.Clamp01(p)
}

// Pixel is a straight (non-premultiplied) colour with channels in [0,1].
type Pixel struct {
	R, G, B, A float64
}

// channel describes how one colour channel samples the backdrop.
type channel struct {
	top, bottom float64 // gradient endpoints
	tint        float64 // noise tint strength
	ox, oy      float64 // chromatic offset direction
}

var channels = [3]channel{
	{top: 0.02, bottom: 0.07, tint: 0.5, ox: 1, oy: -1},
	{top: 0.02, bottom: 0.02, tint: 0.35},
	{top: 0.05, bottom: 0.12, tint: 0.45, ox: -1, oy: 1},
}

var (
	field     noise.Field
	flashTint = [3]float64{1, 0.7, 0.9}
)

// Shade evaluates the warp program for the normalized coordinate (x, y).
// It is the CPU reference of assets/shaders/warp.kage.
func Shade(u Uniforms, x, y float64) Pixel {
	t := u.Elapsed
	cx, cy := x-0.5, y-0.5
	dist := math.Hypot(cx, cy)

	warpStrength := (1 - common.Smoothstep(0, 0.8, dist)) * 0.6
	n := field.Sample(x*8, y*8, t*0.6)
	p := common.Smoothstep(0, 1, common.Clamp01(u.Progress))

	swirl := math.Sin(math.Atan2(cy, cx)*4+t*6) * 0.06
	k := swirl * warpStrength * (0.5 + n) * p
	dx, dy := x+cx*k, y+cy*k

	chroma := 0.012 * p
	vign := common.Smoothstep(0.4, 0.8, dist) * 0.6
	flash := math.Pow(common.Smoothstep(0.2, 0.8, p), 3)

	var out [3]float64
	for i, ch := range channels {
		sx, sy := dx+ch.ox*chroma, dy+ch.oy*chroma
		v := backdrop(ch, sx, sy, t) + ch.tint*n
		v *= 1 - vign
		v += flashTint[i] * flash * 0.25
		out[i] = common.Clamp01(v)
	}

	return Pixel{R: out[0], G: out[1], B: out[2], A: MaxAlpha * p}
}

// backdrop is the synthetic scene a channel samples: a dark vertical
// gradient, a faint 40x40 grid and a moving scanline.
func backdrop(ch channel, x, y, t float64) float64 {
	bg := common.Lerp(ch.top, ch.bottom, y)
	grid := common.Step(0.9985, common.Fract(x*40))*0.12 + common.Step(0.9985, common.Fract(y*40))*0.08
	scan := math.Sin((y+t*0.8)*200) * 0.02
	return bg + grid*0.6 + scan*0.6
}
