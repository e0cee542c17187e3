package background

import (
	"image/color"
	"math"

	"github.com/vignesh-b/portfolio/noise"
)

type blob struct {
	// Anchor of the centre as a fraction of the viewport.
	ax, ay float64
	radius float64
}

var blobLayout = [2]blob{
	{ax: 0.10, ay: 0.15, radius: 200},
	{ax: 0.85, ay: 0.90, radius: 225},
}

const (
	blobRings  = 6
	blobWander = 40.0
)

// BlobField draws two large soft blobs that wander on simplex noise.
type BlobField struct {
	drift   *noise.Drift
	t       float64
	w, h    int
	palette Palette
}

func NewBlobField(seed int64) *BlobField {
	return &BlobField{drift: noise.NewDrift(seed), palette: Light}
}

func (f *BlobField) Resize(w, h int)      { f.w, f.h = w, h }
func (f *BlobField) SetPalette(p Palette) { f.palette = p }

func (f *BlobField) Step(dt float64) {
	if dt > 0 {
		f.t += dt
	}
}

// Centre returns the current centre of blob i.
func (f *BlobField) Centre(i int) Point {
	b := blobLayout[i]
	x := b.ax * float64(f.w)
	y := b.ay * float64(f.h)
	// Anchors sit a radius inside their corner.
	if b.ax < 0.5 {
		x += b.radius
	} else {
		x -= b.radius
	}
	if b.ay < 0.5 {
		y += b.radius
	} else {
		y -= b.radius
	}
	x += f.drift.At(2*i, f.t*0.15)*blobWander + math.Sin(f.t*0.15)*3
	y += f.drift.At(2*i+1, f.t*0.15)*blobWander + math.Cos(f.t*0.12)*3
	return Point{X: float32(x), Y: float32(y)}
}

func (f *BlobField) Paint(dst Canvas) {
	dst.Fill(f.palette.Base)
	for i, b := range blobLayout {
		c := f.Centre(i)
		base := f.palette.Blobs[i]
		// Stacked rings fake the blur: the centre accumulates the most alpha.
		ring := base
		ring.A = uint8(math.Max(1, float64(base.A)/blobRings*2))
		for k := 0; k < blobRings; k++ {
			r := b.radius * (1 - float64(k)/blobRings)
			var col color.Color = ring
			dst.FillCircle(c.X, c.Y, float32(r), col)
		}
	}
}
