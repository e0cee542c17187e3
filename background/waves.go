package background

import "math"

const (
	ribbonCount  = 2
	ribbonWidth  = 220
	ribbonStride = 6
	// Phase advance per second.
	wavePhaseRate = 0.6
)

// WaveField draws two thick translucent ribbons that undulate across the
// middle of the viewport.
type WaveField struct {
	t       float64
	w, h    int
	palette Palette
	scratch []Point
}

func NewWaveField() *WaveField {
	return &WaveField{palette: Light}
}

func (f *WaveField) Resize(w, h int)      { f.w, f.h = w, h }
func (f *WaveField) SetPalette(p Palette) { f.palette = p }

func (f *WaveField) Step(dt float64) {
	if dt > 0 {
		f.t += dt * wavePhaseRate
	}
}

// Phase returns the accumulated phase.
func (f *WaveField) Phase() float64 { return f.t }

// Points samples ribbon i every ribbonStride pixels. The slice is reused
// between calls.
func (f *WaveField) Points(i int) []Point {
	f.scratch = f.scratch[:0]
	mid := float64(f.h) / 2
	fi := float64(i)
	for x := 0; x <= f.w; x += ribbonStride {
		fx := float64(x)
		y := mid + math.Sin(fx*0.008+f.t+fi*2)*130 + math.Cos(fx*0.01+f.t*1.5+fi)*80
		f.scratch = append(f.scratch, Point{X: float32(fx), Y: float32(y)})
	}
	return f.scratch
}

func (f *WaveField) Paint(dst Canvas) {
	dst.Fill(f.palette.Base)
	if f.w <= 0 || f.h <= 0 {
		return
	}
	for i := 0; i < ribbonCount; i++ {
		dst.StrokePolyline(f.Points(i), ribbonWidth, f.palette.Ribbons[i])
	}
}
