package background

import "image/color"

// Palette holds the colours for one theme.
type Palette struct {
	Base    color.NRGBA
	Dots    []color.NRGBA
	Ribbons [2]color.NRGBA
	Blobs   [2]color.NRGBA
}

const dotAlpha = 0xcc

var (
	Light = Palette{
		Base: color.NRGBA{R: 248, G: 250, B: 252, A: 255},
		Dots: []color.NRGBA{
			{R: 0xd9, G: 0x46, B: 0xef, A: dotAlpha},
			{R: 0x60, G: 0xa5, B: 0xfa, A: dotAlpha},
			{R: 0x34, G: 0xd3, B: 0x99, A: dotAlpha},
			{R: 0xfa, G: 0xcc, B: 0x15, A: dotAlpha},
		},
		Ribbons: [2]color.NRGBA{
			{R: 0, G: 150, B: 255, A: 89},
			{R: 255, G: 100, B: 200, A: 89},
		},
		Blobs: [2]color.NRGBA{
			{R: 0xec, G: 0x48, B: 0x99, A: 26},
			{R: 0x06, G: 0xb6, B: 0xd4, A: 26},
		},
	}

	Dark = Palette{
		Base: color.NRGBA{R: 15, G: 23, B: 42, A: 255},
		Dots: []color.NRGBA{
			{R: 0xf4, G: 0x72, B: 0xb6, A: dotAlpha},
			{R: 0x38, G: 0xbd, B: 0xf8, A: dotAlpha},
			{R: 0x4a, G: 0xde, B: 0x80, A: dotAlpha},
			{R: 0xfb, G: 0xbf, B: 0x24, A: dotAlpha},
		},
		Ribbons: [2]color.NRGBA{
			{R: 0, G: 120, B: 255, A: 64},
			{R: 200, G: 0, B: 255, A: 64},
		},
		Blobs: [2]color.NRGBA{
			{R: 0xec, G: 0x48, B: 0x99, A: 26},
			{R: 0x06, G: 0xb6, B: 0xd4, A: 26},
		},
	}
)

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return Dark
	}
	return Light
}
