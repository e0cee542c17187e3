package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/vignesh-b/portfolio/settings"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Style is the colour set for one theme.
type Style struct {
	Panel     color.NRGBA
	Text      color.NRGBA
	Muted     color.NRGBA
	Accent    color.NRGBA
	Button    color.NRGBA
	Hover     color.NRGBA
	Pressed   color.NRGBA
	Input     color.NRGBA
	Chip      color.NRGBA
	Bubble    color.NRGBA
	BubbleInk color.NRGBA
	Scrim     color.NRGBA
}

var lightStyle = Style{
	Panel:     color.NRGBA{0xff, 0xff, 0xff, 0xd8},
	Text:      color.NRGBA{0x0f, 0x17, 0x2a, 0xff},
	Muted:     color.NRGBA{0x47, 0x55, 0x69, 0xff},
	Accent:    color.NRGBA{0x25, 0x63, 0xeb, 0xff},
	Button:    color.NRGBA{0xe2, 0xe8, 0xf0, 0xff},
	Hover:     color.NRGBA{0xcb, 0xd5, 0xe1, 0xff},
	Pressed:   color.NRGBA{0x94, 0xa3, 0xb8, 0xff},
	Input:     color.NRGBA{0xf8, 0xfa, 0xfc, 0xff},
	Chip:      color.NRGBA{0xdb, 0xea, 0xfe, 0xff},
	Bubble:    color.NRGBA{0xff, 0xff, 0xff, 0xff},
	BubbleInk: color.NRGBA{0x0f, 0x17, 0x2a, 0xff},
	Scrim:     color.NRGBA{0x00, 0x00, 0x00, 0x66},
}

var darkStyle = Style{
	Panel:     color.NRGBA{0x1e, 0x29, 0x3b, 0xd8},
	Text:      color.NRGBA{0xf1, 0xf5, 0xf9, 0xff},
	Muted:     color.NRGBA{0x94, 0xa3, 0xb8, 0xff},
	Accent:    color.NRGBA{0x60, 0xa5, 0xfa, 0xff},
	Button:    color.NRGBA{0x33, 0x41, 0x55, 0xff},
	Hover:     color.NRGBA{0x47, 0x55, 0x69, 0xff},
	Pressed:   color.NRGBA{0x1e, 0x29, 0x3b, 0xff},
	Input:     color.NRGBA{0x0f, 0x17, 0x2a, 0xff},
	Chip:      color.NRGBA{0x1e, 0x3a, 0x8a, 0xff},
	Bubble:    color.NRGBA{0xf8, 0xfa, 0xfc, 0xff},
	BubbleInk: color.NRGBA{0x0f, 0x17, 0x2a, 0xff},
	Scrim:     color.NRGBA{0x00, 0x00, 0x00, 0x99},
}

// StyleFor returns the colours for t.
func StyleFor(t settings.Theme) Style {
	if t.IsDark() {
		return darkStyle
	}
	return lightStyle
}

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// Fonts are the faces every widget shares.
type Fonts struct {
	Body  text.Face
	Small text.Face
	Title text.Face
	Head  text.Face
}

// LoadFonts parses the Go fonts. If parsing fails every face falls back to
// the fixed basic font.
func LoadFonts() Fonts {
	fallback := text.Face(text.NewGoXFace(basicfont.Face7x13))
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return Fonts{Body: fallback, Small: fallback, Title: fallback, Head: fallback}
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		bold = regular
	}
	return Fonts{
		Body:  &text.GoTextFace{Source: regular, Size: 16},
		Small: &text.GoTextFace{Source: regular, Size: 13},
		Title: &text.GoTextFace{Source: bold, Size: 30},
		Head:  &text.GoTextFace{Source: bold, Size: 20},
	}
}
