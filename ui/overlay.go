package ui

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const mascotSize = 220

// buildOverlay lays out the popup: the mascot on the left of a speech
// bubble, over a dimmed page.
func (s *Shell) buildOverlay() *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(s.style.Scrim)),
	)

	row := hstack(16)
	row.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	if img := s.image(s.popup.Image(), mascotSize); img != nil {
		row.AddChild(widget.NewGraphic(widget.GraphicOpts.Image(img)))
	}

	bubble := vstack(10, &widget.Insets{Top: 20, Bottom: 20, Left: 24, Right: 24},
		widget.ContainerOpts.BackgroundImage(solidNineSlice(s.style.Bubble)),
	)
	body, small := s.fonts.Head, s.fonts.Small
	bubble.AddChild(widget.NewText(
		widget.TextOpts.Text(s.popup.Text(), &body, s.style.BubbleInk),
		widget.TextOpts.MaxWidth(360),
	))
	bubble.AddChild(widget.NewText(
		widget.TextOpts.Text(s.popup.Hint(), &small, s.style.Muted),
	))
	row.AddChild(bubble)
	root.AddChild(row)
	return &ebitenui.UI{Container: root}
}

// dismissPressed reports a click, tap or confirm key this frame.
func dismissPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	for _, k := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyEnter, ebiten.KeySpace} {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
