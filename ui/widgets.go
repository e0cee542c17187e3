package ui

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func vstack(spacing int, pad *widget.Insets, opts ...widget.ContainerOpt) *widget.Container {
	if pad == nil {
		pad = &widget.Insets{}
	}
	opts = append(opts, widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		widget.RowLayoutOpts.Spacing(spacing),
		widget.RowLayoutOpts.Padding(pad),
	)))
	return widget.NewContainer(opts...)
}

func hstack(spacing int) *widget.Container {
	return widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		widget.RowLayoutOpts.Spacing(spacing),
	)))
}

// card is a padded panel stretched to its column.
func (s *Shell) card() *widget.Container {
	return vstack(8, &widget.Insets{Top: 16, Bottom: 16, Left: 20, Right: 20},
		widget.ContainerOpts.BackgroundImage(solidNineSlice(s.style.Panel)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
	)
}

func (s *Shell) title(label string) *widget.Text {
	face := s.fonts.Title
	return widget.NewText(widget.TextOpts.Text(label, &face, s.style.Text))
}

func (s *Shell) heading(label string) *widget.Text {
	face := s.fonts.Head
	return widget.NewText(widget.TextOpts.Text(label, &face, s.style.Text))
}

// paragraph wraps label to the content column.
func (s *Shell) paragraph(label string, muted bool) *widget.Text {
	face := s.fonts.Body
	clr := s.style.Text
	if muted {
		clr = s.style.Muted
	}
	return widget.NewText(
		widget.TextOpts.Text(label, &face, clr),
		widget.TextOpts.MaxWidth(float64(s.columnWidth())),
	)
}

func (s *Shell) small(label string) *widget.Text {
	face := s.fonts.Small
	return widget.NewText(
		widget.TextOpts.Text(label, &face, s.style.Muted),
		widget.TextOpts.MaxWidth(float64(s.columnWidth())),
	)
}

func (s *Shell) button(label string, active bool, onClick func()) *widget.Button {
	face := s.fonts.Body
	idle := s.style.Button
	txt := s.style.Text
	if active {
		idle = s.style.Accent
		txt = s.style.Input
	}
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    solidNineSlice(idle),
			Hover:   solidNineSlice(s.style.Hover),
			Pressed: solidNineSlice(s.style.Pressed),
		}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: txt}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// link is a button that opens href in the browser.
func (s *Shell) link(label, href string) *widget.Button {
	return s.button(label, false, func() {
		if err := s.desktop.OpenURL(href); err != nil {
			s.logger.Warn("open link", "href", href, "err", err)
		}
	})
}

func (s *Shell) input(value string, onChange func(string)) *widget.TextInput {
	face := s.fonts.Body
	in := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(s.columnWidth()-40, 32),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(s.style.Input),
			Disabled: solidNineSlice(s.style.Button),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     s.style.Text,
			Disabled: s.style.Muted,
			Caret:    s.style.Text,
		}),
		widget.TextInputOpts.Face(&face),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			onChange(args.InputText)
		}),
	)
	in.SetText(value)
	return in
}
