package ui

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/vignesh-b/portfolio/route"
)

// HeaderHeight is the space reserved at the top of the page for the header.
const HeaderHeight = 64

func (s *Shell) buildHeader() *widget.Container {
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(s.style.Panel)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(1, HeaderHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	name := s.heading(s.site.Profile.Name)
	name.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	bar.AddChild(name)

	nav := hstack(6)
	nav.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	for _, l := range route.NavLinks {
		to := l.To
		nav.AddChild(s.button(l.Label, route.IsActive(l, s.route), func() {
			s.nav.Push(route.Event{To: to})
		}))
	}
	themeLabel := "Dark"
	if s.theme.IsDark() {
		themeLabel = "Light"
	}
	nav.AddChild(s.button(themeLabel, false, func() {
		if s.onTheme != nil {
			s.onTheme()
		}
	}))
	s.musicBtn = s.button(s.music.Label(), false, s.toggleMusic)
	nav.AddChild(s.musicBtn)
	bar.AddChild(nav)
	return bar
}

func (s *Shell) toggleMusic() {
	if _, err := s.music.Toggle(); err != nil {
		s.logger.Warn("toggle music", "err", err)
	}
	if t := s.musicBtn.Text(); t != nil {
		t.Label = s.music.Label()
	}
}
