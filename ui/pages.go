package ui

import (
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/vignesh-b/portfolio/content"
	"github.com/vignesh-b/portfolio/route"
)

// buildPage returns the body for page. Every page is driven by the site
// content; there is one builder per page.
func (s *Shell) buildPage(page route.Page) *widget.Container {
	body := vstack(20, &widget.Insets{Top: 32, Bottom: 48, Left: 48, Right: 48})
	site := s.site
	switch page {
	case route.Skills:
		s.skillsPage(body, site)
	case route.Academics:
		s.academicsPage(body, site)
	case route.Projects:
		s.projectsPage(body, site)
	case route.CP:
		s.cpPage(body, site)
	case route.Contact:
		s.contactPage(body, site)
	default:
		s.aboutPage(body, site)
	}
	return body
}

func (s *Shell) aboutPage(body *widget.Container, site *content.Site) {
	hero := hstack(24)
	if img := s.image(site.Profile.Photo, 160); img != nil {
		hero.AddChild(widget.NewGraphic(widget.GraphicOpts.Image(img)))
	}
	intro := vstack(6, nil)
	intro.AddChild(s.title(site.Profile.Name))
	if site.Profile.Tagline != "" {
		intro.AddChild(s.paragraph(site.Profile.Tagline, true))
	}
	hero.AddChild(intro)
	body.AddChild(hero)

	card := s.card()
	card.AddChild(s.heading("About Me"))
	for _, p := range site.About {
		card.AddChild(s.paragraph(p, false))
	}
	body.AddChild(card)
}

func (s *Shell) skillsPage(body *widget.Container, site *content.Site) {
	body.AddChild(s.title("Skills"))
	cols := 4
	if s.columnWidth() < 640 {
		cols = 2
	}
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(cols),
			widget.GridLayoutOpts.Spacing(12, 12),
		)),
	)
	for _, skill := range site.Skills {
		chip := vstack(0, &widget.Insets{Top: 10, Bottom: 10, Left: 16, Right: 16},
			widget.ContainerOpts.BackgroundImage(solidNineSlice(s.style.Chip)),
		)
		chip.AddChild(s.paragraph(skill, false))
		grid.AddChild(chip)
	}
	body.AddChild(grid)
}

func (s *Shell) academicsPage(body *widget.Container, site *content.Site) {
	body.AddChild(s.title("Education"))
	if site.AcademicsIntro != "" {
		body.AddChild(s.paragraph(site.AcademicsIntro, true))
	}
	for _, a := range site.Academics {
		card := s.card()
		row := hstack(16)
		if img := s.image(a.Logo, 64); img != nil {
			row.AddChild(widget.NewGraphic(widget.GraphicOpts.Image(img)))
		}
		col := vstack(4, nil)
		col.AddChild(s.heading(a.Title))
		if a.Program != "" {
			col.AddChild(s.paragraph(a.Program, false))
		}
		meta := joinNonEmpty(" | ", a.Year, scoreLine(a))
		if meta != "" {
			col.AddChild(s.small(meta))
		}
		row.AddChild(col)
		card.AddChild(row)
		if a.Link != "" {
			card.AddChild(s.link("Visit website", a.Link))
		}
		body.AddChild(card)
	}
}

func (s *Shell) projectsPage(body *widget.Container, site *content.Site) {
	body.AddChild(s.title("Projects"))
	for _, p := range site.Projects {
		card := s.card()
		if img := s.image(p.Image, s.columnWidth()-40); img != nil {
			card.AddChild(widget.NewGraphic(widget.GraphicOpts.Image(img)))
		}
		card.AddChild(s.heading(p.Title))
		card.AddChild(s.paragraph(p.Description, false))
		if len(p.Tags) > 0 {
			card.AddChild(s.small(strings.Join(p.Tags, "  ·  ")))
		}
		if len(p.Links) > 0 {
			links := hstack(8)
			for _, l := range p.Links {
				links.AddChild(s.link(l.Label, l.Href))
			}
			card.AddChild(links)
		}
		body.AddChild(card)
	}
}

func (s *Shell) cpPage(body *widget.Container, site *content.Site) {
	body.AddChild(s.title("Competitive Programming"))
	for _, cp := range site.CP {
		card := s.card()
		card.AddChild(s.heading(cp.Platform))
		if cp.Handle != "" {
			card.AddChild(s.small("@" + cp.Handle))
		}
		if cp.Note != "" {
			card.AddChild(s.paragraph(cp.Note, false))
		}
		if cp.URL != "" {
			card.AddChild(s.link("View profile", cp.URL))
		}
		body.AddChild(card)
	}
}

func scoreLine(a content.Academic) string {
	if a.Score == "" {
		return ""
	}
	if a.ScoreLabel == "" {
		return a.Score
	}
	return a.ScoreLabel + ": " + a.Score
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
