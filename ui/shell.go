// Package ui builds the portfolio's widgets on ebitenui: the header, one
// body per page, and the popup overlay.
package ui

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vignesh-b/portfolio/assets"
	"github.com/vignesh-b/portfolio/contact"
	"github.com/vignesh-b/portfolio/content"
	"github.com/vignesh-b/portfolio/music"
	"github.com/vignesh-b/portfolio/popup"
	"github.com/vignesh-b/portfolio/route"
	"github.com/vignesh-b/portfolio/settings"
)

// Options wires the shell to the rest of the app. Only Site is required.
type Options struct {
	Site    *content.Site
	Theme   settings.Theme
	Assets  assets.Dir
	Nav     *route.Queue
	Contact *contact.Controller
	Music   *music.Player
	Popup   *popup.Popup
	Scroll  *Scroller
	Desktop Desktop
	Logger  *log.Logger
	// OnTheme is called when the theme button is clicked.
	OnTheme func()
}

type imageKey struct {
	path string
	max  int
}

// Shell owns three UIs: the header drawn straight to the screen, the page
// body drawn through the content fade, and the popup overlay.
type Shell struct {
	site    *content.Site
	theme   settings.Theme
	style   Style
	fonts   Fonts
	assets  assets.Dir
	nav     *route.Queue
	contact *contact.Controller
	music   *music.Player
	popup   *popup.Popup
	scroll  *Scroller
	desktop Desktop
	logger  *log.Logger
	onTheme func()

	route string
	page  route.Page
	w, h  int

	chrome     *ebitenui.UI
	body       *ebitenui.UI
	scrollView *widget.ScrollContainer
	overlay    *ebitenui.UI
	overlayFor string
	musicBtn   *widget.Button
	form       contactForm
	images     map[imageKey]*ebiten.Image
}

func New(opts Options) *Shell {
	s := &Shell{
		site:    opts.Site,
		theme:   opts.Theme,
		style:   StyleFor(opts.Theme),
		fonts:   LoadFonts(),
		assets:  opts.Assets,
		nav:     opts.Nav,
		contact: opts.Contact,
		music:   opts.Music,
		popup:   opts.Popup,
		scroll:  opts.Scroll,
		desktop: opts.Desktop,
		logger:  opts.Logger,
		onTheme: opts.OnTheme,
		route:   route.About.Path(),
		page:    route.About,
		images:  map[imageKey]*ebiten.Image{},
	}
	if s.site == nil {
		s.site = &content.Site{}
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.nav == nil {
		s.nav = &route.Queue{}
	}
	if s.music == nil {
		s.music = music.New(nil)
	}
	if s.scroll == nil {
		s.scroll = &Scroller{}
	}
	if s.popup == nil {
		s.popup = popup.New(popup.NewRegistry(), s.scroll, nil, s.logger)
	}
	if s.desktop == nil {
		s.desktop = &SystemDesktop{}
	}
	if s.contact != nil {
		s.contact.OnClear = s.clearContact
	}
	return s
}

// Show builds the body for path and scrolls to the top.
func (s *Shell) Show(path string) {
	s.route = route.Canonical(path)
	s.page, _ = route.Resolve(s.route)
	s.scroll.Reset()
	s.rebuild()
}

// SetSite swaps in reloaded content and rebuilds.
func (s *Shell) SetSite(site *content.Site) {
	if site == nil {
		return
	}
	s.site = site
	s.images = map[imageKey]*ebiten.Image{}
	s.rebuild()
}

func (s *Shell) SetTheme(t settings.Theme) {
	s.theme = t
	s.style = StyleFor(t)
	s.rebuild()
}

func (s *Shell) Theme() settings.Theme { return s.theme }

// Route is the canonical path of the page on display.
func (s *Shell) Route() string { return s.route }

// Resize rebuilds the layout when the viewport changes.
func (s *Shell) Resize(w, h int) {
	if w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	s.rebuild()
}

func (s *Shell) columnWidth() int {
	w := s.w - 136
	if w < 240 {
		w = 240
	}
	return w
}

func (s *Shell) rebuild() {
	if s.w <= 0 || s.h <= 0 {
		return
	}
	header := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	header.AddChild(s.buildHeader())
	s.chrome = &ebitenui.UI{Container: header}

	s.scrollView = widget.NewScrollContainer(
		widget.ScrollContainerOpts.Content(s.buildPage(s.page)),
		widget.ScrollContainerOpts.StretchContentWidth(),
		widget.ScrollContainerOpts.Image(&widget.ScrollContainerImage{
			Idle: solidNineSlice(color.Transparent),
			Mask: solidNineSlice(color.White),
		}),
		widget.ScrollContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
	s.scrollView.ScrollTop = s.scroll.Top()
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: HeaderHeight}),
	)))
	root.AddChild(s.scrollView)
	s.body = &ebitenui.UI{Container: root}
	s.overlay = nil
}

// Update handles input for one frame. While the popup is visible it takes
// all input and any click dismisses it.
func (s *Shell) Update(now time.Time) {
	if s.body == nil {
		return
	}
	if s.popup.Visible() {
		s.ensureOverlay()
		s.overlay.Update()
		if dismissPressed() {
			s.popup.Dismiss()
			s.overlay = nil
		}
		return
	}
	s.chrome.Update()
	s.body.Update()
	if _, dy := ebiten.Wheel(); s.scroll.Wheel(dy) {
		s.scrollView.ScrollTop = s.scroll.Top()
	}
	s.refreshContact(now)
}

func (s *Shell) ensureOverlay() {
	key := s.popup.Page() + "\x00" + s.popup.Text()
	if s.overlay == nil || s.overlayFor != key {
		s.overlay = s.buildOverlay()
		s.overlayFor = key
	}
}

func (s *Shell) DrawChrome(screen *ebiten.Image) {
	if s.chrome != nil {
		s.chrome.Draw(screen)
	}
}

// DrawBody draws the page body. The caller fades the result.
func (s *Shell) DrawBody(dst *ebiten.Image) {
	if s.body != nil {
		s.body.Draw(dst)
	}
}

func (s *Shell) DrawPopup(screen *ebiten.Image) {
	if !s.popup.Visible() || s.body == nil {
		return
	}
	s.ensureOverlay()
	s.overlay.Draw(screen)
}

// image loads path from the assets directory, scaled down to fit max.
// Missing images return nil and are not retried until the content reloads.
func (s *Shell) image(path string, max int) *ebiten.Image {
	if path == "" {
		return nil
	}
	key := imageKey{path: path, max: max}
	if img, ok := s.images[key]; ok {
		return img
	}
	img, err := s.assets.LoadImage(path)
	if err != nil {
		s.logger.Debug("load image", "path", path, "err", err)
		s.images[key] = nil
		return nil
	}
	img = fit(img, max)
	s.images[key] = img
	return img
}

func fit(img *ebiten.Image, max int) *ebiten.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if max <= 0 || (w <= max && h <= max) {
		return img
	}
	scale := float64(max) / float64(w)
	if h > w {
		scale = float64(max) / float64(h)
	}
	dw, dh := int(float64(w)*scale), int(float64(h)*scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	out := ebiten.NewImage(dw, dh)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterLinear
	out.DrawImage(img, op)
	return out
}
