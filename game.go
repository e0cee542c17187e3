package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/vignesh-b/portfolio/assets"
	"github.com/vignesh-b/portfolio/background"
	"github.com/vignesh-b/portfolio/config"
	"github.com/vignesh-b/portfolio/contact"
	"github.com/vignesh-b/portfolio/content"
	"github.com/vignesh-b/portfolio/frame"
	"github.com/vignesh-b/portfolio/gfx"
	"github.com/vignesh-b/portfolio/logging"
	"github.com/vignesh-b/portfolio/music"
	"github.com/vignesh-b/portfolio/popup"
	"github.com/vignesh-b/portfolio/route"
	"github.com/vignesh-b/portfolio/settings"
	"github.com/vignesh-b/portfolio/stage"
	"github.com/vignesh-b/portfolio/ui"
)

type Game struct {
	debug  bool
	logger *log.Logger

	sched   *frame.Scheduler
	device  *gfx.Device
	stage   *stage.Stage
	bg      *background.Runner
	canvas  gfx.Canvas
	comp    gfx.Compositor
	content *ebiten.Image

	site       *content.Site
	contentDir string
	watcher    *content.Watcher

	store   settings.Store
	theme   settings.Theme
	nav     *route.Queue
	contact *contact.Controller
	popup   *popup.Popup
	music   *music.Player
	shell   *ui.Shell

	w, h int
}

func NewGame(ctx context.Context, cfg config.Config, debug bool) (*Game, error) {
	logger := logging.FromContext(ctx)

	site, err := content.Load(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("game: load content: %w", err)
	}

	store, err := settings.Open(cfg.Settings.Backend, cfg.Settings.Path)
	if err != nil {
		logger.Warn("settings unavailable, using memory", "backend", cfg.Settings.Backend, "err", err)
		store = settings.NewMemoryStore()
	}
	theme := settings.LoadTheme(store, settings.FirstSignal{settings.EnvSignal{}, settings.PortalSignal{}}, logger)

	dir := assets.Dir(cfg.AssetsDir)
	var track music.Track
	if cfg.Music != "" {
		p, err := dir.LoadAudioPlayer(cfg.Music)
		if err != nil {
			logger.Warn("music unavailable", "path", cfg.Music, "err", err)
		} else {
			track = p
		}
	}

	sched := frame.NewScheduler(frame.SystemSource{})
	device := gfx.NewDevice(assets.WarpShader)
	g := &Game{
		debug:      debug,
		logger:     logger,
		sched:      sched,
		device:     device,
		stage:      stage.New(sched, device, cfg.Transition, logger),
		site:       site,
		contentDir: cfg.ContentDir,
		store:      store,
		theme:      theme,
		nav:        &route.Queue{},
		contact:    contact.NewController(ctx, contact.NewRelay(cfg.Relay)),
		music:      music.New(track),
	}

	scroll := &ui.Scroller{}
	g.popup = popup.New(popup.NewRegistry(), scroll, popup.NewTengoGreeter(logger), logger)
	g.shell = ui.New(ui.Options{
		Site:    site,
		Theme:   theme,
		Assets:  dir,
		Nav:     g.nav,
		Contact: g.contact,
		Music:   g.music,
		Popup:   g.popup,
		Scroll:  scroll,
		Logger:  logger,
		OnTheme: g.toggleTheme,
	})

	anim := background.New(cfg.Background, cfg.Seed)
	anim.SetPalette(background.PaletteFor(theme.IsDark()))
	g.bg = background.NewRunner(sched, anim)
	g.bg.Start()

	if cfg.WatchContent && cfg.ContentDir != "" {
		w, err := content.NewWatcher(cfg.ContentDir)
		if err != nil {
			logger.Warn("content watcher disabled", "dir", cfg.ContentDir, "err", err)
		} else {
			g.watcher = w
		}
	}

	g.stage.OnSwap = g.onSwap
	g.stage.Open(route.Canonical(cfg.Route))
	return g, nil
}

// onSwap runs after the stage mounts a page: it shows the page body and
// offers that page's popup.
func (g *Game) onSwap(path string) {
	g.shell.Show(path)
	if e, ok := g.site.Popup(path); ok {
		g.popup.Open(path, e)
	}
}

func (g *Game) toggleTheme() {
	next, err := settings.ToggleTheme(g.store, g.theme)
	if err != nil {
		g.logger.Warn("theme not saved", "err", err)
	}
	g.theme = next
	g.bg.Animator().SetPalette(background.PaletteFor(next.IsDark()))
	g.shell.SetTheme(next)
}

func (g *Game) Update() error {
	now := time.Now()

	g.stage.Resize(g.w, g.h)
	g.bg.Animator().Resize(g.w, g.h)
	g.shell.Resize(g.w, g.h)

	g.sched.Tick()

	for _, evt := range g.nav.Drain() {
		from, to := g.stage.Route(), route.Canonical(evt.To)
		if g.stage.Navigate(to) {
			g.logger.Debug("navigate", "from", from, "to", to)
		}
	}

	g.shell.Update(now)
	g.contact.Update(now)
	g.reloadContent()
	return nil
}

// reloadContent applies edits to site.yaml. A broken file keeps the
// previous content.
func (g *Game) reloadContent() {
	if g.watcher == nil {
		return
	}
	path, ok := g.watcher.Poll()
	if !ok {
		return
	}
	site, err := content.Load(g.contentDir)
	if err != nil {
		g.logger.Warn("content reload failed", "path", path, "err", err)
		return
	}
	g.site = site
	g.shell.SetSite(site)
	g.logger.Info("content reloaded", "path", path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.bg.Animator().Paint(&g.canvas)

	g.shell.DrawChrome(screen)

	b := screen.Bounds()
	if g.content == nil || g.content.Bounds() != b {
		if g.content != nil {
			g.content.Deallocate()
		}
		g.content = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.content.Clear()
	g.shell.DrawBody(g.content)
	gfx.DrawFaded(screen, g.content, g.stage.ContentAlpha())

	g.comp.Draw(screen, g.stage.Renderer().Surface())
	g.shell.DrawPopup(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  route: %s  callbacks: %d", ebiten.ActualFPS(), g.stage.Route(), g.sched.Pending()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close releases the stage, the background loop and the stores.
func (g *Game) Close() {
	g.stage.Close()
	g.device.Dispose()
	g.bg.Stop()
	g.music.Stop()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.logger.Warn("close watcher", "err", err)
		}
	}
	if err := g.store.Close(); err != nil {
		g.logger.Warn("close settings", "err", err)
	}
}
