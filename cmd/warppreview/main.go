// Command warppreview plays the transition overlay in a window over a test
// pattern. E replays the entry, X plays the exit, R recompiles the shader
// from -shader and S switches between the GPU and CPU devices.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/vignesh-b/portfolio/assets"
	"github.com/vignesh-b/portfolio/frame"
	"github.com/vignesh-b/portfolio/gfx"
	"github.com/vignesh-b/portfolio/logging"
	"github.com/vignesh-b/portfolio/transition"
	"github.com/vignesh-b/portfolio/warp"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

type Game struct {
	logger     *log.Logger
	shaderPath string
	software   bool

	sched    *frame.Scheduler
	clock    frame.Clock
	gpu      *gfx.Device
	renderer *warp.Renderer
	ctrl     *transition.Controller
	comp     gfx.Compositor
}

func NewGame(shaderPath string, logger *log.Logger) *Game {
	g := &Game{logger: logger, shaderPath: shaderPath, sched: frame.NewScheduler(nil)}
	g.reset()
	return g
}

// reset rebuilds the renderer on the current device and replays the entry.
func (g *Game) reset() {
	if g.ctrl != nil {
		g.ctrl.Teardown()
	}
	if g.renderer != nil {
		g.renderer.Dispose()
	}
	if g.gpu != nil {
		g.gpu.Dispose()
		g.gpu = nil
	}
	g.renderer = warp.NewRenderer(g.device(), g.logger)
	if err := g.renderer.Configure(screenWidth, screenHeight); err != nil {
		g.logger.Warn("configure", "err", err)
	}
	g.ctrl = transition.New(g.sched, g.renderer, transition.DefaultConfig())
	g.clock.Reset(g.sched.Now())
	g.ctrl.Enter()
}

func (g *Game) device() warp.Device {
	if g.software {
		return &warp.SoftwareDevice{Downsample: 4}
	}
	src := assets.WarpShader
	if g.shaderPath != "" {
		b, err := os.ReadFile(g.shaderPath)
		if err != nil {
			g.logger.Warn("warp shader not found, using embedded", "path", g.shaderPath, "err", err)
		} else {
			src = b
		}
	}
	// A fresh device so R recompiles the shader.
	g.gpu = gfx.NewDevice(src)
	return g.gpu
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.ctrl.Enter()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.ctrl.Exit(func() { g.logger.Info("exit finished") })
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.software = !g.software
		g.reset()
	}
	g.sched.Tick()
	elapsed := g.clock.Advance(g.sched.Now())
	if err := g.renderer.RenderFrame(elapsed.Seconds(), g.renderer.Progress()); err != nil {
		g.logger.Debug("render frame", "err", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0xf8, 0xfa, 0xfc, 0xff})
	for y := 0; y < screenHeight; y += 40 {
		for x := (y / 40 % 2) * 40; x < screenWidth; x += 80 {
			vector.FillRect(screen, float32(x), float32(y), 40, 40, color.RGBA{0xcb, 0xd5, 0xe1, 0xff}, false)
		}
	}
	g.comp.Draw(screen, g.renderer.Surface())

	mode := "gpu"
	if g.software {
		mode = "cpu"
	}
	if g.renderer.Degraded() {
		mode += " (degraded)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  phase: %s  progress: %.3f  FPS: %.1f\nE entry  X exit  R reload  S device",
		mode, g.ctrl.Phase(), g.renderer.Progress(), ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	shaderPath := flag.String("shader", "", "Kage source to preview instead of the embedded warp shader")
	software := flag.Bool("software", false, "start on the CPU device")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := logging.New(os.Stderr, logging.Level(*debug))

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("warp preview")

	g := NewGame(*shaderPath, logger)
	if *software {
		g.software = true
		g.reset()
	}
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", "err", err)
	}
}
