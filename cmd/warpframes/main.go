// Command warpframes renders the page transition overlay to PNG files,
// one per frame, without opening a window.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vignesh-b/portfolio/config"
	"github.com/vignesh-b/portfolio/frame"
	"github.com/vignesh-b/portfolio/logging"
	"github.com/vignesh-b/portfolio/transition"
	"github.com/vignesh-b/portfolio/warp"
)

// maxFrames stops a run whose controller never settles.
const maxFrames = 10000

func main() {
	width := flag.Int("w", 320, "frame width")
	height := flag.Int("h", 200, "frame height")
	fps := flag.Int("fps", 30, "frames per second of simulated time")
	phase := flag.String("phase", "entry", "animation to render: entry or exit")
	out := flag.String("out", "frames", "output directory")
	downsample := flag.Int("downsample", 1, "shade one pixel per NxN block")
	configPath := flag.String("config", "", "yaml config file for transition durations (optional)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := logging.New(os.Stderr, logging.Level(*debug))

	cfg, err := config.Load(*configPath, "")
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	if *fps <= 0 {
		logger.Fatal("fps must be positive", "fps", *fps)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		logger.Fatal("create output dir", "dir", *out, "err", err)
	}

	n, err := render(renderOpts{
		width:      *width,
		height:     *height,
		step:       time.Second / time.Duration(*fps),
		phase:      *phase,
		out:        *out,
		downsample: *downsample,
		transition: cfg.Transition,
		logger:     logger,
	})
	if err != nil {
		logger.Fatal("render", "err", err)
	}
	logger.Info("done", "frames", n, "dir", *out)
}

type renderOpts struct {
	width, height int
	step          time.Duration
	phase         string
	out           string
	downsample    int
	transition    transition.Config
	logger        *log.Logger
}

func render(o renderOpts) (int, error) {
	if o.logger == nil {
		o.logger = log.Default()
	}
	src := frame.NewManualSource(time.Unix(0, 0))
	sched := frame.NewScheduler(src)
	r := warp.NewRenderer(&warp.SoftwareDevice{Downsample: o.downsample}, o.logger)
	defer r.Dispose()
	if err := r.Configure(o.width, o.height); err != nil {
		return 0, fmt.Errorf("warpframes: configure: %w", err)
	}
	if r.Degraded() {
		return 0, fmt.Errorf("warpframes: renderer unavailable at %dx%d", o.width, o.height)
	}

	ctrl := transition.New(sched, r, o.transition)
	defer ctrl.Teardown()
	switch o.phase {
	case "entry":
		ctrl.Enter()
	case "exit":
		ctrl.Exit(nil)
	default:
		return 0, fmt.Errorf("warpframes: unknown phase %q", o.phase)
	}

	var clock frame.Clock
	clock.Reset(src.Now())
	for i := 0; i < maxFrames; i++ {
		elapsed := clock.Advance(src.Now())
		if err := r.RenderFrame(elapsed.Seconds(), r.Progress()); err != nil {
			return i, fmt.Errorf("warpframes: frame %d: %w", i, err)
		}
		path := filepath.Join(o.out, fmt.Sprintf("%s_%04d.png", o.phase, i))
		if err := writePNG(path, r.Surface()); err != nil {
			return i, err
		}
		o.logger.Debug("frame", "i", i, "progress", r.Progress())
		if !ctrl.Animating() {
			return i + 1, nil
		}
		src.Advance(o.step)
		sched.Tick()
	}
	return maxFrames, nil
}

func writePNG(path string, s warp.Surface) error {
	surf, ok := s.(*warp.SoftwareSurface)
	if !ok || surf.Disposed() {
		return fmt.Errorf("warpframes: no surface to write")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("warpframes: create %s: %w", path, err)
	}
	if err := png.Encode(f, surf.Image()); err != nil {
		f.Close()
		return fmt.Errorf("warpframes: encode %s: %w", path, err)
	}
	return f.Close()
}
