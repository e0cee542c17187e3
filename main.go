package main

import (
	"context"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vignesh-b/portfolio/config"
	"github.com/vignesh-b/portfolio/logging"
	"github.com/vignesh-b/portfolio/settings"
)

func main() {
	configPath := flag.String("config", "", "yaml config file (optional)")
	envFile := flag.String("env", ".env", "dotenv file with relay credentials (optional)")
	contentDir := flag.String("content", "", "directory with a site.yaml overriding the embedded content")
	startRoute := flag.String("route", "", "page to open first, e.g. /projects")
	debug := flag.Bool("debug", false, "enable debug logging and the FPS readout")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	backend := flag.String("settings-backend", "", "settings store: file, sqlite or memory")
	settingsPath := flag.String("settings", "", "settings store path")
	flag.Parse()

	logger := logging.New(os.Stderr, logging.Level(*debug))

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	if *contentDir != "" {
		cfg.ContentDir = *contentDir
	}
	if *startRoute != "" {
		cfg.Route = *startRoute
	}
	if *backend != "" {
		cfg.Settings.Backend = settings.Backend(*backend)
	}
	if *settingsPath != "" {
		cfg.Settings.Path = *settingsPath
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	ctx := logging.WithLogger(context.Background(), logger)
	game, err := NewGame(ctx, cfg, *debug)
	if err != nil {
		logger.Fatal("start", "err", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run", "err", err)
	}
}
