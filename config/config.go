// Package config assembles application settings from defaults, an optional
// YAML file and the environment (including a .env file).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vignesh-b/portfolio/background"
	"github.com/vignesh-b/portfolio/contact"
	"github.com/vignesh-b/portfolio/settings"
	"github.com/vignesh-b/portfolio/transition"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvServiceID       = "PORTFOLIO_EMAILJS_SERVICE_ID"
	EnvTemplateID      = "PORTFOLIO_EMAILJS_TEMPLATE_ID"
	EnvPublicKey       = "PORTFOLIO_EMAILJS_PUBLIC_KEY"
	EnvContentDir      = "PORTFOLIO_CONTENT_DIR"
	EnvSettingsBackend = "PORTFOLIO_SETTINGS_BACKEND"
	EnvSettingsPath    = "PORTFOLIO_SETTINGS_PATH"
	EnvBackground      = "PORTFOLIO_BACKGROUND"
	EnvMusic           = "PORTFOLIO_MUSIC"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Settings struct {
	Backend settings.Backend `yaml:"backend"`
	Path    string           `yaml:"path"`
}

type Config struct {
	Window       Window              `yaml:"window"`
	Route        string              `yaml:"route"`
	ContentDir   string              `yaml:"content_dir"`
	WatchContent bool                `yaml:"watch_content"`
	Settings     Settings            `yaml:"settings"`
	Transition   transition.Config   `yaml:"transition"`
	Background   background.Kind     `yaml:"background"`
	Seed         int64               `yaml:"seed"`
	Music        string              `yaml:"music"`
	AssetsDir    string              `yaml:"assets_dir"`
	Relay        contact.Credentials `yaml:"relay"`
}

func Default() Config {
	return Config{
		Window:       Window{Width: 1280, Height: 800, Title: "Vignesh B"},
		Route:        "/",
		WatchContent: true,
		Settings:     Settings{Backend: settings.BackendFile},
		Transition:   transition.DefaultConfig(),
		Background:   background.KindParticles,
		Seed:         1,
		AssetsDir:    "assets",
	}
}

// Load layers path (may be empty) and envFile (may be missing) over the
// defaults. Process environment beats the .env file.
func Load(path, envFile string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = values
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	}
	cfg.ApplyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})
	cfg.normalize()
	return cfg, nil
}

// ApplyEnv overrides fields from lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(EnvServiceID, &c.Relay.ServiceID)
	set(EnvTemplateID, &c.Relay.TemplateID)
	set(EnvPublicKey, &c.Relay.PublicKey)
	set(EnvContentDir, &c.ContentDir)
	set(EnvSettingsPath, &c.Settings.Path)
	set(EnvMusic, &c.Music)

	backend := string(c.Settings.Backend)
	set(EnvSettingsBackend, &backend)
	c.Settings.Backend = settings.Backend(backend)

	bg := string(c.Background)
	set(EnvBackground, &bg)
	c.Background = background.Kind(bg)
}

func (c *Config) normalize() {
	def := Default()
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Transition.Entry <= 0 {
		c.Transition.Entry = def.Transition.Entry
	}
	if c.Transition.Exit <= 0 {
		c.Transition.Exit = def.Transition.Exit
	}
	if c.Settings.Backend == "" {
		c.Settings.Backend = def.Settings.Backend
	}
	if c.Route == "" {
		c.Route = def.Route
	}
}
