package settings

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/godbus/dbus/v5"
)

func quiet() *log.Logger { return log.New(io.Discard) }

func TestParseTheme(t *testing.T) {
	cases := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"light", Light, false},
		{" Dark ", Dark, false},
		{"purple", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := ParseTheme(c.in)
		if c.wantErr {
			if !errors.Is(err, ErrInvalidTheme) {
				t.Fatalf("ParseTheme(%q): expected ErrInvalidTheme, got %v", c.in, err)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Fatalf("ParseTheme(%q) = %q, %v", c.in, got, err)
		}
	}
}

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()
	file, err := NewFileStore(filepath.Join(dir, "nested", "settings.yaml"))
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	db, err := OpenSQLite(filepath.Join(dir, "settings.db"))
	if err != nil {
		t.Fatalf("sqlite store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   file,
		"sqlite": db,
	}
}

func TestStoresRoundTrip(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get(ThemeKey); err != nil || ok {
				t.Fatalf("empty store: ok=%v err=%v", ok, err)
			}
			if err := s.Set(ThemeKey, "dark"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ThemeKey, "light"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			if err := s.Set("other", "x"); err != nil {
				t.Fatalf("set other: %v", err)
			}
			v, ok, err := s.Get(ThemeKey)
			if err != nil || !ok || v != "light" {
				t.Fatalf("get: %q ok=%v err=%v", v, ok, err)
			}
		})
	}
}

func TestToggleThemePersists(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			cur := LoadTheme(s, StaticSignal(false), quiet())
			if cur != Light {
				t.Fatalf("expected light default, got %q", cur)
			}
			next, err := ToggleTheme(s, cur)
			if err != nil || next != Dark {
				t.Fatalf("toggle: %q %v", next, err)
			}
			if got := LoadTheme(s, StaticSignal(false), quiet()); got != Dark {
				t.Fatalf("expected stored dark on reload, got %q", got)
			}
			back, _ := ToggleTheme(s, next)
			if got := LoadTheme(s, StaticSignal(true), quiet()); got != back || back != Light {
				t.Fatalf("stored value should beat the OS signal, got %q", got)
			}
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	a, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := a.Set(ThemeKey, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	b, _ := NewFileStore(path)
	if v, ok, _ := b.Get(ThemeKey); !ok || v != "dark" {
		t.Fatalf("reopened store lost value: %q", v)
	}
	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(path), ".settings-*"))
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}
}

func TestLoadThemeSignalFallback(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Set(ThemeKey, "sepia")
	if got := LoadTheme(s, StaticSignal(true), quiet()); got != Dark {
		t.Fatalf("invalid stored theme should fall back to the signal, got %q", got)
	}
	if got := LoadTheme(nil, nil, quiet()); got != Light {
		t.Fatalf("no store and no signal should be light, got %q", got)
	}
}

type brokenStore struct{ MemoryStore }

func (*brokenStore) Set(string, string) error { return os.ErrPermission }

func TestToggleThemeWriteFailure(t *testing.T) {
	next, err := ToggleTheme(&brokenStore{}, Dark)
	if next != Light {
		t.Fatalf("theme should still toggle in memory, got %q", next)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("expected wrapped permission error, got %v", err)
	}
}

func TestSignals(t *testing.T) {
	env := func(v string, ok bool) EnvSignal {
		return EnvSignal{Lookup: func(string) (string, bool) { return v, ok }}
	}
	cases := []struct {
		name     string
		sig      DarkSignal
		dark, ok bool
	}{
		{"env_true", env("1", true), true, true},
		{"env_false", env("false", true), false, true},
		{"env_garbage", env("maybe", true), false, false},
		{"env_unset", env("", false), false, false},
		{"first_skips_silent", FirstSignal{env("", false), StaticSignal(true)}, true, true},
		{"first_empty", FirstSignal{}, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dark, ok := c.sig.PrefersDark()
			if dark != c.dark || ok != c.ok {
				t.Fatalf("got (%v,%v), want (%v,%v)", dark, ok, c.dark, c.ok)
			}
		})
	}
}

func TestColorSchemeUnwrap(t *testing.T) {
	cases := []struct {
		v    dbus.Variant
		want uint32
		ok   bool
	}{
		{dbus.MakeVariant(dbus.MakeVariant(uint32(1))), 1, true},
		{dbus.MakeVariant(uint32(2)), 2, true},
		{dbus.MakeVariant("dark"), 0, false},
	}
	for _, c := range cases {
		got, ok := colorScheme(c.v)
		if got != c.want || ok != c.ok {
			t.Fatalf("colorScheme(%v) = %v,%v", c.v, got, ok)
		}
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		backend Backend
		path    string
		wantErr bool
	}{
		{BackendMemory, "", false},
		{BackendFile, filepath.Join(dir, "s.yaml"), false},
		{BackendSQLite, filepath.Join(dir, "s.db"), false},
		{"redis", "", true},
	}
	for _, c := range cases {
		s, err := Open(c.backend, c.path)
		if c.wantErr {
			if err == nil {
				t.Fatalf("Open(%q): expected error", c.backend)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Open(%q): %v", c.backend, err)
		}
		s.Close()
	}
}
