// Package settings persists the user's theme preference and reads the
// operating system's dark-mode hint.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// ThemeKey is the settings key holding the theme.
const ThemeKey = "theme"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("settings: invalid theme")

// ParseTheme accepts "light" or "dark", ignoring case and surrounding space.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) IsDark() bool { return t == Dark }

// LoadTheme returns the stored theme. Without a valid stored value the OS
// signal decides. Store errors are logged and treated as a missing value.
func LoadTheme(store Store, signal DarkSignal, logger *log.Logger) Theme {
	if logger == nil {
		logger = log.Default()
	}
	if store != nil {
		v, ok, err := store.Get(ThemeKey)
		switch {
		case err != nil:
			logger.Warn("read theme", "err", err)
		case ok:
			t, err := ParseTheme(v)
			if err == nil {
				return t
			}
			logger.Warn("ignoring stored theme", "err", err)
		}
	}
	if signal != nil {
		if dark, ok := signal.PrefersDark(); ok && dark {
			return Dark
		}
	}
	return Light
}

// ToggleTheme persists and returns the opposite of current. A failed write
// is returned alongside the new theme so the caller can still apply it.
func ToggleTheme(store Store, current Theme) (Theme, error) {
	next := current.Opposite()
	if store == nil {
		return next, nil
	}
	if err := store.Set(ThemeKey, string(next)); err != nil {
		return next, fmt.Errorf("settings: save theme: %w", err)
	}
	return next, nil
}
