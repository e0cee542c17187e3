package settings

import (
	"os"
	"strconv"
	"strings"

	"github.com/godbus/dbus/v5"
)

// DarkSignal reports the environment's dark-mode preference. ok is false
// when the source has no opinion.
type DarkSignal interface {
	PrefersDark() (dark, ok bool)
}

// StaticSignal always answers with its value.
type StaticSignal bool

func (s StaticSignal) PrefersDark() (bool, bool) { return bool(s), true }

// EnvPrefersDark overrides the OS hint when set to a boolean.
const EnvPrefersDark = "PORTFOLIO_PREFERS_DARK"

// EnvSignal reads EnvPrefersDark.
type EnvSignal struct {
	Lookup func(string) (string, bool)
}

func (e EnvSignal) PrefersDark() (bool, bool) {
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, ok := lookup(EnvPrefersDark)
	if !ok {
		return false, false
	}
	dark, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return dark, true
}

// FirstSignal asks each signal in order and returns the first answer.
type FirstSignal []DarkSignal

func (f FirstSignal) PrefersDark() (bool, bool) {
	for _, s := range f {
		if s == nil {
			continue
		}
		if dark, ok := s.PrefersDark(); ok {
			return dark, true
		}
	}
	return false, false
}

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalRead      = "org.freedesktop.portal.Settings.Read"
	appearanceNS    = "org.freedesktop.appearance"
	colorSchemeKey  = "color-scheme"
	colorSchemeDark = 1
)

// PortalSignal reads the color-scheme setting from the freedesktop
// settings portal on the session bus.
type PortalSignal struct{}

func (PortalSignal) PrefersDark() (bool, bool) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return false, false
	}
	obj := conn.Object(portalDest, dbus.ObjectPath(portalPath))
	var v dbus.Variant
	if err := obj.Call(portalRead, 0, appearanceNS, colorSchemeKey).Store(&v); err != nil {
		return false, false
	}
	scheme, ok := colorScheme(v)
	if !ok {
		return false, false
	}
	return scheme == colorSchemeDark, true
}

// colorScheme unwraps the portal's nested variants down to the uint32.
func colorScheme(v dbus.Variant) (uint32, bool) {
	val := v.Value()
	for i := 0; i < 3; i++ {
		inner, ok := val.(dbus.Variant)
		if !ok {
			break
		}
		val = inner.Value()
	}
	n, ok := val.(uint32)
	return n, ok
}
