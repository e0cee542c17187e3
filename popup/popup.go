// Package popup shows a once-per-session mascot greeting for each page.
package popup

import (
	"fmt"

	"github.com/charmbracelet/log"
)

const (
	DefaultText = "Welcome!"
	Hint        = "(Click anywhere to continue)"
)

// Entry configures the popup for one page.
type Entry struct {
	Image  string `yaml:"image"`
	Text   string `yaml:"text"`
	Script string `yaml:"script,omitempty"`
}

// ScrollLock stops page scrolling while the popup is visible.
type ScrollLock interface {
	Lock()
	Unlock()
}

// Greeter produces the greeting for an entry that carries a script.
type Greeter interface {
	Greet(page string, e Entry) (string, error)
}

// Popup is the single popup overlay shared by every page.
type Popup struct {
	reg     *Registry
	lock    ScrollLock
	greeter Greeter
	logger  *log.Logger

	visible bool
	locked  bool
	page    string
	text    string
	image   string
}

// New creates a hidden popup. lock and greeter may be nil.
func New(reg *Registry, lock ScrollLock, greeter Greeter, logger *log.Logger) *Popup {
	if logger == nil {
		logger = log.Default()
	}
	return &Popup{reg: reg, lock: lock, greeter: greeter, logger: logger}
}

// Open shows the popup for page if it has not been shown this session.
// Any failure while preparing it leaves the popup hidden with scrolling
// restored.
func (p *Popup) Open(page string, e Entry) (shown bool) {
	if p == nil {
		return false
	}
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error("popup init", "page", page, "err", fmt.Sprint(rec))
			p.hide()
			shown = false
		}
	}()

	if !p.reg.Claim(page) {
		return false
	}
	p.hide()

	text := e.Text
	if e.Script != "" && p.greeter != nil {
		greeting, err := p.greeter.Greet(page, e)
		if err != nil {
			p.logger.Warn("popup script failed", "page", page, "err", err)
		} else if greeting != "" {
			text = greeting
		}
	}
	if text == "" {
		text = DefaultText
	}

	p.page, p.text, p.image = page, text, e.Image
	if p.lock != nil {
		p.lock.Lock()
		p.locked = true
	}
	p.visible = true
	p.logger.Debug("popup shown", "page", page, "session", p.reg.Session())
	return true
}

// Dismiss hides the popup and restores scrolling. Safe to call repeatedly.
func (p *Popup) Dismiss() {
	if p == nil {
		return
	}
	p.hide()
}

func (p *Popup) hide() {
	p.visible = false
	if p.locked {
		p.locked = false
		p.lock.Unlock()
	}
}

func (p *Popup) Visible() bool { return p != nil && p.visible }

func (p *Popup) Page() string  { return p.page }
func (p *Popup) Text() string  { return p.text }
func (p *Popup) Image() string { return p.image }
func (p *Popup) Hint() string  { return Hint }
