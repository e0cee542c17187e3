package popup

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type countingLock struct {
	locks, unlocks int
}

func (l *countingLock) Lock()   { l.locks++ }
func (l *countingLock) Unlock() { l.unlocks++ }

func (l *countingLock) held() bool { return l.locks > l.unlocks }

func quiet() *log.Logger { return log.New(io.Discard) }

func TestRegistryOncePerSession(t *testing.T) {
	r := NewRegistry()
	if !r.ShouldShow("/about") {
		t.Fatalf("fresh registry should show /about")
	}
	r.MarkShown("/about")
	if r.ShouldShow("/about") {
		t.Fatalf("/about should not show again after MarkShown")
	}
	if !r.ShouldShow("/skills") {
		t.Fatalf("other pages are unaffected")
	}
	if r.Claim("/about") {
		t.Fatalf("claim on a shown page must fail")
	}
	if !r.Claim("/skills") || r.Claim("/skills") {
		t.Fatalf("claim should succeed once")
	}

	session := r.Session()
	r.Reset()
	if !r.ShouldShow("/about") || r.Seen() != 0 {
		t.Fatalf("reset should forget every page")
	}
	if r.Session() == session || r.Session() == "" {
		t.Fatalf("reset should start a new session")
	}
}

func TestOpenLocksScrollUntilDismiss(t *testing.T) {
	lock := &countingLock{}
	p := New(NewRegistry(), lock, nil, quiet())

	if !p.Open("/about", Entry{Image: "characters/about.png", Text: "Hey!"}) {
		t.Fatalf("first open should show")
	}
	if !p.Visible() || !lock.held() {
		t.Fatalf("popup should be visible with scroll locked")
	}
	if p.Text() != "Hey!" || p.Image() != "characters/about.png" || p.Hint() != Hint {
		t.Fatalf("unexpected content %q %q %q", p.Text(), p.Image(), p.Hint())
	}

	p.Dismiss()
	p.Dismiss()
	if p.Visible() || lock.held() || lock.unlocks != 1 {
		t.Fatalf("dismiss should unlock exactly once, lock=%+v", lock)
	}

	if p.Open("/about", Entry{Text: "Hey!"}) {
		t.Fatalf("second open in the same session should not show")
	}
	if lock.locks != 1 {
		t.Fatalf("second open should not lock")
	}
}

func TestOpenDefaultText(t *testing.T) {
	p := New(NewRegistry(), nil, nil, quiet())
	p.Open("/cp", Entry{})
	if p.Text() != DefaultText {
		t.Fatalf("expected default text, got %q", p.Text())
	}
}

type panickingGreeter struct{}

func (panickingGreeter) Greet(string, Entry) (string, error) { panic("bad mascot") }

type failingGreeter struct{}

func (failingGreeter) Greet(string, Entry) (string, error) { return "", errors.New("boom") }

func TestOpenRecoversFromInitFailure(t *testing.T) {
	lock := &countingLock{}
	p := New(NewRegistry(), lock, panickingGreeter{}, quiet())
	if p.Open("/about", Entry{Text: "hi", Script: "text = 1"}) {
		t.Fatalf("panicking init should not show")
	}
	if p.Visible() || lock.held() {
		t.Fatalf("popup must stay hidden with scrolling restored")
	}
}

func TestGreeterErrorFallsBack(t *testing.T) {
	p := New(NewRegistry(), nil, failingGreeter{}, quiet())
	p.Open("/about", Entry{Text: "static", Script: "x"})
	if p.Text() != "static" {
		t.Fatalf("expected static fallback, got %q", p.Text())
	}
}

func TestTengoGreeter(t *testing.T) {
	g := NewTengoGreeter(quiet())
	g.Now = func() time.Time { return time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC) }

	cases := []struct {
		name   string
		script string
		want   string
	}{
		{
			name:   "morning",
			script: `if hour < 12 { text = "Good morning! Welcome to " + page }`,
			want:   "Good morning! Welcome to /about",
		},
		{
			name:   "untouched",
			script: `x := 1`,
			want:   "static",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := g.Greet("/about", Entry{Text: "static", Script: c.script})
			if err != nil {
				t.Fatalf("greet: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}

	if _, err := g.Greet("/about", Entry{Script: "text = "}); err == nil {
		t.Fatalf("expected compile error")
	}
}
