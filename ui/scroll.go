package ui

import "github.com/vignesh-b/portfolio/common"

// WheelStep is the scroll fraction moved per wheel notch.
const WheelStep = 0.08

// Scroller tracks the page scroll position as a fraction of the scrollable
// height. It implements popup.ScrollLock: while any lock is held, wheel
// input is ignored.
type Scroller struct {
	top   float64
	locks int
}

func (s *Scroller) Lock() { s.locks++ }

func (s *Scroller) Unlock() {
	if s.locks > 0 {
		s.locks--
	}
}

// Locked reports whether scrolling is disabled.
func (s *Scroller) Locked() bool { return s.locks > 0 }

// Wheel applies one frame of wheel movement. Positive dy scrolls up, as
// ebiten.Wheel reports it. It reports whether the position changed.
func (s *Scroller) Wheel(dy float64) bool {
	if s.Locked() || dy == 0 {
		return false
	}
	prev := s.top
	s.top = common.Clamp01(s.top - dy*WheelStep)
	return s.top != prev
}

// Top returns the position in [0,1].
func (s *Scroller) Top() float64 { return s.top }

// Reset returns to the top of the page.
func (s *Scroller) Reset() { s.top = 0 }
