// Package music toggles the looping background track.
package music

import "errors"

// Volume is the playback volume while the track is on.
const Volume = 0.3

var ErrUnavailable = errors.New("music: track unavailable")

// Track is a playable, looping audio source. *audio.Player satisfies it.
type Track interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(v float64)
}

// Player owns the on/off state of the background track.
type Player struct {
	track Track
	on    bool
}

// New wraps track. A nil track gives a player that is always off.
func New(track Track) *Player {
	if track != nil {
		track.SetVolume(Volume)
	}
	return &Player{track: track}
}

// Toggle switches playback and returns the new state.
func (p *Player) Toggle() (bool, error) {
	if p == nil || p.track == nil {
		return false, ErrUnavailable
	}
	if p.on {
		p.track.Pause()
		p.on = false
		return false, nil
	}
	p.track.SetVolume(Volume)
	p.track.Play()
	p.on = true
	return true, nil
}

func (p *Player) On() bool { return p != nil && p.on }

func (p *Player) Available() bool { return p != nil && p.track != nil }

// Label is the button caption for the current state.
func (p *Player) Label() string {
	switch {
	case !p.Available():
		return "Music: n/a"
	case p.on:
		return "Music: on"
	default:
		return "Music: off"
	}
}

// Stop pauses the track if it is playing.
func (p *Player) Stop() {
	if p == nil || p.track == nil {
		return
	}
	if p.track.IsPlaying() {
		p.track.Pause()
	}
	p.on = false
}
