package music

import (
	"errors"
	"testing"
)

type fakeTrack struct {
	playing bool
	volume  float64
	plays   int
}

func (f *fakeTrack) Play()               { f.playing = true; f.plays++ }
func (f *fakeTrack) Pause()              { f.playing = false }
func (f *fakeTrack) IsPlaying() bool     { return f.playing }
func (f *fakeTrack) SetVolume(v float64) { f.volume = v }

func TestToggle(t *testing.T) {
	track := &fakeTrack{}
	p := New(track)
	if p.On() || p.Label() != "Music: off" {
		t.Fatalf("player should start off")
	}

	steps := []struct {
		wantOn    bool
		wantLabel string
	}{
		{true, "Music: on"},
		{false, "Music: off"},
		{true, "Music: on"},
	}
	for i, s := range steps {
		on, err := p.Toggle()
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if on != s.wantOn || track.playing != s.wantOn || p.Label() != s.wantLabel {
			t.Fatalf("step %d: on=%v playing=%v label=%q", i, on, track.playing, p.Label())
		}
	}
	if track.volume != Volume {
		t.Fatalf("expected volume %v, got %v", Volume, track.volume)
	}

	p.Stop()
	if track.playing || p.On() {
		t.Fatalf("stop should pause the track")
	}
}

func TestUnavailable(t *testing.T) {
	p := New(nil)
	on, err := p.Toggle()
	if on || !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v %v", on, err)
	}
	if p.Available() || p.Label() != "Music: n/a" {
		t.Fatalf("unexpected label %q", p.Label())
	}
	p.Stop()
}
