package assets

import (
	"path/filepath"
	"testing"
)

func TestDirPath(t *testing.T) {
	d := Dir("static")
	cases := map[string]string{
		"characters/about.png":   filepath.Join("static", "characters", "about.png"),
		"/characters/about.png":  filepath.Join("static", "characters", "about.png"),
		"assets/music/theme.mp3": filepath.Join("static", "music", "theme.mp3"),
	}
	for in, want := range cases {
		if got := d.Path(in); got != want {
			t.Fatalf("Path(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWarpShaderEmbedded(t *testing.T) {
	if len(WarpShader) == 0 {
		t.Fatalf("warp shader not embedded")
	}
}
