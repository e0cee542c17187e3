package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vignesh-b/portfolio/transition"
)

func TestRenderWritesFramesUntilSettled(t *testing.T) {
	tests := []struct {
		phase string
		want  int
	}{
		// 100ms at 10ms per frame: frames at 0..100ms.
		{phase: "entry", want: 11},
		{phase: "exit", want: 11},
	}
	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			dir := t.TempDir()
			n, err := render(renderOpts{
				width:      16,
				height:     8,
				step:       10 * time.Millisecond,
				phase:      tt.phase,
				out:        dir,
				downsample: 4,
				transition: transition.Config{Entry: 100 * time.Millisecond, Exit: 100 * time.Millisecond},
			})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if n != tt.want {
				t.Fatalf("frames = %d, want %d", n, tt.want)
			}
			files, err := filepath.Glob(filepath.Join(dir, tt.phase+"_*.png"))
			if err != nil {
				t.Fatalf("glob: %v", err)
			}
			if len(files) != tt.want {
				t.Fatalf("wrote %d files, want %d", len(files), tt.want)
			}
			if _, err := os.Stat(filepath.Join(dir, tt.phase+"_0000.png")); err != nil {
				t.Fatalf("first frame missing: %v", err)
			}
		})
	}
}

func TestRenderRejectsUnknownPhase(t *testing.T) {
	if _, err := render(renderOpts{width: 4, height: 4, step: time.Millisecond, phase: "sideways", out: t.TempDir()}); err == nil {
		t.Fatalf("expected error for unknown phase")
	}
}
