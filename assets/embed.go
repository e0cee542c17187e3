// Package assets provides the embedded warp shader and loads optional
// images and audio from an assets directory on disk.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed shaders/warp.kage
var WarpShader []byte

const sampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

func audioCtx() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// Dir resolves asset paths against a base directory.
type Dir string

// Path returns the on-disk location of an assets-relative path.
func (d Dir) Path(path string) string {
	return filepath.Join(string(d), filepath.FromSlash(cleanAssetPath(path)))
}

// LoadImage decodes a PNG or JPEG from the assets directory.
func (d Dir) LoadImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("assets: empty image path")
	}
	b, err := os.ReadFile(d.Path(path))
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadAudioPlayer decodes a WAV or MP3 and returns a player that loops it
// forever.
func (d Dir) LoadAudioPlayer(path string) (*audio.Player, error) {
	if path == "" {
		return nil, fmt.Errorf("assets: empty audio path")
	}
	b, err := os.ReadFile(d.Path(path))
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}

	ctx := audioCtx()
	reader := bytes.NewReader(b)
	clean := strings.ToLower(cleanAssetPath(path))

	switch {
	case strings.HasSuffix(clean, ".wav"):
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	case strings.HasSuffix(clean, ".mp3"):
		stream, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode mp3 %q: %w", path, err)
		}
		return ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	default:
		return nil, fmt.Errorf("assets: unsupported audio format %q", path)
	}
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "/")
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
