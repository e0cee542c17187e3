package gfx

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDeviceCompilesShaderOnce(t *testing.T) {
	compileErr := errors.New("bad kage")
	tests := []struct {
		name    string
		src     []byte
		err     error
		wantErr bool
		want    int
	}{
		{name: "shared across programs", src: []byte("package main"), want: 1},
		{name: "failure remembered", src: []byte("package main"), err: compileErr, wantErr: true, want: 1},
		{name: "empty source never compiles", wantErr: true, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			shared := &ebiten.Shader{}
			d := NewDevice(tt.src)
			d.compile = func([]byte) (*ebiten.Shader, error) {
				calls++
				if tt.err != nil {
					return nil, tt.err
				}
				return shared, nil
			}
			for i := 0; i < 3; i++ {
				p, err := d.NewProgram()
				if tt.wantErr {
					if err == nil {
						t.Fatalf("program %d: expected error", i)
					}
					if tt.err != nil && !errors.Is(err, tt.err) {
						t.Fatalf("program %d: error %v does not wrap %v", i, err, tt.err)
					}
					continue
				}
				if err != nil {
					t.Fatalf("program %d: %v", i, err)
				}
				if got := p.(*program).shader; got != shared {
					t.Fatalf("program %d does not use the shared shader", i)
				}
				p.Dispose()
				if d.shader != shared {
					t.Fatalf("disposing a program released the device shader")
				}
			}
			if calls != tt.want {
				t.Fatalf("compiled %d times, want %d", calls, tt.want)
			}
		})
	}
}
