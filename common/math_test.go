package common

import "testing"

func TestSmoothstep(t *testing.T) {
	cases := []struct {
		name      string
		e0, e1, x float64
		want      float64
	}{
		{"below", 0, 1, -1, 0},
		{"above", 0, 1, 2, 1},
		{"mid", 0, 1, 0.5, 0.5},
		{"reversed_edges_start", 0.8, 0, 0, 1},
		{"reversed_edges_end", 0.8, 0, 0.8, 0},
		{"degenerate", 0.5, 0.5, 0.6, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Smoothstep(c.e0, c.e1, c.x); got != c.want {
				t.Fatalf("Smoothstep(%v,%v,%v) = %v, want %v", c.e0, c.e1, c.x, got, c.want)
			}
		})
	}
}

func TestFract(t *testing.T) {
	for _, x := range []float64{-2.75, -0.5, 0, 0.25, 3.999} {
		f := Fract(x)
		if f < 0 || f >= 1 {
			t.Fatalf("Fract(%v) = %v, want [0,1)", x, f)
		}
	}
}
