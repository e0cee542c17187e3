package noise

import (
	"math"
	"testing"
)

func TestHashDeterministic(t *testing.T) {
	for _, p := range [][2]int{{0, 0}, {1, 0}, {-3, 7}, {1024, -512}} {
		a := Hash(p[0], p[1])
		b := Hash(p[0], p[1])
		if a != b {
			t.Fatalf("Hash(%d,%d) not deterministic: %v vs %v", p[0], p[1], a, b)
		}
		if a < 0 || a >= 1 {
			t.Fatalf("Hash(%d,%d) = %v, want [0,1)", p[0], p[1], a)
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	var f Field
	cases := []struct {
		name    string
		x, y, t float64
	}{
		{"origin", 0, 0, 0},
		{"fractional", 3.25, 7.5, 1.2},
		{"negative", -4.1, -0.3, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := f.Sample(c.x, c.y, c.t)
			b := f.Sample(c.x, c.y, c.t)
			if a != b {
				t.Fatalf("expected identical samples, got %v and %v", a, b)
			}
		})
	}
}

func TestFBMBounded(t *testing.T) {
	for x := -8.0; x < 8; x += 0.37 {
		for y := -8.0; y < 8; y += 0.41 {
			v := FBM(x, y)
			if v < 0 || v >= 1 {
				t.Fatalf("FBM(%v,%v) = %v, want [0,1)", x, y, v)
			}
		}
	}
}

func TestValueContinuousAcrossLattice(t *testing.T) {
	const eps = 1e-6
	for _, x := range []float64{1, 2, 5} {
		left := Value(x-eps, 0.5)
		right := Value(x+eps, 0.5)
		if math.Abs(left-right) > 1e-3 {
			t.Fatalf("seam at x=%v: %v vs %v", x, left, right)
		}
	}
}

func TestValueMatchesLatticeHash(t *testing.T) {
	if got, want := Value(3, 4), Hash(3, 4); got != want {
		t.Fatalf("Value at lattice point = %v, want hash %v", got, want)
	}
}

func TestDriftRange(t *testing.T) {
	d := NewDrift(42)
	for lane := 0; lane < 4; lane++ {
		for tt := 0.0; tt < 20; tt += 0.5 {
			v := d.At(lane, tt)
			if v < -1 || v > 1 {
				t.Fatalf("drift lane %d at %v = %v, want [-1,1]", lane, tt, v)
			}
		}
	}
	if NewDrift(42).At(1, 3.5) != d.At(1, 3.5) {
		t.Fatalf("drift must be deterministic for a seed")
	}
}
