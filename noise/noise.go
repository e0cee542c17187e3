// Package noise provides the deterministic scalar fields that drive the
// organic motion of the overlay and backgrounds.
package noise

import (
	"math"

	"github.com/vignesh-b/portfolio/common"
)

// Octaves is the number of value-noise layers summed by FBM.
const Octaves = 5

// Hash maps an integer lattice point to a pseudo-random value in [0,1).
func Hash(ix, iy int) float64 {
	return hash(float64(ix), float64(iy))
}

func hash(x, y float64) float64 {
	return common.Fract(math.Sin(x*12.9898+y*78.233) * 43758.5453)
}

// Value is smoothed value noise: a cubic blend of the four lattice hashes
// around (x, y).
func Value(x, y float64) float64 {
	ix, iy := math.Floor(x), math.Floor(y)
	fx, fy := x-ix, y-iy
	fx = fx * fx * (3 - 2*fx)
	fy = fy * fy * (3 - 2*fy)

	a := hash(ix, iy)
	b := hash(ix+1, iy)
	c := hash(ix, iy+1)
	d := hash(ix+1, iy+1)
	return common.Lerp(common.Lerp(a, b, fx), common.Lerp(c, d, fx), fy)
}

// FBM sums Octaves layers of value noise, doubling frequency and halving
// amplitude each layer. The result lies in [0, 0.96875).
func FBM(x, y float64) float64 {
	v := 0.0
	a := 0.5
	for i := 0; i < Octaves; i++ {
		v += a * Value(x, y)
		x *= 2
		y *= 2
		a *= 0.5
	}
	return v
}

// Field is the time-evolving noise field sampled by the warp program.
type Field struct{}

// Sample returns the field at (x, y) shifted diagonally by t.
func (Field) Sample(x, y, t float64) float64 {
	return FBM(x+t, y+t)
}
