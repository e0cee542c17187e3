package noise

import "github.com/ojrac/opensimplex-go"

// Drift is a seeded simplex field used for slow positional wandering.
type Drift struct {
	noise opensimplex.Noise
}

func NewDrift(seed int64) *Drift {
	return &Drift{noise: opensimplex.New(seed)}
}

// At returns a value in [-1,1] for lane at time t. Different lanes give
// uncorrelated tracks.
func (d *Drift) At(lane int, t float64) float64 {
	if d == nil || d.noise == nil {
		return 0
	}
	v := d.noise.Eval2(float64(lane)*17.31, t)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
