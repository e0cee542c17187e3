package background

import (
	"image/color"
	"math/rand"

	"github.com/jakecoffman/cp"
)

const (
	particleCount = 70
	// Velocities are in px per 60Hz frame, scaled to px/s for the space.
	particleSpeed = 0.3 * 60
	wallRadius    = 1.0
)

type particle struct {
	body   *cp.Body
	shape  *cp.Shape
	radius float64
	swatch int
}

// ParticleField is a zero-gravity Chipmunk space of small circles that
// bounce off the viewport edges but pass through each other.
type ParticleField struct {
	rng       *rand.Rand
	space     *cp.Space
	walls     []*cp.Shape
	particles []particle
	palette   Palette
	w, h      float64
}

func NewParticleField(seed int64) *ParticleField {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &ParticleField{
		rng:     rand.New(rand.NewSource(seed)),
		space:   space,
		palette: Light,
	}
}

func (f *ParticleField) SetPalette(p Palette) { f.palette = p }

// Resize rebuilds the walls. Particles are spawned on the first non-empty
// size and pulled inside the new bounds afterwards.
func (f *ParticleField) Resize(w, h int) {
	if f == nil || w <= 0 || h <= 0 {
		return
	}
	if float64(w) == f.w && float64(h) == f.h {
		return
	}
	f.w, f.h = float64(w), float64(h)
	f.buildWalls()
	if len(f.particles) == 0 {
		f.spawn()
		return
	}
	for i := range f.particles {
		f.contain(&f.particles[i])
	}
}

func (f *ParticleField) buildWalls() {
	for _, s := range f.walls {
		f.space.RemoveShape(s)
	}
	f.walls = f.walls[:0]
	segs := []struct{ a, b cp.Vector }{
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: f.w, Y: 0}},
		{cp.Vector{X: 0, Y: f.h}, cp.Vector{X: f.w, Y: f.h}},
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: f.h}},
		{cp.Vector{X: f.w, Y: 0}, cp.Vector{X: f.w, Y: f.h}},
	}
	for _, seg := range segs {
		shape := cp.NewSegment(f.space.StaticBody, seg.a, seg.b, wallRadius)
		shape.SetElasticity(1)
		shape.SetFriction(0)
		f.space.AddShape(shape)
		f.walls = append(f.walls, shape)
	}
}

func (f *ParticleField) spawn() {
	// One group keeps particles from colliding with each other.
	filter := cp.NewShapeFilter(1, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
	for i := 0; i < particleCount; i++ {
		r := f.rng.Float64()*3 + 1
		body := cp.NewBody(1, cp.MomentForCircle(1, 0, r, cp.Vector{}))
		body.SetPosition(cp.Vector{
			X: r + f.rng.Float64()*(f.w-2*r),
			Y: r + f.rng.Float64()*(f.h-2*r),
		})
		body.SetVelocity((f.rng.Float64()-0.5)*2*particleSpeed, (f.rng.Float64()-0.5)*2*particleSpeed)
		shape := cp.NewCircle(body, r, cp.Vector{})
		shape.SetElasticity(1)
		shape.SetFriction(0)
		shape.SetFilter(filter)
		f.space.AddBody(body)
		f.space.AddShape(shape)
		f.particles = append(f.particles, particle{
			body:   body,
			shape:  shape,
			radius: r,
			swatch: f.rng.Intn(4),
		})
	}
}

// Step advances the space by dt seconds.
func (f *ParticleField) Step(dt float64) {
	if f == nil || dt <= 0 || len(f.particles) == 0 {
		return
	}
	f.space.Step(dt)
	for i := range f.particles {
		f.contain(&f.particles[i])
	}
}

// contain pulls a particle that tunnelled through a wall back inside and
// points its velocity inward.
func (f *ParticleField) contain(p *particle) {
	pos := p.body.Position()
	vel := p.body.Velocity()
	minX, maxX := p.radius, f.w-p.radius
	minY, maxY := p.radius, f.h-p.radius
	if maxX < minX {
		minX, maxX = f.w/2, f.w/2
	}
	if maxY < minY {
		minY, maxY = f.h/2, f.h/2
	}
	moved := false
	if pos.X < minX {
		pos.X, vel.X, moved = minX, abs(vel.X), true
	} else if pos.X > maxX {
		pos.X, vel.X, moved = maxX, -abs(vel.X), true
	}
	if pos.Y < minY {
		pos.Y, vel.Y, moved = minY, abs(vel.Y), true
	} else if pos.Y > maxY {
		pos.Y, vel.Y, moved = maxY, -abs(vel.Y), true
	}
	if moved {
		p.body.SetPosition(pos)
		p.body.SetVelocityVector(vel)
	}
}

func (f *ParticleField) Paint(dst Canvas) {
	dst.Fill(f.palette.Base)
	if len(f.palette.Dots) == 0 {
		return
	}
	for _, p := range f.particles {
		pos := p.body.Position()
		var c color.Color = f.palette.Dots[p.swatch%len(f.palette.Dots)]
		dst.FillCircle(float32(pos.X), float32(pos.Y), float32(p.radius), c)
	}
}

// Positions returns particle centres and radii, for tests and debugging.
func (f *ParticleField) Positions() (centres []Point, radii []float64) {
	for _, p := range f.particles {
		pos := p.body.Position()
		centres = append(centres, Point{X: float32(pos.X), Y: float32(pos.Y)})
		radii = append(radii, p.radius)
	}
	return centres, radii
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
