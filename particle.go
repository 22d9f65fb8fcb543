package glimmer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Particle is the per-particle simulation state. Particles live inside a
// ParticleSystem's pool and are recycled in place; a dead particle keeps its
// stale fields until the slot is reused.
type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Color    mgl32.Vec4 // RGBA, recomputed from age every update
	Life     float32    // seconds remaining; > 0 means alive
	MaxLife  float32    // life drawn at birth, used to normalize age
	Size     float32    // billboard half-extent scale
}

func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Age returns the normalized lifetime fraction: 0 at birth, 1 at death.
// A non-positive MaxLife counts as fully aged.
func (p *Particle) Age() float32 {
	if p.MaxLife > 0 {
		return 1 - p.Life/p.MaxLife
	}
	return 1
}
