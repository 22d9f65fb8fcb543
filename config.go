package glimmer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// EmitterConfig is the full parameter bundle for one particle system run.
// It is validated once at construction and treated as immutable afterwards,
// except for Position which may be moved via ParticleSystem.SetPosition.
type EmitterConfig struct {
	Position         mgl32.Vec3
	PositionVariance mgl32.Vec3 // symmetric jitter box, per axis

	Velocity         mgl32.Vec3
	VelocityVariance mgl32.Vec3

	StartColor mgl32.Vec4
	EndColor   mgl32.Vec4

	StartSize float32
	EndSize   float32

	MinLife float32 // seconds
	MaxLife float32

	Rate         float32 // particles per second
	MaxParticles int     // pool capacity, fixed for the run

	Gravity mgl32.Vec3
	Drag    float32 // per-second linear damping

	Looping  bool
	Duration float32 // seconds; only meaningful when not looping, 0 = unlimited
}

// Validate checks the configuration and normalizes a reversed life range by
// swapping the bounds in place on the receiver. NewSystem validates its own
// copy, so a caller holding the original config will not observe the swap.
// Validation must pass before the config reaches a simulation loop.
func (c *EmitterConfig) Validate() error {
	if c.MaxParticles <= 0 {
		return fmt.Errorf("emitter config: max particles must be positive, got %d", c.MaxParticles)
	}
	if c.Rate < 0 {
		return fmt.Errorf("emitter config: emission rate must be non-negative, got %g", c.Rate)
	}
	if c.MinLife > c.MaxLife {
		c.MinLife, c.MaxLife = c.MaxLife, c.MinLife
	}
	return nil
}
