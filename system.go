package glimmer

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// ParticleSystem owns a fixed-capacity particle pool, emits at a
// time-averaged rate, integrates simple physics each frame and produces
// billboard geometry for the current alive set.
//
// It is single-threaded and frame-driven: call Update once per frame, then
// GenerateVertices with the camera basis. The pool is allocated once at
// construction and never resized.
type ParticleSystem struct {
	particles []Particle
	vertices  []ParticleVertex // 4 per alive particle
	indices   []uint32         // 6 per alive particle

	config EmitterConfig
	active bool

	emissionAcc float32 // fractional emission credit carried across frames
	systemTime  float32 // elapsed since (re)initialization
	alive       int
	emitted     uint64

	rng *rand.Rand
}

// NewSystem creates a particle system from a custom configuration. The
// configuration is validated here; validation failures never reach the
// simulation loop.
func NewSystem(cfg EmitterConfig) (*ParticleSystem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ps := &ParticleSystem{
		particles: make([]Particle, cfg.MaxParticles),
		vertices:  make([]ParticleVertex, 0, cfg.MaxParticles*4),
		indices:   make([]uint32, 0, cfg.MaxParticles*6),
		config:    cfg,
		active:    true,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	return ps, nil
}

// NewSystemFromPreset creates a particle system from a built-in effect,
// positioned at the given world position. Presets are valid by construction.
func NewSystemFromPreset(effect EffectType, position mgl32.Vec3) *ParticleSystem {
	cfg := Preset(effect)
	cfg.Position = position
	ps, err := NewSystem(cfg)
	if err != nil {
		// Preset table invariant broken; not a runtime condition.
		panic(err)
	}
	return ps
}

// Reseed replaces the private random stream. Useful for deterministic tests;
// the stream is never shared across systems.
func (ps *ParticleSystem) Reseed(seed int64) {
	ps.rng = rand.New(rand.NewSource(seed))
}

// SetPosition moves the spawn point without touching the rest of the
// configuration.
func (ps *ParticleSystem) SetPosition(pos mgl32.Vec3) {
	ps.config.Position = pos
}

func (ps *ParticleSystem) Config() EmitterConfig { return ps.config }

func (ps *ParticleSystem) Start() { ps.active = true }
func (ps *ParticleSystem) Stop()  { ps.active = false }

func (ps *ParticleSystem) IsActive() bool { return ps.active }

// AliveCount reports the number of live particles in the pool.
func (ps *ParticleSystem) AliveCount() int { return ps.alive }

// EmittedTotal reports the cumulative number of particles emitted since
// construction. The long-run average tracks Rate * elapsed time.
func (ps *ParticleSystem) EmittedTotal() uint64 { return ps.emitted }

// Update advances the simulation by dt seconds: duration expiry, emission,
// then physics and lifetime for every live particle. dt must be
// non-negative.
func (ps *ParticleSystem) Update(dt float32) {
	if !ps.active && ps.alive == 0 {
		return
	}

	ps.systemTime += dt

	// One-shot systems shut off after their duration; particles already in
	// flight keep simulating to natural death.
	if !ps.config.Looping && ps.config.Duration > 0 && ps.systemTime > ps.config.Duration {
		ps.active = false
	}

	if ps.active {
		ps.emissionAcc += ps.config.Rate * dt
		for ps.emissionAcc >= 1 {
			ps.emit()
			ps.emissionAcc--
		}
	}

	// Damping factor clamped to [0,1]: a huge frame delta stalls particles
	// instead of reversing them.
	damp := 1 - ps.config.Drag*dt
	if damp < 0 {
		damp = 0
	} else if damp > 1 {
		damp = 1
	}
	gravityStep := ps.config.Gravity.Mul(dt)

	for i := range ps.particles {
		p := &ps.particles[i]
		if !p.Alive() {
			continue
		}

		p.Velocity = p.Velocity.Add(gravityStep).Mul(damp)
		p.Position = p.Position.Add(p.Velocity.Mul(dt))

		p.Life -= dt
		if !p.Alive() {
			ps.alive--
		}

		age := p.Age()
		p.Color = lerpVec4(ps.config.StartColor, ps.config.EndColor, age)
		p.Size = lerp(ps.config.StartSize, ps.config.EndSize, age)
	}
}

// emit recycles the first dead slot in storage order. A full pool drops the
// request silently; that is the density cap, not an error.
func (ps *ParticleSystem) emit() {
	for i := range ps.particles {
		p := &ps.particles[i]
		if p.Alive() {
			continue
		}

		cfg := &ps.config
		p.Position = cfg.Position.Add(mgl32.Vec3{
			ps.randRange(-cfg.PositionVariance.X(), cfg.PositionVariance.X()),
			ps.randRange(-cfg.PositionVariance.Y(), cfg.PositionVariance.Y()),
			ps.randRange(-cfg.PositionVariance.Z(), cfg.PositionVariance.Z()),
		})
		p.Velocity = cfg.Velocity.Add(mgl32.Vec3{
			ps.randRange(-cfg.VelocityVariance.X(), cfg.VelocityVariance.X()),
			ps.randRange(-cfg.VelocityVariance.Y(), cfg.VelocityVariance.Y()),
			ps.randRange(-cfg.VelocityVariance.Z(), cfg.VelocityVariance.Z()),
		})
		p.Life = ps.randRange(cfg.MinLife, cfg.MaxLife)
		p.MaxLife = p.Life
		p.Color = cfg.StartColor
		p.Size = cfg.StartSize

		// A non-positive life range yields a stillborn particle; it never
		// reaches the death decrement in Update, so it must not be counted.
		if p.Alive() {
			ps.alive++
			ps.emitted++
		}
		return
	}
}

func (ps *ParticleSystem) randRange(min, max float32) float32 {
	return min + ps.rng.Float32()*(max-min)
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func lerpVec4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return mgl32.Vec4{
		lerp(a.X(), b.X(), t),
		lerp(a.Y(), b.Y(), t),
		lerp(a.Z(), b.Z(), t),
		lerp(a.W(), b.W(), t),
	}
}
