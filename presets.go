package glimmer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// EffectType selects one of the built-in emitter presets.
type EffectType uint32

const (
	EffectFire EffectType = iota
	EffectSmoke
	EffectDust
	EffectSnow
	EffectSparks
)

func (e EffectType) String() string {
	switch e {
	case EffectFire:
		return "fire"
	case EffectSmoke:
		return "smoke"
	case EffectDust:
		return "dust"
	case EffectSnow:
		return "snow"
	case EffectSparks:
		return "sparks"
	}
	return "unknown"
}

// Preset returns the fully populated emitter configuration for a built-in
// effect. The table is pure tuning data; callers wanting different behavior
// supply their own EmitterConfig instead. Unknown types fall back to fire.
func Preset(effect EffectType) EmitterConfig {
	cfg := EmitterConfig{
		PositionVariance: mgl32.Vec3{1, 1, 1},
		Velocity:         mgl32.Vec3{0, 5, 0},
		VelocityVariance: mgl32.Vec3{1, 1, 1},
		StartColor:       mgl32.Vec4{1, 1, 1, 1},
		EndColor:         mgl32.Vec4{1, 1, 1, 0},
		StartSize:        1.0,
		EndSize:          0.1,
		MinLife:          1.0,
		MaxLife:          3.0,
		Rate:             50,
		MaxParticles:     1000,
		Gravity:          mgl32.Vec3{0, -9.81, 0},
		Drag:             0.1,
		Looping:          true,
	}

	switch effect {
	case EffectSmoke:
		cfg.Velocity = mgl32.Vec3{0, 3, 0}
		cfg.VelocityVariance = mgl32.Vec3{1, 1, 1}
		cfg.PositionVariance = mgl32.Vec3{0.3, 0, 0.3}
		cfg.StartColor = mgl32.Vec4{0.3, 0.3, 0.3, 0.8}
		cfg.EndColor = mgl32.Vec4{0.1, 0.1, 0.1, 0}
		cfg.StartSize = 0.5
		cfg.EndSize = 3.0
		cfg.MinLife = 2.0
		cfg.MaxLife = 4.0
		cfg.Gravity = mgl32.Vec3{0, 0.5, 0} // smoke drifts up
		cfg.Drag = 0.2
		cfg.Rate = 20
		cfg.MaxParticles = 200

	case EffectDust:
		cfg.Velocity = mgl32.Vec3{15, 2, 0} // wind direction
		cfg.VelocityVariance = mgl32.Vec3{5, 2, 3}
		cfg.PositionVariance = mgl32.Vec3{50, 0.5, 50}
		cfg.StartColor = mgl32.Vec4{0.76, 0.70, 0.50, 0.6}
		cfg.EndColor = mgl32.Vec4{0.76, 0.70, 0.50, 0}
		cfg.StartSize = 0.3
		cfg.EndSize = 0.1
		cfg.MinLife = 2.0
		cfg.MaxLife = 5.0
		cfg.Gravity = mgl32.Vec3{0, -2, 0}
		cfg.Drag = 0.1
		cfg.Rate = 100
		cfg.MaxParticles = 1000

	case EffectSnow:
		cfg.Velocity = mgl32.Vec3{0, -3, 0}
		cfg.VelocityVariance = mgl32.Vec3{2, 1, 2}
		cfg.PositionVariance = mgl32.Vec3{80, 50, 80}
		cfg.StartColor = mgl32.Vec4{1, 1, 1, 0.9}
		cfg.EndColor = mgl32.Vec4{1, 1, 1, 0}
		cfg.StartSize = 0.3
		cfg.EndSize = 0.2
		cfg.MinLife = 5.0
		cfg.MaxLife = 10.0
		cfg.Gravity = mgl32.Vec3{0, -1, 0}
		cfg.Drag = 0.3
		cfg.Rate = 50
		cfg.MaxParticles = 800

	case EffectSparks:
		cfg.Velocity = mgl32.Vec3{0, 15, 0}
		cfg.VelocityVariance = mgl32.Vec3{8, 5, 8}
		cfg.PositionVariance = mgl32.Vec3{0.2, 0, 0.2}
		cfg.StartColor = mgl32.Vec4{1, 0.9, 0.3, 1}
		cfg.EndColor = mgl32.Vec4{1, 0.3, 0, 0}
		cfg.StartSize = 0.2
		cfg.EndSize = 0.05
		cfg.MinLife = 0.3
		cfg.MaxLife = 1.0
		cfg.Gravity = mgl32.Vec3{0, -15, 0}
		cfg.Drag = 0.05
		cfg.Rate = 150
		cfg.MaxParticles = 300

	default: // EffectFire
		cfg.Velocity = mgl32.Vec3{0, 8, 0}
		cfg.VelocityVariance = mgl32.Vec3{2, 3, 2}
		cfg.PositionVariance = mgl32.Vec3{0.5, 0.1, 0.5}
		cfg.StartColor = mgl32.Vec4{1, 0.6, 0.1, 1}
		cfg.EndColor = mgl32.Vec4{1, 0, 0, 0}
		cfg.StartSize = 1.5
		cfg.EndSize = 0.2
		cfg.MinLife = 0.5
		cfg.MaxLife = 1.5
		cfg.Gravity = mgl32.Vec3{0, 2, 0} // fire rises
		cfg.Drag = 0.5
		cfg.Rate = 80
		cfg.MaxParticles = 500
	}

	return cfg
}
