package glimmer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Phase partitions the day cycle into quarters.
type Phase uint32

const (
	PhaseDawn Phase = iota // progress [0, 0.25)
	PhaseDay               // [0.25, 0.5)
	PhaseDusk              // [0.5, 0.75)
	PhaseNight             // [0.75, 1)
)

func (p Phase) String() string {
	switch p {
	case PhaseDawn:
		return "dawn"
	case PhaseDay:
		return "day"
	case PhaseDusk:
		return "dusk"
	case PhaseNight:
		return "night"
	}
	return "unknown"
}

// LightState is the current sun/moon lighting snapshot for the renderer.
type LightState struct {
	Position        mgl32.Vec3
	Color           mgl32.Vec3
	Intensity       float32
	AmbientStrength float32
	SkyColor        mgl32.Vec3
	SunActive       bool // false means the moon is the active light
}

// Light and sky color ramps.
var (
	sunColorNoon = mgl32.Vec3{1, 0.95, 0.9}
	sunColorDawn = mgl32.Vec3{1, 0.6, 0.3}
	moonColor    = mgl32.Vec3{0.6, 0.7, 0.9}

	skyDay   = mgl32.Vec3{0.4, 0.6, 0.9}
	skyDawn  = mgl32.Vec3{0.9, 0.5, 0.3}
	skyDusk  = mgl32.Vec3{0.6, 0.3, 0.4}
	skyNight = mgl32.Vec3{0.02, 0.02, 0.05}
)

// DayNightCycle drives sun and moon along a sinusoidal arc and blends light
// and sky colors across dawn/day/dusk/night.
type DayNightCycle struct {
	CycleDuration float32 // seconds for a full day
	OrbitRadius   float32 // distance of sun/moon from the scene center

	currentTime float32
	progress    float32 // [0, 1) across the full day
}

func NewDayNightCycle() *DayNightCycle {
	return &DayNightCycle{
		CycleDuration: 60,
		OrbitRadius:   200,
	}
}

// Update advances the cycle by dt seconds scaled by timeScale.
func (d *DayNightCycle) Update(dt, timeScale float32) {
	d.currentTime += dt * timeScale
	d.progress = float32(math.Mod(float64(d.currentTime/d.CycleDuration), 1))
}

// SetTimeOfDay jumps to a point in the cycle: 0 = dawn, 0.25 = noon,
// 0.5 = dusk, 0.75 = midnight.
func (d *DayNightCycle) SetTimeOfDay(progress float32) {
	d.progress = float32(math.Mod(float64(progress), 1))
	d.currentTime = d.progress * d.CycleDuration
}

func (d *DayNightCycle) Reset() {
	d.currentTime = 0
	d.progress = 0
}

func (d *DayNightCycle) Progress() float32 { return d.progress }

func (d *DayNightCycle) Phase() Phase {
	switch {
	case d.progress < 0.25:
		return PhaseDawn
	case d.progress < 0.5:
		return PhaseDay
	case d.progress < 0.75:
		return PhaseDusk
	}
	return PhaseNight
}

// State computes the current lighting snapshot.
func (d *DayNightCycle) State() LightState {
	var state LightState

	// progress 0 puts the sun on the dawn horizon, 0.5 on the dusk horizon
	sunAngle := float64(d.progress) * 2 * math.Pi
	sunHeight := float32(math.Sin(sunAngle))
	sunHorizontal := float32(math.Cos(sunAngle))

	// The sun stays the active light slightly past the horizon.
	state.SunActive = sunHeight > -0.1

	if state.SunActive {
		state.Position = mgl32.Vec3{
			sunHorizontal * d.OrbitRadius,
			max32(0, sunHeight)*d.OrbitRadius + 50,
			-0.3 * d.OrbitRadius,
		}

		heightFactor := max32(0, sunHeight)
		if heightFactor < 0.3 {
			// near the horizon the light is orange
			state.Color = lerpVec3(sunColorDawn, sunColorNoon, heightFactor/0.3)
		} else {
			state.Color = sunColorNoon
		}
		state.Intensity = 0.3 + 0.7*heightFactor
		state.AmbientStrength = 0.1 + 0.15*heightFactor
	} else {
		state.Position = mgl32.Vec3{
			-sunHorizontal * d.OrbitRadius,
			max32(0, -sunHeight)*d.OrbitRadius*0.8 + 30,
			0.3 * d.OrbitRadius,
		}
		state.Color = moonColor
		state.Intensity = 0.15 + 0.1*max32(0, -sunHeight)
		state.AmbientStrength = 0.05
	}

	state.SkyColor = d.skyColor()
	return state
}

func (d *DayNightCycle) skyColor() mgl32.Vec3 {
	p := d.progress
	switch {
	case p < 0.15:
		return lerpVec3(skyNight, skyDawn, p/0.15)
	case p < 0.3:
		return lerpVec3(skyDawn, skyDay, (p-0.15)/0.15)
	case p < 0.5:
		return skyDay
	case p < 0.65:
		return lerpVec3(skyDay, skyDusk, (p-0.5)/0.15)
	case p < 0.8:
		return lerpVec3(skyDusk, skyNight, (p-0.65)/0.15)
	}
	return skyNight
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		lerp(a.X(), b.X(), t),
		lerp(a.Y(), b.Y(), t),
		lerp(a.Z(), b.Z(), t),
	}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
