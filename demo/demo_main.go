package main

import (
	"flag"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/glimmer3d/glimmer"
)

// Interactive viewer for the particle effects. Arrow keys orbit the camera,
// +/- zooms, 1-5 switch effects, space stops/starts the emitter, R resets
// the camera.

var effectNames = []glimmer.EffectType{
	glimmer.EffectFire,
	glimmer.EffectSmoke,
	glimmer.EffectDust,
	glimmer.EffectSnow,
	glimmer.EffectSparks,
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	timeScale := flag.Float64("timescale", 1.0, "day cycle speed multiplier")
	flag.Parse()

	logger := glimmer.NewDefaultLogger("demo", *debug)

	rl.InitWindow(1280, 720, "glimmer particle demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	world := glimmer.NewWorld(logger)
	effect := glimmer.EffectFire
	current := world.Spawn(effect, mgl32.Vec3{})

	camera := glimmer.NewOrbitCamera(
		mgl32.Vec3{0, 8, 24},
		mgl32.Vec3{0, 4, 0},
		mgl32.Vec3{0, 1, 0},
	)
	cycle := glimmer.NewDayNightCycle()
	cycle.SetTimeOfDay(0.3)

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		if rl.IsKeyDown(rl.KeyLeft) {
			camera.RotateYaw(-60 * dt)
		}
		if rl.IsKeyDown(rl.KeyRight) {
			camera.RotateYaw(60 * dt)
		}
		if rl.IsKeyDown(rl.KeyUp) {
			camera.RotatePitch(40 * dt)
		}
		if rl.IsKeyDown(rl.KeyDown) {
			camera.RotatePitch(-40 * dt)
		}
		if rl.IsKeyDown(rl.KeyEqual) {
			camera.Zoom(20 * dt)
		}
		if rl.IsKeyDown(rl.KeyMinus) {
			camera.Zoom(-20 * dt)
		}
		if rl.IsKeyPressed(rl.KeyR) {
			camera.Reset()
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			if ps, ok := world.System(current); ok {
				if ps.IsActive() {
					ps.Stop()
				} else {
					ps.Start()
				}
			}
		}
		for i, e := range effectNames {
			if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) {
				world.Remove(current)
				effect = e
				current = world.Spawn(effect, mgl32.Vec3{})
				logger.Infof("switched to %s", effect)
			}
		}

		cycle.Update(dt, float32(*timeScale))
		world.Update(dt)

		right, up := camera.Basis()
		vertices, indices := world.Geometry(right, up)

		light := cycle.State()
		sky := rl.NewColor(
			uint8(light.SkyColor.X()*255),
			uint8(light.SkyColor.Y()*255),
			uint8(light.SkyColor.Z()*255),
			255,
		)

		rl.BeginDrawing()
		rl.ClearBackground(sky)

		rl.BeginMode3D(rl.Camera3D{
			Position:   toRl(camera.Position()),
			Target:     toRl(camera.Target()),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		})
		rl.DrawGrid(20, 1)
		drawParticles(vertices, indices)
		rl.EndMode3D()

		if ps, ok := world.System(current); ok {
			rl.DrawText(fmt.Sprintf("%s  alive %d  emitted %d  %s",
				effect, ps.AliveCount(), ps.EmittedTotal(), cycle.Phase()),
				10, 10, 20, rl.RayWhite)
		}
		rl.EndDrawing()
	}
}

func drawParticles(vertices []glimmer.ParticleVertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := vertices[indices[i]]
		v1 := vertices[indices[i+1]]
		v2 := vertices[indices[i+2]]
		rl.DrawTriangle3D(toRl(v0.Position), toRl(v1.Position), toRl(v2.Position), toRlColor(v0.Color))
	}
}

func toRl(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

func toRlColor(c mgl32.Vec4) rl.Color {
	return rl.NewColor(
		uint8(clamp01(c.X())*255),
		uint8(clamp01(c.Y())*255),
		uint8(clamp01(c.Z())*255),
		uint8(clamp01(c.W())*255),
	)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
