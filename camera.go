package glimmer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits a target point using spherical coordinates and supplies
// the right/up basis the billboard generator consumes. It owns no
// graphics-API state; the renderer takes ViewMatrix and Basis per frame.
type OrbitCamera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw      float32 // degrees, horizontal angle around the target
	pitch    float32 // degrees, clamped to avoid the poles
	distance float32

	initialPosition mgl32.Vec3
	initialTarget   mgl32.Vec3
}

// NewOrbitCamera builds a camera at position looking at target. up is the
// world up vector, usually {0, 1, 0}.
func NewOrbitCamera(position, target, up mgl32.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		position:        position,
		target:          target,
		worldUp:         up,
		initialPosition: position,
		initialTarget:   target,
	}
	c.sphericalFromVectors()
	return c
}

// RotateYaw orbits left/right around the target by angleDegrees.
func (c *OrbitCamera) RotateYaw(angleDegrees float32) {
	c.yaw += angleDegrees
	c.vectorsFromSpherical()
}

// RotatePitch orbits up/down around the target by angleDegrees. Pitch is
// clamped short of the poles so the view never flips.
func (c *OrbitCamera) RotatePitch(angleDegrees float32) {
	c.pitch += angleDegrees
	if c.pitch > 89 {
		c.pitch = 89
	}
	if c.pitch < -89 {
		c.pitch = -89
	}
	c.vectorsFromSpherical()
}

// Zoom moves the camera along the view ray, keeping a minimum standoff.
func (c *OrbitCamera) Zoom(amount float32) {
	c.distance -= amount
	if c.distance < 0.1 {
		c.distance = 0.1
	}
	c.vectorsFromSpherical()
}

// PanHorizontal translates camera and target along the camera right axis.
func (c *OrbitCamera) PanHorizontal(amount float32) {
	right, _ := c.Basis()
	delta := right.Mul(amount)
	c.position = c.position.Add(delta)
	c.target = c.target.Add(delta)
}

// PanForward translates camera and target along the view direction.
func (c *OrbitCamera) PanForward(amount float32) {
	delta := c.forward().Mul(amount)
	c.position = c.position.Add(delta)
	c.target = c.target.Add(delta)
}

// PanVertical translates camera and target along world up.
func (c *OrbitCamera) PanVertical(amount float32) {
	delta := c.worldUp.Mul(amount)
	c.position = c.position.Add(delta)
	c.target = c.target.Add(delta)
}

// Reset restores the construction-time pose.
func (c *OrbitCamera) Reset() {
	c.position = c.initialPosition
	c.target = c.initialTarget
	c.sphericalFromVectors()
}

func (c *OrbitCamera) Position() mgl32.Vec3 { return c.position }
func (c *OrbitCamera) Target() mgl32.Vec3   { return c.target }

func (c *OrbitCamera) SetPosition(position mgl32.Vec3) {
	c.position = position
	c.sphericalFromVectors()
}

func (c *OrbitCamera) SetTarget(target mgl32.Vec3) {
	c.target = target
	c.sphericalFromVectors()
}

func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, c.worldUp)
}

// Basis returns the camera-space right and up unit vectors for billboarding.
func (c *OrbitCamera) Basis() (right, up mgl32.Vec3) {
	fwd := c.forward()
	right = fwd.Cross(c.worldUp).Normalize()
	up = right.Cross(fwd).Normalize()
	return right, up
}

func (c *OrbitCamera) forward() mgl32.Vec3 {
	return c.target.Sub(c.position).Normalize()
}

func (c *OrbitCamera) vectorsFromSpherical() {
	yawRad := float64(mgl32.DegToRad(c.yaw))
	pitchRad := float64(mgl32.DegToRad(c.pitch))

	offset := mgl32.Vec3{
		float32(math.Cos(pitchRad) * math.Cos(yawRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Cos(pitchRad) * math.Sin(yawRad)),
	}.Mul(c.distance)
	c.position = c.target.Add(offset)
}

func (c *OrbitCamera) sphericalFromVectors() {
	offset := c.position.Sub(c.target)
	c.distance = offset.Len()
	if c.distance < 1e-6 {
		c.distance = 1e-6
	}
	c.pitch = mgl32.RadToDeg(float32(math.Asin(float64(offset.Y() / c.distance))))
	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(offset.Z()), float64(offset.X()))))
}
