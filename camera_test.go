package glimmer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestCamera() *OrbitCamera {
	return NewOrbitCamera(
		mgl32.Vec3{0, 0, 10},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
}

func assertUnit(t *testing.T, name string, v mgl32.Vec3) {
	t.Helper()
	if d := v.Len() - 1; d > 1e-4 || d < -1e-4 {
		t.Errorf("%s has length %f, want 1", name, v.Len())
	}
}

func TestBasisStaysOrthonormal(t *testing.T) {
	c := newTestCamera()

	angles := []float32{0, 33, -70, 120, 15}
	for _, a := range angles {
		c.RotateYaw(a)
		c.RotatePitch(a / 3)

		right, up := c.Basis()
		assertUnit(t, "right", right)
		assertUnit(t, "up", up)
		if dot := right.Dot(up); dot > 1e-4 || dot < -1e-4 {
			t.Errorf("right.up = %f after yaw %f, want 0", dot, a)
		}
	}
}

func TestRotateYawOrbitsTarget(t *testing.T) {
	c := newTestCamera()
	start := c.Position()

	c.RotateYaw(90)

	if c.Target() != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("target moved to %v during rotation", c.Target())
	}
	if d := c.Position().Len() - start.Len(); d > 1e-3 || d < -1e-3 {
		t.Errorf("orbit distance changed from %f to %f", start.Len(), c.Position().Len())
	}
	if c.Position().Sub(start).Len() < 1 {
		t.Errorf("position barely moved (%v -> %v) for a 90 degree orbit", start, c.Position())
	}
}

func TestPitchClamp(t *testing.T) {
	c := newTestCamera()
	c.RotatePitch(500)

	right, up := c.Basis()
	assertUnit(t, "right", right)
	assertUnit(t, "up", up)
	// At a clamped 89 degrees the camera still looks down at the target.
	if c.Position().Y() <= 0 {
		t.Errorf("camera Y = %f after pitching up, want positive", c.Position().Y())
	}
}

func TestPanMovesCameraAndTargetTogether(t *testing.T) {
	c := newTestCamera()
	offset := c.Position().Sub(c.Target())

	c.PanHorizontal(3)
	c.PanVertical(-2)
	c.PanForward(1)

	got := c.Position().Sub(c.Target())
	if got.Sub(offset).Len() > 1e-4 {
		t.Errorf("pan changed the camera/target offset: %v -> %v", offset, got)
	}
}

func TestReset(t *testing.T) {
	c := newTestCamera()
	c.RotateYaw(45)
	c.RotatePitch(20)
	c.PanHorizontal(5)
	c.Zoom(3)

	c.Reset()

	if c.Position().Sub(mgl32.Vec3{0, 0, 10}).Len() > 1e-4 {
		t.Errorf("position after reset = %v, want {0 0 10}", c.Position())
	}
	if c.Target().Sub(mgl32.Vec3{}).Len() > 1e-4 {
		t.Errorf("target after reset = %v, want origin", c.Target())
	}
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := newTestCamera()
	view := c.ViewMatrix()

	// The target should land on the negative Z axis in view space.
	target := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if target.X() > 1e-4 || target.X() < -1e-4 || target.Y() > 1e-4 || target.Y() < -1e-4 {
		t.Errorf("target maps to %v in view space, want on the view axis", target)
	}
	if target.Z() >= 0 {
		t.Errorf("target at view-space Z %f, want negative (in front)", target.Z())
	}
}
