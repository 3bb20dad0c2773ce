package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOrbitPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch, c.Yaw, c.Distance = 0, 0, 5

	if got := c.Position(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, 5}, 1e-5) {
		t.Errorf("Position() = %v, want {0 0 5}", got)
	}

	c.Center = mgl32.Vec3{1, 2, 3}
	if d := c.Position().Sub(c.Center).Len(); mgl32.Abs(d-5) > 1e-5 {
		t.Errorf("distance from center = %v, want 5", d)
	}
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = mgl32.Vec3{0, 1, 0}
	c.Yaw = 0.7

	// The center lands on the negative view axis.
	v := c.ViewMatrix().Mul4x1(c.Center.Vec4(1))
	if mgl32.Abs(v.X()) > 1e-4 || mgl32.Abs(v.Y()) > 1e-4 || v.Z() >= 0 {
		t.Errorf("center in view space = %v, want on -Z axis", v)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MinPitch)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	for range 200 {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MinDistance)
	}
	for range 500 {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MaxDistance)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(mgl32.Vec3{-10, -10, -10}, mgl32.Vec3{10, 10, 10})

	if c.Center != (mgl32.Vec3{}) {
		t.Errorf("Center = %v, want origin", c.Center)
	}
	radius := mgl32.Vec3{10, 10, 10}.Len()
	if c.Distance <= radius {
		t.Errorf("Distance = %v, want outside bounding sphere %v", c.Distance, radius)
	}
	if c.Far <= c.Distance+radius {
		t.Errorf("Far = %v does not reach the back of the planet", c.Far)
	}
}
