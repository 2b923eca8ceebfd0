package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func TestNewFlyCameraDefaults(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 0, 3}, -90, 0)

	if !c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("Front() = %v, want (0,0,-1)", c.Front())
	}
	if !c.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("Right() = %v, want (1,0,0)", c.Right())
	}
	if c.Zoom != MaxZoom {
		t.Errorf("Zoom = %v, want %v", c.Zoom, MaxZoom)
	}
}

func TestProcessKeyboard(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, 2}},
		{Backward, mgl32.Vec3{0, 0, 4}},
		{Left, mgl32.Vec3{-1, 0, 3}},
		{Right, mgl32.Vec3{1, 0, 3}},
		{Up, mgl32.Vec3{0, 1, 3}},
		{Down, mgl32.Vec3{0, -1, 3}},
	}
	for _, tt := range tests {
		c := NewFlyCamera(mgl32.Vec3{0, 0, 3}, -90, 0)
		c.Speed = 2
		c.ProcessKeyboard(tt.dir, 0.5)
		if !c.Position.ApproxEqualThreshold(tt.want, eps) {
			t.Errorf("ProcessKeyboard(%d) position = %v, want %v", tt.dir, c.Position, tt.want)
		}
	}
}

func TestPitchClamped(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{}, -90, 0)
	c.ProcessMouseMovement(0, 10000)
	if c.Pitch != 89 {
		t.Errorf("Pitch = %v, want 89", c.Pitch)
	}
	c.ProcessMouseMovement(0, -20000)
	if c.Pitch != -89 {
		t.Errorf("Pitch = %v, want -89", c.Pitch)
	}

	if got := NewFlyCamera(mgl32.Vec3{}, 0, 120).Pitch; got != 89 {
		t.Errorf("NewFlyCamera pitch = %v, want clamped to 89", got)
	}
}

func TestMouseMovementTurns(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{}, -90, 0)
	c.Sensitivity = 1
	c.ProcessMouseMovement(90, 0)
	if c.Yaw != 0 {
		t.Errorf("Yaw = %v, want 0", c.Yaw)
	}
	if !c.Front().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("Front() = %v, want (1,0,0)", c.Front())
	}
}

func TestZoomClamped(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{}, -90, 0)

	c.ProcessMouseScroll(10)
	if c.Zoom != 35 {
		t.Errorf("Zoom = %v, want 35", c.Zoom)
	}
	c.ProcessMouseScroll(100)
	if c.Zoom != MinZoom {
		t.Errorf("Zoom = %v, want %v", c.Zoom, MinZoom)
	}
	c.ProcessMouseScroll(-100)
	if c.Zoom != MaxZoom {
		t.Errorf("Zoom = %v, want %v", c.Zoom, MaxZoom)
	}
}

func TestLookAt(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 10, 0}, -90, 0)
	c.LookAt(mgl32.Vec3{10, 0, 0})

	want := mgl32.Vec3{1, -1, 0}.Normalize()
	if !c.Front().ApproxEqualThreshold(want, eps) {
		t.Errorf("Front() = %v, want %v", c.Front(), want)
	}

	before := c.Front()
	c.LookAt(c.Position)
	if c.Front() != before {
		t.Error("LookAt(position) changed orientation")
	}
}

func TestViewMatrixMovesOriginInFront(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 0, 3}, -90, 0)
	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	// camera looks down -Z in view space
	if !p.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -3}, eps) {
		t.Errorf("origin in view space = %v, want (0,0,-3)", p.Vec3())
	}
}
