package app

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/engine/camera"
	"github.com/Faultbox/terragen/internal/engine/terrain"
)

func newTestState() *State {
	cam := camera.NewFlyCamera(mgl32.Vec3{0, 0, 3}, -90, 0)
	cam.Sensitivity = 1
	return NewState(cam, 42, false)
}

func TestHandleKey(t *testing.T) {
	s := newTestState()

	s.HandleKey(sdl.SCANCODE_F1)
	if !s.Wireframe {
		t.Error("F1 should enable wireframe")
	}
	s.HandleKey(sdl.SCANCODE_F2)
	if s.Wireframe {
		t.Error("F2 should restore fill")
	}
	s.HandleKey(sdl.SCANCODE_R)
	if !s.Regenerate {
		t.Error("R should request regeneration")
	}
	s.HandleKey(sdl.SCANCODE_F12)
	if !s.Screenshot {
		t.Error("F12 should request a screenshot")
	}
	s.HandleKey(sdl.SCANCODE_ESCAPE)
	if !s.Quit {
		t.Error("Esc should request quit")
	}
}

func TestMoveHeldKeys(t *testing.T) {
	s := newTestState()
	s.Camera.Speed = 1

	held := map[sdl.Scancode]bool{sdl.SCANCODE_W: true, sdl.SCANCODE_SPACE: true}
	s.Move(func(k sdl.Scancode) bool { return held[k] }, 1)

	want := mgl32.Vec3{0, 1, 2}
	if !s.Camera.Position.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("Position = %v, want %v", s.Camera.Position, want)
	}
}

func TestHandleMouseSkipsFirstMotion(t *testing.T) {
	s := newTestState()

	s.HandleMouse(500, 300, 0)
	if s.Camera.Yaw != -90 || s.Camera.Pitch != 0 {
		t.Errorf("first motion moved the camera: yaw %v pitch %v", s.Camera.Yaw, s.Camera.Pitch)
	}

	// SDL y grows downwards, so moving the mouse up looks up
	s.HandleMouse(10, -5, 0)
	if s.Camera.Yaw != -80 {
		t.Errorf("Yaw = %v, want -80", s.Camera.Yaw)
	}
	if s.Camera.Pitch != 5 {
		t.Errorf("Pitch = %v, want 5", s.Camera.Pitch)
	}

	s.HandleMouse(0, 0, 5)
	if s.Camera.Zoom != 40 {
		t.Errorf("Zoom = %v, want 40", s.Camera.Zoom)
	}
}

func TestPlaceLight(t *testing.T) {
	bounds := terrain.Bounds{Min: [3]float32{0, -1, 0}, Max: [3]float32{50, 1, 50}}

	fixed := config.Default().Light
	if got := placeLight(fixed, bounds); got != (mgl32.Vec3{1.5, 3, 1.5}) {
		t.Errorf("placeLight(fixed) = %v, want (1.5,3,1.5)", got)
	}

	sun := fixed
	sun.UseSun = true
	sun.Elevation = 90
	got := placeLight(sun, bounds)
	want := mgl32.Vec3{25, 50, 25}
	if !got.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("placeLight(sun) = %v, want %v", got, want)
	}
}
