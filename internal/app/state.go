package app

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/terragen/internal/engine/camera"
)

// movement maps held keys to camera directions.
var movement = []struct {
	key sdl.Scancode
	dir camera.Direction
}{
	{sdl.SCANCODE_W, camera.Forward},
	{sdl.SCANCODE_S, camera.Backward},
	{sdl.SCANCODE_A, camera.Left},
	{sdl.SCANCODE_D, camera.Right},
	{sdl.SCANCODE_SPACE, camera.Up},
	{sdl.SCANCODE_LSHIFT, camera.Down},
}

// State is everything the viewer loop mutates between frames.
type State struct {
	Camera *camera.FlyCamera
	Seed   int64

	Wireframe  bool
	Regenerate bool // set by R, cleared once the new mesh is uploaded
	Screenshot bool // set by F12, cleared after the next frame is captured
	Quit       bool

	// skipMouse drops the first motion after capture, which SDL reports
	// as a jump from the previous cursor position.
	skipMouse bool
}

// NewState creates a state for the camera and the seed of the first mesh.
func NewState(cam *camera.FlyCamera, seed int64, wireframe bool) *State {
	return &State{
		Camera:    cam,
		Seed:      seed,
		Wireframe: wireframe,
		skipMouse: true,
	}
}

// HandleKey reacts to a key going down this frame.
func (s *State) HandleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		s.Quit = true
	case sdl.SCANCODE_F1:
		s.Wireframe = true
	case sdl.SCANCODE_F2:
		s.Wireframe = false
	case sdl.SCANCODE_R:
		s.Regenerate = true
	case sdl.SCANCODE_F12:
		s.Screenshot = true
	}
}

// Move applies held movement keys for dt seconds.
func (s *State) Move(held func(sdl.Scancode) bool, dt float32) {
	for _, m := range movement {
		if held(m.key) {
			s.Camera.ProcessKeyboard(m.dir, dt)
		}
	}
}

// HandleMouse turns the camera by relative motion and zooms by wheel.
// dy follows SDL, growing downwards.
func (s *State) HandleMouse(dx, dy, wheel float32) {
	if dx != 0 || dy != 0 {
		if s.skipMouse {
			s.skipMouse = false
		} else {
			s.Camera.ProcessMouseMovement(dx, -dy)
		}
	}
	if wheel != 0 {
		s.Camera.ProcessMouseScroll(wheel)
	}
}

// Frame computes the view and projection for the current camera.
func (s *State) Frame(aspect, near, far float32) (view, projection mgl32.Mat4) {
	return s.Camera.ViewMatrix(), s.Camera.Projection(aspect, near, far)
}
