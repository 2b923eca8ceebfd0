// Package camera provides the free-flying viewer camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Zoom limits in degrees of vertical field of view.
const (
	MinZoom  float32 = 1
	MaxZoom  float32 = 45
	maxPitch float32 = 89
)

var worldUp = mgl32.Vec3{0, 1, 0}

// FlyCamera is a yaw/pitch camera moved with WASD-style controls.
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float32 // degrees, -90 looks down -Z
	Pitch    float32 // degrees

	Speed       float32 // world units per second
	Sensitivity float32 // degrees per pixel of mouse motion
	Zoom        float32 // vertical field of view in degrees

	front, right, up mgl32.Vec3
}

// NewFlyCamera creates a camera at position with the given orientation.
func NewFlyCamera(position mgl32.Vec3, yaw, pitch float32) *FlyCamera {
	c := &FlyCamera{
		Position:    position,
		Yaw:         yaw,
		Pitch:       clamp(pitch, -maxPitch, maxPitch),
		Speed:       2.5,
		Sensitivity: 0.1,
		Zoom:        MaxZoom,
	}
	c.updateVectors()
	return c
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() mgl32.Vec3 { return c.front }

// Right returns the unit right vector.
func (c *FlyCamera) Right() mgl32.Vec3 { return c.right }

// ViewMatrix returns the view matrix for the current position and orientation.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// Projection returns a perspective matrix using the current zoom as FOV.
func (c *FlyCamera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

// ProcessKeyboard moves the camera in dir scaled by elapsed seconds.
func (c *FlyCamera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(worldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(worldUp.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a relative mouse delta in pixels.
// Positive dy looks up.
func (c *FlyCamera) ProcessMouseMovement(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = clamp(c.Pitch+dy*c.Sensitivity, -maxPitch, maxPitch)
	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *FlyCamera) ProcessMouseScroll(dy float32) {
	c.Zoom = clamp(c.Zoom-dy, MinZoom, MaxZoom)
}

// LookAt orients the camera towards target without moving it.
func (c *FlyCamera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() < 1e-6 {
		return
	}
	dir = dir.Normalize()
	c.Pitch = clamp(mgl32.RadToDeg(float32(math.Asin(float64(dir.Y())))), -maxPitch, maxPitch)
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(dir.Z()), float64(dir.X()))))
	c.updateVectors()
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
