// Package app implements the terrain viewer: window, input loop and
// regeneration of the mesh on demand.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/engine/camera"
	"github.com/Faultbox/terragen/internal/engine/debug"
	"github.com/Faultbox/terragen/internal/engine/input"
	"github.com/Faultbox/terragen/internal/engine/lighting"
	"github.com/Faultbox/terragen/internal/engine/renderer"
	"github.com/Faultbox/terragen/internal/engine/terrain"
	"github.com/Faultbox/terragen/internal/engine/window"
	"github.com/Faultbox/terragen/internal/logger"
)

const (
	title   = "Terragen"
	ambient = 0.3
)

// App is the viewer instance.
type App struct {
	config      *config.Config
	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	generator   *Generator
	state       *State
	screenshots *debug.Screenshots
	lightPos    mgl32.Vec3
}

// New opens the window, initialises GL and generates the first mesh.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("vertex_count", cfg.Terrain.VertexCount),
		zap.String("noise", cfg.Noise.Type),
	)

	gen, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:      cfg,
		generator:   gen,
		screenshots: debug.NewScreenshots(cfg.Graphics.ScreenshotDir),
	}

	// window first: the renderer needs a current GL context
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Graphics.ClearColor,
		Ambient:    ambient,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	a.input = input.New()

	cc := cfg.Camera
	cam := camera.NewFlyCamera(mgl32.Vec3(cc.Position), cc.Yaw, cc.Pitch)
	cam.Speed = cc.Speed
	cam.Sensitivity = cc.Sensitivity
	cam.Zoom = cc.FOV

	a.state = NewState(cam, ResolveSeed(cfg.Terrain.Seed), cfg.Graphics.Wireframe)

	mesh, err := a.regenerate(a.state.Seed)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.lightPos = placeLight(cfg.Light, mesh.Bounds)

	a.window.CaptureMouse(true)

	logger.Info("viewer initialized")
	return a, nil
}

// Run drives the frame loop until the window closes or Esc is pressed.
func (a *App) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for !a.state.Quit {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.renderer.Resize(a.window.DrawableSize())
			case input.EventKeyDown:
				a.state.HandleKey(event.Key)
			}
		}

		if err := a.update(float32(dt)); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		a.render()
		if a.state.Screenshot {
			a.state.Screenshot = false
			a.captureScreenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the renderer and window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) update(dt float32) error {
	a.state.Move(a.input.IsKeyHeld, dt)
	dx, dy := a.input.MouseDelta()
	a.state.HandleMouse(dx, dy, a.input.Wheel())
	a.renderer.SetWireframe(a.state.Wireframe)

	if a.state.Regenerate {
		a.state.Regenerate = false
		a.state.Seed = ResolveSeed(0)
		if _, err := a.regenerate(a.state.Seed); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) render() {
	cc := a.config.Camera
	view, projection := a.state.Frame(a.renderer.Aspect(), cc.Near, cc.Far)

	a.renderer.Begin()
	a.renderer.Draw(view, projection, a.lightPos)
}

// captureScreenshot saves the back buffer before it is swapped.
func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.Save(a.state.Seed, pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// regenerate builds a mesh for seed and replaces the GPU copy.
func (a *App) regenerate(seed int64) (*terrain.Mesh, error) {
	mesh := a.generator.Generate(seed)
	if err := a.renderer.Upload(mesh); err != nil {
		return nil, err
	}
	a.window.SetTitle(fmt.Sprintf("%s - seed %d", title, seed))
	return mesh, nil
}

// placeLight returns the configured fixed light, or a sun placed above the
// terrain centre at a distance of its side length.
func placeLight(lc config.LightConfig, bounds terrain.Bounds) mgl32.Vec3 {
	if !lc.UseSun {
		return mgl32.Vec3(lc.Position)
	}
	centre := mgl32.Vec3(bounds.Center())
	return lighting.Place(centre, bounds.Max[0]-bounds.Min[0], lc.Azimuth, lc.Elevation)
}
