// Package renderer draws terrain meshes with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/engine/renderer/shaders"
	"github.com/Faultbox/terragen/internal/engine/shader"
	"github.com/Faultbox/terragen/internal/engine/terrain"
	"github.com/Faultbox/terragen/internal/logger"
)

// Vertex attribute locations shared with terrain.vert.
const (
	attribPosition = 0
	attribNormal   = 1
	attribColour   = 2
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
	Ambient    float32 // fraction of palette colour visible with no direct light
}

// Renderer owns the GL state for drawing a single terrain mesh.
// IMPORTANT: Must be created AFTER the OpenGL context exists.
type Renderer struct {
	config  Config
	program *shader.Program

	vao        uint32
	positions  uint32
	normals    uint32
	colours    uint32
	ebo        uint32
	indexCount int32

	wireframe bool
}

// New initialises OpenGL and compiles the terrain shaders.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// flat attributes come from the first vertex of each triangle
	gl.ProvokingVertex(gl.FIRST_VERTEX_CONVENTION)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)

	var err error
	r.program, err = shader.NewProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	logger.Debug("shader program created", zap.Uint32("program", r.program.ID))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.positions)
	gl.GenBuffers(1, &r.normals)
	gl.GenBuffers(1, &r.colours)
	gl.GenBuffers(1, &r.ebo)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Upload replaces the GPU buffers with the mesh contents.
func (r *Renderer) Upload(mesh *terrain.Mesh) error {
	if err := mesh.Validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	if len(mesh.Indices) == 0 {
		return fmt.Errorf("upload: mesh has no triangles")
	}

	gl.BindVertexArray(r.vao)

	uploadAttribute(r.positions, attribPosition, mesh.Positions)
	uploadAttribute(r.normals, attribNormal, mesh.Normals)
	uploadAttribute(r.colours, attribColour, mesh.Colours)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.indexCount = int32(len(mesh.Indices))

	logger.Debug("terrain uploaded",
		zap.Int("vertices", mesh.Vertices()),
		zap.Int32("indices", r.indexCount),
	)
	return nil
}

// uploadAttribute fills one tightly packed vec3 attribute buffer.
func uploadAttribute(vbo uint32, location uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(location, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(location)
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the uploaded terrain.
func (r *Renderer) Draw(view, projection mgl32.Mat4, lightPos mgl32.Vec3) {
	if r.indexCount == 0 {
		return
	}

	gl.PolygonMode(gl.FRONT_AND_BACK, polygonMode(r.wireframe))

	r.program.Use()
	r.program.SetMat4("uView", view)
	r.program.SetMat4("uProjection", projection)
	r.program.SetVec3("uLightPos", lightPos)
	r.program.SetFloat("uAmbient", r.config.Ambient)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// SetWireframe switches between line and fill rasterisation.
func (r *Renderer) SetWireframe(on bool) {
	if r.wireframe != on {
		logger.Debug("polygon mode", zap.Bool("wireframe", on))
	}
	r.wireframe = on
}

// Wireframe reports whether line rasterisation is active.
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	return aspect(r.config.Width, r.config.Height)
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	buffers := []uint32{r.positions, r.normals, r.colours, r.ebo}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

func polygonMode(wireframe bool) uint32 {
	if wireframe {
		return gl.LINE
	}
	return gl.FILL
}

// aspect guards against a minimised window reporting zero height.
func aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
