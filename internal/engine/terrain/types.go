// Package terrain builds heightfield terrain meshes from coherent noise.
//
// A generation pass samples a NoiseSource over an N×N grid, triangulates the
// grid with an alternating diagonal pattern, estimates per-vertex normals from
// the height differences and colours every vertex from a biome palette. The
// result is a set of flat buffers ready for GPU upload.
package terrain

// NoiseSource produces terrain heights for integer grid coordinates.
// Implementations must be deterministic for a fixed seed.
type NoiseSource interface {
	Sample(x, z int) float32
	SetSeed(seed int64)
}

// Colour is an RGB triple. Palette anchors use the [0,255] range,
// generated vertex colours use [0,1].
type Colour struct {
	R, G, B float32
}

// Palette is an ordered list of anchor colours, lowest elevation first.
type Palette []Colour

// Mesh holds the complete terrain mesh data ready for GPU upload.
// Positions, Normals and Colours hold 3 floats per vertex in row-major order
// (vertex index = row*N + col).
type Mesh struct {
	VertexCount int // N, vertices per side
	Seed        int64

	Positions []float32
	Normals   []float32
	Colours   []float32
	Indices   []uint32

	MinHeight float32
	MaxHeight float32
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the bounding box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Vertices returns the number of vertices in the mesh (N²).
func (m *Mesh) Vertices() int {
	return m.VertexCount * m.VertexCount
}

// Triangles returns the number of triangles described by the index buffer.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Vertex returns position, normal and colour of the vertex at (col, row).
func (m *Mesh) Vertex(col, row int) (pos, normal [3]float32, colour Colour) {
	i := (row*m.VertexCount + col) * 3
	copy(pos[:], m.Positions[i:i+3])
	copy(normal[:], m.Normals[i:i+3])
	colour = Colour{m.Colours[i], m.Colours[i+1], m.Colours[i+2]}
	return pos, normal, colour
}
