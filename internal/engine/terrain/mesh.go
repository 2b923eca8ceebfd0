package terrain

import "fmt"

// Config holds the parameters of a generation pass.
type Config struct {
	VertexCount int     // vertices per side (N)
	Size        float32 // world-space side length of the terrain square
	Amplitude   float32 // height range of the noise, [-Amplitude, Amplitude]
	Palette     Palette // biome anchors, lowest elevation first
	Spread      float32 // width of the height window the palette covers
}

// Builder runs generation passes. It owns no buffers between passes.
type Builder struct {
	config     Config
	source     NoiseSource
	colourizer *Colourizer
}

// NewBuilder validates cfg and returns a Builder sampling heights from src.
func NewBuilder(cfg Config, src NoiseSource) (*Builder, error) {
	if cfg.VertexCount < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGridTooSmall, cfg.VertexCount)
	}
	if !(cfg.Size > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrSizeNotPositive, cfg.Size)
	}
	if !(cfg.Amplitude > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrAmplitudeNotPositive, cfg.Amplitude)
	}
	if src == nil {
		return nil, ErrNilSource
	}

	colourizer, err := NewColourizer(cfg.Palette, cfg.Spread)
	if err != nil {
		return nil, err
	}

	return &Builder{
		config:     cfg,
		source:     src,
		colourizer: colourizer,
	}, nil
}

// Config returns the builder's configuration.
func (b *Builder) Config() Config {
	return b.config
}

// Colourizer returns the colourizer used for vertex colours.
func (b *Builder) Colourizer() *Colourizer {
	return b.colourizer
}

// Build reseeds the noise source and generates a complete mesh. Every call
// allocates new buffers, so a previous mesh is never modified.
func (b *Builder) Build(seed int64) *Mesh {
	n := b.config.VertexCount
	count := n * n

	b.source.SetSeed(seed)

	mesh := &Mesh{
		VertexCount: n,
		Seed:        seed,
		Positions:   make([]float32, count*3),
		Normals:     make([]float32, count*3),
		Colours:     make([]float32, count*3),
	}

	hf := NewHeightField(n)
	hf.Fill(b.source, b.config.Size, mesh.Positions)
	mesh.Indices = BuildIndices(n)
	EstimateNormals(hf, mesh.Normals)
	b.colourizer.Fill(hf, b.config.Amplitude, mesh.Colours)

	mesh.MinHeight, mesh.MaxHeight = hf.Range()
	mesh.Bounds = Bounds{
		Min: [3]float32{0, mesh.MinHeight, 0},
		Max: [3]float32{b.config.Size, mesh.MaxHeight, b.config.Size},
	}

	return mesh
}

// Validate checks the buffer sizes and that every index refers to a vertex.
func (m *Mesh) Validate() error {
	count := m.Vertices()
	for name, buf := range map[string][]float32{
		"positions": m.Positions,
		"normals":   m.Normals,
		"colours":   m.Colours,
	} {
		if len(buf) != count*3 {
			return fmt.Errorf("%s: got %d floats, want %d", name, len(buf), count*3)
		}
	}

	if want := IndexCount(m.VertexCount); len(m.Indices) != want {
		return fmt.Errorf("indices: got %d, want %d", len(m.Indices), want)
	}
	for i, idx := range m.Indices {
		if int(idx) >= count {
			return fmt.Errorf("index %d: vertex %d out of range [0, %d)", i, idx, count)
		}
	}
	return nil
}
