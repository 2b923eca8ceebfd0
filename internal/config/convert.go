package config

import (
	"fmt"

	"github.com/Faultbox/terragen/internal/engine/terrain"
	"github.com/Faultbox/terragen/pkg/noise"
)

// TerrainParams converts the terrain section into builder parameters.
func (c *Config) TerrainParams() terrain.Config {
	palette := make(terrain.Palette, len(c.Terrain.Palette))
	for i, rgb := range c.Terrain.Palette {
		palette[i] = terrain.Colour{R: rgb[0], G: rgb[1], B: rgb[2]}
	}

	return terrain.Config{
		VertexCount: c.Terrain.VertexCount,
		Size:        c.Terrain.Size,
		Amplitude:   c.Terrain.Amplitude,
		Palette:     palette,
		Spread:      c.Terrain.ColourSpread,
	}
}

// NoiseParams converts the noise section into a noise source config.
func (c *Config) NoiseParams(seed int64) (noise.Config, error) {
	interp, err := noise.ParseInterpolation(c.Noise.Interpolation)
	if err != nil {
		return noise.Config{}, fmt.Errorf("noise.interpolation: %w", err)
	}
	fractal, err := noise.ParseFractal(c.Noise.Fractal)
	if err != nil {
		return noise.Config{}, fmt.Errorf("noise.fractal: %w", err)
	}

	return noise.Config{
		Type:          c.Noise.Type,
		Seed:          seed,
		Frequency:     c.Noise.Frequency,
		Octaves:       c.Noise.Octaves,
		Interpolation: interp,
		Fractal:       fractal,
		Lacunarity:    c.Noise.Lacunarity,
		Gain:          c.Noise.Gain,
	}, nil
}
