package noise

import "github.com/aquilax/go-perlin"

// perlinBasis is classic Perlin noise from go-perlin, evaluated one octave at
// a time so every fractal type can share the layering code.
type perlinBasis struct {
	p *perlin.Perlin
}

func (b *perlinBasis) reseed(seed int64) {
	// alpha and beta only matter for n > 1
	b.p = perlin.NewPerlin(2, 2, 1, seed)
}

func (b *perlinBasis) eval(x, y float64) float64 {
	return b.p.Noise2D(x, y)
}
