// Package noise provides seeded fractal coherent-noise sources for terrain
// heights.
//
// Every source evaluates a single-octave basis function and layers octaves of
// it with the configured fractal type. Grid coordinates are scaled by the
// frequency before sampling.
package noise

import (
	"errors"
	"fmt"
	"strings"
)

// Source type names accepted by New.
const (
	TypePerlin   = "perlin"
	TypeSimplex  = "simplex"
	TypeGradient = "gradient"
)

// Source is a seeded 2D noise function sampled at integer grid coordinates.
type Source interface {
	Sample(x, z int) float32
	SetSeed(seed int64)
	Seed() int64
}

// Config describes a noise source.
type Config struct {
	Type          string
	Seed          int64
	Frequency     float64
	Octaves       int
	Interpolation Interpolation // only used by the gradient source
	Fractal       Fractal
	Lacunarity    float64
	Gain          float64
}

// DefaultConfig returns the settings the terrain viewer ships with.
func DefaultConfig() Config {
	return Config{
		Type:          TypeGradient,
		Frequency:     0.06,
		Octaves:       8,
		Interpolation: Linear,
		Fractal:       FBM,
		Lacunarity:    2.0,
		Gain:          0.5,
	}
}

var (
	ErrUnknownType   = errors.New("noise: unknown source type")
	ErrInvalidConfig = errors.New("noise: invalid config")
)

// Validate reports the first invalid setting in c.
func (c Config) Validate() error {
	switch {
	case !(c.Frequency > 0):
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidConfig, c.Frequency)
	case c.Octaves < 1:
		return fmt.Errorf("%w: octaves must be at least 1, got %d", ErrInvalidConfig, c.Octaves)
	case !(c.Lacunarity > 0):
		return fmt.Errorf("%w: lacunarity must be positive, got %v", ErrInvalidConfig, c.Lacunarity)
	case !(c.Gain > 0):
		return fmt.Errorf("%w: gain must be positive, got %v", ErrInvalidConfig, c.Gain)
	case !c.Interpolation.valid():
		return fmt.Errorf("%w: interpolation %d", ErrInvalidConfig, c.Interpolation)
	case !c.Fractal.valid():
		return fmt.Errorf("%w: fractal %d", ErrInvalidConfig, c.Fractal)
	}
	return nil
}

// New creates the source named by cfg.Type, seeded with cfg.Seed.
func New(cfg Config) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var b basis
	switch strings.ToLower(cfg.Type) {
	case TypePerlin:
		b = &perlinBasis{}
	case TypeSimplex:
		b = &simplexBasis{}
	case TypeGradient:
		b = &gradientBasis{interp: cfg.Interpolation}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, cfg.Type)
	}

	s := &fractalSource{config: cfg, basis: b}
	s.SetSeed(cfg.Seed)
	return s, nil
}

// basis is a single octave of coherent noise with output roughly in [-1, 1].
type basis interface {
	reseed(seed int64)
	eval(x, y float64) float64
}

// fractalSource layers octaves of a basis function.
type fractalSource struct {
	config   Config
	basis    basis
	seed     int64
	bounding float64
}

func (s *fractalSource) Seed() int64 {
	return s.seed
}

func (s *fractalSource) SetSeed(seed int64) {
	s.seed = seed
	s.basis.reseed(seed)
	s.bounding = fractalBounding(s.config.Octaves, s.config.Gain)
}

func (s *fractalSource) Sample(x, z int) float32 {
	fx := float64(x) * s.config.Frequency
	fz := float64(z) * s.config.Frequency
	return float32(s.fractal(fx, fz))
}

func (s *fractalSource) fractal(x, y float64) float64 {
	cfg := s.config
	switch cfg.Fractal {
	case Billow:
		sum := billow(s.basis.eval(x, y))
		amp := 1.0
		for i := 1; i < cfg.Octaves; i++ {
			x *= cfg.Lacunarity
			y *= cfg.Lacunarity
			amp *= cfg.Gain
			sum += billow(s.basis.eval(x, y)) * amp
		}
		return sum * s.bounding

	case RigidMulti:
		sum := 1 - abs(s.basis.eval(x, y))
		amp := 1.0
		for i := 1; i < cfg.Octaves; i++ {
			x *= cfg.Lacunarity
			y *= cfg.Lacunarity
			amp *= cfg.Gain
			sum -= (1 - abs(s.basis.eval(x, y))) * amp
		}
		return sum

	default:
		sum := s.basis.eval(x, y)
		amp := 1.0
		for i := 1; i < cfg.Octaves; i++ {
			x *= cfg.Lacunarity
			y *= cfg.Lacunarity
			amp *= cfg.Gain
			sum += s.basis.eval(x, y) * amp
		}
		return sum * s.bounding
	}
}

// fractalBounding scales a sum of octaves back into [-1, 1].
func fractalBounding(octaves int, gain float64) float64 {
	amp := 1.0
	total := 1.0
	for i := 1; i < octaves; i++ {
		amp *= gain
		total += amp
	}
	return 1 / total
}

func billow(v float64) float64 {
	return abs(v)*2 - 1
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
