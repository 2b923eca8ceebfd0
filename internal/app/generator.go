package app

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/engine/terrain"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/pkg/noise"
)

// Generator turns a seed into a terrain mesh using the configured noise.
type Generator struct {
	builder *terrain.Builder
	source  noise.Source
	log     *zap.Logger
}

// NewGenerator builds the noise source and terrain builder from cfg.
func NewGenerator(cfg *config.Config) (*Generator, error) {
	noiseCfg, err := cfg.NoiseParams(cfg.Terrain.Seed)
	if err != nil {
		return nil, err
	}
	src, err := noise.New(noiseCfg)
	if err != nil {
		return nil, fmt.Errorf("creating noise source: %w", err)
	}

	builder, err := terrain.NewBuilder(cfg.TerrainParams(), src)
	if err != nil {
		return nil, fmt.Errorf("creating terrain builder: %w", err)
	}

	return &Generator{
		builder: builder,
		source:  src,
		log:     logger.Named("terrain"),
	}, nil
}

// Builder returns the underlying terrain builder.
func (g *Generator) Builder() *terrain.Builder {
	return g.builder
}

// Generate runs one full generation pass.
func (g *Generator) Generate(seed int64) *terrain.Mesh {
	start := time.Now()
	mesh := g.builder.Build(seed)

	g.log.Info("terrain generated",
		zap.Int64("seed", seed),
		zap.Int("vertex_count", mesh.VertexCount),
		zap.Int("indices", len(mesh.Indices)),
		zap.Float32("lowest", mesh.MinHeight),
		zap.Float32("highest", mesh.MaxHeight),
		zap.Duration("took", time.Since(start)),
	)
	return mesh
}

// ResolveSeed returns seed, or a fresh random non-zero seed when seed is 0.
func ResolveSeed(seed int64) int64 {
	for seed == 0 {
		seed = rand.Int63()
	}
	return seed
}
