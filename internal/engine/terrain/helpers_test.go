package terrain

import "math"

// flatSource returns the same height everywhere.
type flatSource struct {
	height float32
	seeds  []int64
}

func (s *flatSource) Sample(x, z int) float32 { return s.height }
func (s *flatSource) SetSeed(seed int64)      { s.seeds = append(s.seeds, seed) }

// hashSource returns deterministic pseudo-random heights in [-1, 1].
type hashSource struct {
	seed int64
}

func (s *hashSource) SetSeed(seed int64) { s.seed = seed }

func (s *hashSource) Sample(x, z int) float32 {
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(z)*0xBF58476D1CE4E5B9 ^ uint64(s.seed)
	h ^= h >> 31
	h *= 0x94D049BB133111EB
	h ^= h >> 29
	return float32(h%2001)/1000 - 1
}

// funcSource samples a height function of the grid coordinates.
type funcSource func(x, z int) float32

func (f funcSource) Sample(x, z int) float32 { return f(x, z) }
func (f funcSource) SetSeed(int64)           {}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func approxVec(a, b [3]float32) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

func grayscalePalette() Palette {
	return Palette{{0, 0, 0}, {255, 255, 255}}
}
