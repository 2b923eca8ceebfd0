package noise

import (
	"math"
	"math/rand"
)

// 2D gradient directions: four diagonals and four axes.
var grad2 = [8][2]float64{
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	{0, -1}, {-1, 0}, {0, 1}, {1, 0},
}

// gradientBasis is lattice gradient noise with a selectable interpolation
// curve between lattice points.
type gradientBasis struct {
	interp Interpolation
	perm   [512]uint8
}

func (b *gradientBasis) reseed(seed int64) {
	rng := rand.New(rand.NewSource(seed))

	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	for i := 255; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	// doubled so hash lookups never wrap
	for i := range b.perm {
		b.perm[i] = p[i&255]
	}
}

func (b *gradientBasis) eval(x, y float64) float64 {
	x0f := math.Floor(x)
	y0f := math.Floor(y)

	xd0 := x - x0f
	yd0 := y - y0f
	xd1 := xd0 - 1
	yd1 := yd0 - 1

	xs := b.interp.curve(xd0)
	ys := b.interp.curve(yd0)

	x0 := int(x0f) & 255
	y0 := int(y0f) & 255
	x1 := x0 + 1
	y1 := y0 + 1

	xf0 := lerp(b.dot(x0, y0, xd0, yd0), b.dot(x1, y0, xd1, yd0), xs)
	xf1 := lerp(b.dot(x0, y1, xd0, yd1), b.dot(x1, y1, xd1, yd1), xs)

	return lerp(xf0, xf1, ys)
}

// dot hashes a lattice point to a gradient and dots it with the offset.
func (b *gradientBasis) dot(x, y int, xd, yd float64) float64 {
	g := grad2[b.perm[x+int(b.perm[y])]&7]
	return g[0]*xd + g[1]*yd
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
