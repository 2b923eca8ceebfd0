package noise

import "github.com/ojrac/opensimplex-go"

type simplexBasis struct {
	n opensimplex.Noise
}

func (b *simplexBasis) reseed(seed int64) {
	b.n = opensimplex.New(seed)
}

func (b *simplexBasis) eval(x, y float64) float64 {
	return b.n.Eval2(x, y)
}
