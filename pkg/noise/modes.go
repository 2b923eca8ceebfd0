package noise

import (
	"fmt"
	"strings"
)

// Interpolation selects the curve used between lattice points.
type Interpolation int

const (
	Linear Interpolation = iota
	Hermite
	Quintic
)

var interpolationNames = map[Interpolation]string{
	Linear:  "linear",
	Hermite: "hermite",
	Quintic: "quintic",
}

func (i Interpolation) String() string {
	if name, ok := interpolationNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

func (i Interpolation) valid() bool {
	_, ok := interpolationNames[i]
	return ok
}

// curve maps t in [0,1] onto the interpolation curve.
func (i Interpolation) curve(t float64) float64 {
	switch i {
	case Hermite:
		return t * t * (3 - 2*t)
	case Quintic:
		return t * t * t * (t*(t*6-15) + 10)
	default:
		return t
	}
}

// ParseInterpolation parses "linear", "hermite" or "quintic".
func ParseInterpolation(s string) (Interpolation, error) {
	for i, name := range interpolationNames {
		if strings.EqualFold(s, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidConfig, s)
}

// Fractal selects how octaves are combined.
type Fractal int

const (
	FBM Fractal = iota
	Billow
	RigidMulti
)

var fractalNames = map[Fractal]string{
	FBM:        "fbm",
	Billow:     "billow",
	RigidMulti: "ridged",
}

func (f Fractal) String() string {
	if name, ok := fractalNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Fractal(%d)", int(f))
}

func (f Fractal) valid() bool {
	_, ok := fractalNames[f]
	return ok
}

// ParseFractal parses "fbm", "billow" or "ridged".
func ParseFractal(s string) (Fractal, error) {
	for f, name := range fractalNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown fractal %q", ErrInvalidConfig, s)
}
