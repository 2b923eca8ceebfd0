package terrain

import "errors"

// Configuration errors. All are reported when a Builder or Colourizer is
// constructed, never during generation.
var (
	ErrGridTooSmall         = errors.New("terrain: vertex count must be at least 2")
	ErrPaletteTooSmall      = errors.New("terrain: palette needs at least 2 colours")
	ErrSpreadNotPositive    = errors.New("terrain: colour spread must be positive")
	ErrSizeNotPositive      = errors.New("terrain: world size must be positive")
	ErrAmplitudeNotPositive = errors.New("terrain: noise amplitude must be positive")
	ErrNilSource            = errors.New("terrain: noise source is nil")
)
