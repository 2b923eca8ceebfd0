package terrain

import (
	"fmt"
	"math"
)

// maxBlendValue keeps the remapped height strictly below 1 so the upper
// anchor index is always inside the palette.
const maxBlendValue = 0.9999

// Colourizer maps heights to colours by interpolating across a palette.
// Anchors are spread evenly over a window of the normalized height range whose
// width is set by the spread factor.
type Colourizer struct {
	palette    Palette
	spread     float32
	halfSpread float32
	part       float32
}

// NewColourizer validates the palette and spread and returns a Colourizer.
// Spread values above 1 are accepted; the extreme anchors are then never
// reached.
func NewColourizer(palette Palette, spread float32) (*Colourizer, error) {
	if len(palette) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPaletteTooSmall, len(palette))
	}
	if !(spread > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrSpreadNotPositive, spread)
	}

	p := make(Palette, len(palette))
	copy(p, palette)

	return &Colourizer{
		palette:    p,
		spread:     spread,
		halfSpread: spread / 2,
		part:       1 / float32(len(palette)-1),
	}, nil
}

// Colour returns the colour for a height sampled from noise in
// [-amplitude, amplitude]. Channels are in [0,1].
func (c *Colourizer) Colour(height, amplitude float32) Colour {
	value := (height + amplitude) / (amplitude * 2)
	value = clampf((value-c.halfSpread)/c.spread, 0, maxBlendValue)

	segment, blend := c.locate(value)
	return interpolate(c.palette[segment], c.palette[segment+1], blend)
}

// locate splits a remapped value into the lower anchor index and the blend
// factor towards the next anchor.
func (c *Colourizer) locate(value float32) (int, float32) {
	segment := int(math.Floor(float64(value / c.part)))
	if segment > len(c.palette)-2 {
		segment = len(c.palette) - 2
	}
	blend := (value - float32(segment)*c.part) / c.part
	return segment, blend
}

// Fill writes one colour per vertex of hf into colours (3 floats per vertex,
// row-major).
func (c *Colourizer) Fill(hf *HeightField, amplitude float32, colours []float32) {
	p := 0
	for z := range hf.n {
		for x := range hf.n {
			col := c.Colour(hf.At(x, z), amplitude)
			colours[p] = col.R
			colours[p+1] = col.G
			colours[p+2] = col.B
			p += 3
		}
	}
}

// Ramp samples the palette at steps evenly spaced remapped values in [0,1).
func (c *Colourizer) Ramp(steps int) []Colour {
	if steps < 1 {
		return nil
	}
	ramp := make([]Colour, steps)
	for i := range ramp {
		v := clampf(float32(i)/float32(steps), 0, maxBlendValue)
		segment, blend := c.locate(v)
		ramp[i] = interpolate(c.palette[segment], c.palette[segment+1], blend)
	}
	return ramp
}

// interpolate blends two [0,255] anchors and returns a [0,1] colour.
func interpolate(a, b Colour, blend float32) Colour {
	w := 1 - blend
	return Colour{
		R: w*(a.R/255) + blend*(b.R/255),
		G: w*(a.G/255) + blend*(b.G/255),
		B: w*(a.B/255) + blend*(b.B/255),
	}
}
