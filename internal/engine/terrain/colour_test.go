package terrain

import (
	"errors"
	"math"
	"testing"
)

func TestNewColourizerValidation(t *testing.T) {
	tests := []struct {
		name    string
		palette Palette
		spread  float32
		wantErr error
	}{
		{"empty palette", nil, 0.5, ErrPaletteTooSmall},
		{"single colour", Palette{{10, 20, 30}}, 0.5, ErrPaletteTooSmall},
		{"zero spread", grayscalePalette(), 0, ErrSpreadNotPositive},
		{"negative spread", grayscalePalette(), -1, ErrSpreadNotPositive},
		{"NaN spread", grayscalePalette(), float32(math.NaN()), ErrSpreadNotPositive},
		{"valid", grayscalePalette(), 0.45, nil},
		{"wide spread", grayscalePalette(), 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewColourizer(tt.palette, tt.spread)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewColourizer() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && c == nil {
				t.Error("NewColourizer() returned nil colourizer")
			}
		})
	}
}

func TestColourizerCopiesPalette(t *testing.T) {
	p := grayscalePalette()
	c, err := NewColourizer(p, 1)
	if err != nil {
		t.Fatal(err)
	}
	p[0] = Colour{255, 0, 0}

	if got := c.Colour(-1, 1); got != (Colour{}) {
		t.Errorf("Colour() = %v after caller mutated palette, want black", got)
	}
}

func TestColourAmplitudeBoundaries(t *testing.T) {
	palette := Palette{
		{201, 178, 99},
		{135, 184, 82},
		{80, 171, 93},
		{120, 120, 120},
		{200, 200, 210},
	}
	first := Colour{201.0 / 255, 178.0 / 255, 99.0 / 255}
	last := Colour{200.0 / 255, 200.0 / 255, 210.0 / 255}

	for _, spread := range []float32{0.1, 0.45, 0.5} {
		c, err := NewColourizer(palette, spread)
		if err != nil {
			t.Fatal(err)
		}
		for _, amp := range []float32{0.5, 1, 8} {
			if got := c.Colour(-amp, amp); got != first {
				t.Errorf("spread %v amp %v: Colour(-amp) = %v, want %v", spread, amp, got, first)
			}
			if got := c.Colour(amp, amp); !approxColour(got, last, 1e-3) {
				t.Errorf("spread %v amp %v: Colour(+amp) = %v, want ~%v", spread, amp, got, last)
			}
		}
	}
}

func TestColourClampsOutsideAmplitude(t *testing.T) {
	c, err := NewColourizer(grayscalePalette(), 0.45)
	if err != nil {
		t.Fatal(err)
	}

	// must not index outside the palette
	for _, h := range []float32{-100, -1.01, 1.01, 100} {
		got := c.Colour(h, 1)
		for _, ch := range []float32{got.R, got.G, got.B} {
			if ch < 0 || ch > 1 {
				t.Errorf("Colour(%v) = %v, channel out of [0,1]", h, got)
			}
		}
	}
}

func TestColourGrayscale(t *testing.T) {
	c, err := NewColourizer(grayscalePalette(), 1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		height float32
		want   float32
	}{
		// with spread 1 the window starts at the normalized midpoint
		{0, 0},
		{-1, 0},
		{0.5, 0.25},
		{1, 0.5},
	}
	for _, tt := range tests {
		got := c.Colour(tt.height, 1)
		want := Colour{tt.want, tt.want, tt.want}
		if !approxColour(got, want, 1e-6) {
			t.Errorf("Colour(%v) = %v, want %v", tt.height, got, want)
		}
	}
}

func TestColourHitsAnchorsExactly(t *testing.T) {
	palette := Palette{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}
	c, err := NewColourizer(palette, 1)
	if err != nil {
		t.Fatal(err)
	}

	// remapped value 0.5 = segment 1, blend 0
	if got := c.Colour(1, 1); got != (Colour{0, 1, 0}) {
		t.Errorf("Colour at middle anchor = %v, want (0, 1, 0)", got)
	}

	segment, blend := c.locate(0.5)
	if segment != 1 || blend != 0 {
		t.Errorf("locate(0.5) = (%d, %v), want (1, 0)", segment, blend)
	}

	// just below an anchor the blend approaches 1 and the colour the upper anchor
	segment, blend = c.locate(0.4999)
	if segment != 0 || blend < 0.999 || blend >= 1 {
		t.Errorf("locate(0.4999) = (%d, %v), want (0, ~1)", segment, blend)
	}
}

func TestLocateSegmentRange(t *testing.T) {
	for m := 2; m <= 9; m++ {
		palette := make(Palette, m)
		c, err := NewColourizer(palette, 0.45)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i <= 1000; i++ {
			v := clampf(float32(i)/1000, 0, maxBlendValue)
			segment, blend := c.locate(v)
			if segment < 0 || segment > m-2 {
				t.Fatalf("m=%d locate(%v) segment = %d out of [0, %d]", m, v, segment, m-2)
			}
			if blend < -1e-5 || blend > 1+1e-5 {
				t.Fatalf("m=%d locate(%v) blend = %v out of [0, 1]", m, v, blend)
			}
		}
	}
}

func TestColourizerFill(t *testing.T) {
	const n = 3
	c, err := NewColourizer(grayscalePalette(), 1)
	if err != nil {
		t.Fatal(err)
	}

	hf := NewHeightField(n)
	hf.Set(2, 1, 1)

	colours := make([]float32, n*n*3)
	c.Fill(hf, 1, colours)

	i := (1*n + 2) * 3
	if !approx(colours[i], 0.5) || !approx(colours[i+1], 0.5) || !approx(colours[i+2], 0.5) {
		t.Errorf("colour of (2, 1) = %v, want gray 0.5", colours[i:i+3])
	}
	if colours[0] != 0 {
		t.Errorf("colour of (0, 0) = %v, want black", colours[0:3])
	}
}

func TestColourizerRamp(t *testing.T) {
	c, err := NewColourizer(grayscalePalette(), 0.45)
	if err != nil {
		t.Fatal(err)
	}

	ramp := c.Ramp(4)
	want := []float32{0, 0.25, 0.5, 0.75}
	if len(ramp) != len(want) {
		t.Fatalf("len(Ramp(4)) = %d, want %d", len(ramp), len(want))
	}
	for i, w := range want {
		if !approx(ramp[i].R, w) {
			t.Errorf("Ramp(4)[%d] = %v, want gray %v", i, ramp[i], w)
		}
	}

	if c.Ramp(0) != nil {
		t.Error("Ramp(0) should be nil")
	}
}

func approxColour(a, b Colour, eps float64) bool {
	return math.Abs(float64(a.R-b.R)) < eps &&
		math.Abs(float64(a.G-b.G)) < eps &&
		math.Abs(float64(a.B-b.B)) < eps
}
