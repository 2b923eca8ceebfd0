package terrain

// HeightField is an N×N grid of terrain heights stored in a single
// contiguous buffer addressed as row*N + col.
type HeightField struct {
	n       int
	heights []float32
}

// NewHeightField allocates a zeroed height field with n vertices per side.
func NewHeightField(n int) *HeightField {
	return &HeightField{
		n:       n,
		heights: make([]float32, n*n),
	}
}

// Size returns the number of vertices per side.
func (hf *HeightField) Size() int {
	return hf.n
}

// At returns the height at grid cell (col, row).
func (hf *HeightField) At(col, row int) float32 {
	return hf.heights[row*hf.n+col]
}

// Set stores the height at grid cell (col, row).
func (hf *HeightField) Set(col, row int, h float32) {
	hf.heights[row*hf.n+col] = h
}

// Clamped returns the height at (col, row) with both coordinates clamped to
// the grid, so lookups past an edge reuse the edge height.
func (hf *HeightField) Clamped(col, row int) float32 {
	last := hf.n - 1
	return hf.At(clampi(col, 0, last), clampi(row, 0, last))
}

// Fill samples src over the whole grid, overwriting every height. In the same
// pass it writes world-space positions (3 floats per vertex, row-major) into
// positions, spacing vertices evenly over a size×size square.
func (hf *HeightField) Fill(src NoiseSource, size float32, positions []float32) {
	last := float32(hf.n - 1)
	p := 0
	for row := range hf.n {
		for col := range hf.n {
			h := src.Sample(col, row)
			hf.Set(col, row, h)

			positions[p] = float32(col) / last * size
			positions[p+1] = h
			positions[p+2] = float32(row) / last * size
			p += 3
		}
	}
}

// Range returns the lowest and highest height in the field.
func (hf *HeightField) Range() (low, high float32) {
	if len(hf.heights) == 0 {
		return 0, 0
	}
	low, high = hf.heights[0], hf.heights[0]
	for _, h := range hf.heights[1:] {
		if h < low {
			low = h
		}
		if h > high {
			high = h
		}
	}
	return low, high
}

func clampi(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
