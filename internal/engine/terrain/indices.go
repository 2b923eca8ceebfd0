package terrain

// Quad corners as used by the weave table.
const (
	topLeft = iota
	topRight
	bottomLeft
	bottomRight
)

// weave holds the two triangles emitted for a quad, indexed by
// [row parity][col parity]. Even rows use the first orientation, odd rows the
// second; an even column flips which diagonal the two triangles share.
var weave = [2][2][6]int{
	{
		{topLeft, bottomLeft, topRight, bottomRight, topRight, bottomLeft},
		{topLeft, bottomLeft, bottomRight, bottomRight, topRight, topLeft},
	},
	{
		{topRight, topLeft, bottomRight, bottomLeft, bottomRight, topLeft},
		{topRight, topLeft, bottomLeft, bottomLeft, bottomRight, topRight},
	},
}

// IndexCount returns the number of indices BuildIndices emits for an n×n grid.
func IndexCount(n int) int {
	return 6 * (n - 1) * (n - 1)
}

// BuildIndices triangulates an n×n vertex grid into 2·(n-1)² triangles.
// Quads are visited column by column, rows inside each column. The diagonal
// alternates in both directions so shaded terrain shows no uniform stripe.
func BuildIndices(n int) []uint32 {
	indices := make([]uint32, 0, IndexCount(n))

	for col := 0; col < n-1; col++ {
		for row := 0; row < n-1; row++ {
			tl := uint32(row*n + col)
			bl := uint32((row+1)*n + col)
			corners := [4]uint32{tl, tl + 1, bl, bl + 1}

			for _, c := range weave[row&1][col&1] {
				indices = append(indices, corners[c])
			}
		}
	}

	return indices
}
