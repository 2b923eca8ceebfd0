package terrain

import "github.com/go-gl/mathgl/mgl32"

// normalVerticalScale weights the Y component against the height deltas.
// It is not derived from the grid spacing, so changing the resolution or
// world size changes how steep the shading looks. Kept as is to preserve the
// established look.
const normalVerticalScale = 2.0

var up = mgl32.Vec3{0, 1, 0}

// EstimateNormals writes one unit normal per vertex of hf into normals
// (3 floats per vertex, row-major). Normals come from centred height
// differences; neighbours outside the grid are clamped to the edge.
func EstimateNormals(hf *HeightField, normals []float32) {
	p := 0
	for z := range hf.n {
		for x := range hf.n {
			n := vertexNormal(hf, x, z)
			normals[p] = n[0]
			normals[p+1] = n[1]
			normals[p+2] = n[2]
			p += 3
		}
	}
}

func vertexNormal(hf *HeightField, x, z int) mgl32.Vec3 {
	heightL := hf.Clamped(x-1, z)
	heightR := hf.Clamped(x+1, z)
	heightD := hf.Clamped(x, z-1)
	heightU := hf.Clamped(x, z+1)

	return normalize(mgl32.Vec3{heightL - heightR, normalVerticalScale, heightD - heightU})
}

// normalize returns v scaled to unit length, or straight up for a zero vector.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-6 {
		return up
	}
	return v.Mul(1 / l)
}
