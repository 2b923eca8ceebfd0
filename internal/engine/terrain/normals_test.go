package terrain

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func normalAt(normals []float32, n, col, row int) [3]float32 {
	i := (row*n + col) * 3
	return [3]float32{normals[i], normals[i+1], normals[i+2]}
}

func TestEstimateNormalsFlat(t *testing.T) {
	for _, h := range []float32{0, 1.5, -3} {
		const n = 5
		hf := NewHeightField(n)
		hf.Fill(&flatSource{height: h}, 1, make([]float32, n*n*3))

		normals := make([]float32, n*n*3)
		EstimateNormals(hf, normals)

		for row := range n {
			for col := range n {
				if got := normalAt(normals, n, col, row); got != [3]float32{0, 1, 0} {
					t.Errorf("height %v: normal(%d, %d) = %v, want (0, 1, 0)", h, col, row, got)
				}
			}
		}
	}
}

func TestEstimateNormalsCornerClamp(t *testing.T) {
	const n = 3
	hf := NewHeightField(n)
	hf.Set(0, 0, 0.25)
	hf.Set(1, 0, 1)
	hf.Set(0, 1, 0.5)

	normals := make([]float32, n*n*3)
	EstimateNormals(hf, normals)

	// left and down neighbours of (0, 0) resolve to (0, 0) itself
	want := mgl32.Vec3{0.25 - 1, 2, 0.25 - 0.5}.Normalize()
	if got := normalAt(normals, n, 0, 0); !approxVec(got, want) {
		t.Errorf("normal(0, 0) = %v, want %v", got, want)
	}

	// right and up neighbours of the far corner resolve to itself
	hf.Set(2, 2, 4)
	hf.Set(1, 2, 1)
	hf.Set(2, 1, 3)
	EstimateNormals(hf, normals)
	want = mgl32.Vec3{1 - 4, 2, 3 - 4}.Normalize()
	if got := normalAt(normals, n, 2, 2); !approxVec(got, want) {
		t.Errorf("normal(2, 2) = %v, want %v", got, want)
	}
}

func TestEstimateNormalsSlope(t *testing.T) {
	const n = 5
	hf := NewHeightField(n)
	// height rises by 1 per column
	hf.Fill(funcSource(func(x, z int) float32 { return float32(x) }), 1, make([]float32, n*n*3))

	normals := make([]float32, n*n*3)
	EstimateNormals(hf, normals)

	// interior: left - right = -2, so the normal tilts away from the slope
	s := float32(1 / math.Sqrt2)
	want := [3]float32{-s, s, 0}
	if got := normalAt(normals, n, 2, 2); !approxVec(got, want) {
		t.Errorf("normal(2, 2) = %v, want %v", got, want)
	}

	// edge column: clamped difference is only 1
	edge := mgl32.Vec3{-1, 2, 0}.Normalize()
	if got := normalAt(normals, n, 0, 2); !approxVec(got, edge) {
		t.Errorf("normal(0, 2) = %v, want %v", got, edge)
	}
}

func TestEstimateNormalsUnitLength(t *testing.T) {
	const n = 16
	hf := NewHeightField(n)
	hf.Fill(&hashSource{seed: 42}, 10, make([]float32, n*n*3))

	normals := make([]float32, n*n*3)
	EstimateNormals(hf, normals)

	for i := 0; i < len(normals); i += 3 {
		v := mgl32.Vec3{normals[i], normals[i+1], normals[i+2]}
		if l := v.Len(); math.Abs(float64(l-1)) > 1e-5 {
			t.Fatalf("normal %d has length %v", i/3, l)
		}
		if v.Y() <= 0 {
			t.Fatalf("normal %d points down: %v", i/3, v)
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := normalize(mgl32.Vec3{}); got != up {
		t.Errorf("normalize(0) = %v, want %v", got, up)
	}
}
