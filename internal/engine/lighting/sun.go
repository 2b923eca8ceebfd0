// Package lighting places the single diffuse light used to shade the terrain.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts azimuth/elevation angles in degrees to a unit vector
// pointing towards the sun. Azimuth rotates around Y starting at +Z,
// elevation is measured up from the horizon.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	az := float64(mgl32.DegToRad(azimuth))
	el := float64(mgl32.DegToRad(elevation))

	return mgl32.Vec3{
		float32(math.Cos(el) * math.Sin(az)),
		float32(math.Sin(el)),
		float32(math.Cos(el) * math.Cos(az)),
	}
}

// Place returns a light position distance units from target along the sun
// direction.
func Place(target mgl32.Vec3, distance, azimuth, elevation float32) mgl32.Vec3 {
	return target.Add(SunDirection(azimuth, elevation).Mul(distance))
}
