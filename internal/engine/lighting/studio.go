// Package lighting provides the studio light rig for the product render.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/showcase3d/pkg/math"
)

// Rig is a single key light plus a flat ambient term.
type Rig struct {
	// Azimuth is rotation around the Y axis in degrees (0-360).
	Azimuth float32
	// Elevation is the angle above the horizon in degrees (0-90).
	Elevation float32
	Ambient   float32
}

// Studio returns the rig used for the showcase: key light high and to the
// left of the default camera.
func Studio() Rig {
	return Rig{Azimuth: -40, Elevation: 55, Ambient: 0.25}
}

// Direction returns the normalized direction pointing towards the light.
func (r Rig) Direction() math.Vec3 {
	return KeyDirection(r.Azimuth, r.Elevation)
}

// KeyDirection converts azimuth/elevation angles in degrees to a unit
// vector pointing towards the light.
func KeyDirection(azimuth, elevation float32) math.Vec3 {
	az := azimuth * math32.Pi / 180
	el := elevation * math32.Pi / 180

	return math.Vec3{
		X: math32.Cos(el) * math32.Sin(az),
		Y: math32.Sin(el),
		Z: math32.Cos(el) * math32.Cos(az),
	}
}
