package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/showcase3d/pkg/math"
)

// Controls orbits a camera around its target from pointer input.
// Input is ignored unless the camera has ControlsEnabled set.
type Controls struct {
	cam *Camera

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPolar    float32
	MaxPolar    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewControls creates orbit controls with default settings.
func NewControls(cam *Camera) *Controls {
	return &Controls{
		cam:             cam,
		MinDistance:     2.0,
		MaxDistance:     40.0,
		MinPolar:        0.05,
		MaxPolar:        math32.Pi - 0.05,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// spherical returns the camera offset from its target as radius, polar angle
// (from +Y) and azimuth (around +Y, measured from +Z).
func (c *Controls) spherical() (radius, polar, azimuth float32) {
	offset := c.cam.Position.Sub(c.cam.Target)
	radius = offset.Length()
	if radius == 0 {
		return 0, math32.Pi / 2, 0
	}
	polar = math32.Acos(clamp(offset.Y/radius, -1, 1))
	azimuth = math32.Atan2(offset.X, offset.Z)
	return radius, polar, azimuth
}

func (c *Controls) setSpherical(radius, polar, azimuth float32) {
	sinPolar, cosPolar := math32.Sincos(polar)
	sinAz, cosAz := math32.Sincos(azimuth)
	c.cam.Position = c.cam.Target.Add(math.Vec3{
		X: radius * sinPolar * sinAz,
		Y: radius * cosPolar,
		Z: radius * sinPolar * cosAz,
	})
}

// HandleDrag orbits the camera from a pointer drag delta in pixels.
// Returns true if the camera moved.
func (c *Controls) HandleDrag(deltaX, deltaY float32) bool {
	if c.cam == nil || !c.cam.ControlsEnabled {
		return false
	}
	radius, polar, azimuth := c.spherical()
	if radius == 0 {
		return false
	}

	azimuth -= deltaX * c.DragSensitivity
	polar = clamp(polar-deltaY*c.DragSensitivity, c.MinPolar, c.MaxPolar)

	c.setSpherical(radius, polar, azimuth)
	c.cam.listeners.Emit()
	return true
}

// HandleZoom dollies toward or away from the target from a wheel delta.
// Returns true if the camera moved.
func (c *Controls) HandleZoom(delta float32) bool {
	if c.cam == nil || !c.cam.ControlsEnabled {
		return false
	}
	radius, polar, azimuth := c.spherical()
	if radius == 0 {
		return false
	}

	radius = clamp(radius-delta*radius*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)

	c.setSpherical(radius, polar, azimuth)
	c.cam.listeners.Emit()
	return true
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
