// Package camera holds the viewer's perspective camera and its orbit controls.
package camera

import (
	"github.com/Faultbox/showcase3d/internal/engine/event"
	"github.com/Faultbox/showcase3d/pkg/math"
)

// Camera is a perspective camera aimed at a target point.
//
// Position and Target are written in place by tweens; callers must keep the
// *Camera and never swap it out while tweens hold pointers into it.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	// FOV is the vertical field of view in degrees.
	FOV  float32
	Near float32
	Far  float32

	// ControlsEnabled gates user-driven orbit.
	ControlsEnabled bool

	listeners event.Listeners
}

// New creates a camera with the given pose and lens.
func New(position, target math.Vec3, fov, near, far float32) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       math.Up,
		FOV:      fov,
		Near:     near,
		Far:      far,
	}
}

// HasMatrices reports whether the lens parameters can produce view and projection matrices.
func (c *Camera) HasMatrices() bool {
	return c.Near > 0 && c.Far > c.Near && c.FOV > 0
}

// ViewMatrix returns the view matrix for the current pose.
func (c *Camera) ViewMatrix() math.Mat4 {
	up := c.Up
	if up.IsZero() {
		up = math.Up
	}
	return math.LookAt(c.Position, c.Target, up)
}

// ProjectionMatrix returns the perspective matrix for the given aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), aspect, c.Near, c.Far)
}

// Forward returns the normalized viewing direction.
func (c *Camera) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// OnChange registers fn to run after user-driven camera changes.
// The returned func removes the listener.
func (c *Camera) OnChange(fn func()) (cancel func()) {
	return c.listeners.Add(fn)
}

// ChangeListeners returns the number of registered change listeners.
func (c *Camera) ChangeListeners() int {
	return c.listeners.Len()
}
