package projection

import (
	"github.com/Faultbox/showcase3d/pkg/math"
)

// Transform is a node placed in the world.
type Transform interface {
	// WorldMatrix returns the accumulated world matrix if it has been resolved.
	WorldMatrix() (math.Mat4, bool)
	// LocalTransform returns the node's own position, Euler rotation and scale.
	LocalTransform() (position, rotation, scale math.Vec3, ok bool)
}

// ToWorld converts a model-local point to world space.
//
// The accumulated world matrix is used when available. Otherwise the node's
// own transform is applied as scale, then rotation, then translation. With no
// transform data the point is returned unchanged.
func ToWorld(local math.Vec3, t Transform) math.Vec3 {
	if t == nil {
		return local
	}
	if m, ok := t.WorldMatrix(); ok {
		return m.TransformVec3(local)
	}
	position, rotation, scale, ok := t.LocalTransform()
	if !ok {
		return local
	}
	p := local.Mul(scale)
	p = math.RotateEuler(rotation).TransformVec3(p)
	return p.Add(position)
}
