package model

import (
	"github.com/Faultbox/showcase3d/internal/engine/scene"
	"github.com/Faultbox/showcase3d/pkg/math"
)

// Box faces as normal plus the two in-plane axes spanning the face.
var boxFaces = [6]struct {
	normal, u, v math.Vec3
}{
	{math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{Y: 1}},
	{math.Vec3{X: -1}, math.Vec3{Z: 1}, math.Vec3{Y: 1}},
	{math.Vec3{Y: 1}, math.Vec3{X: 1}, math.Vec3{Z: -1}},
	{math.Vec3{Y: -1}, math.Vec3{X: 1}, math.Vec3{Z: 1}},
	{math.Vec3{Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},
	{math.Vec3{Z: -1}, math.Vec3{X: -1}, math.Vec3{Y: 1}},
}

// BuildMesh flattens every mesh node under root into boxes of the node's
// Size, placed by its world matrix. A node's faces are spread over its
// material slots in turn, and indices are grouped by material.
// Returns nil if nothing under root has geometry.
func BuildMesh(root *scene.Node) *Mesh {
	if root == nil {
		return nil
	}
	root.UpdateWorldMatrix()

	var vertices []Vertex
	slotIndices := make(map[*scene.Material][]uint32)
	var order []*scene.Material

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	root.Traverse(func(n *scene.Node) {
		if !n.IsMesh() || n.Size.IsZero() {
			return
		}
		world, ok := n.WorldMatrix()
		if !ok {
			world = n.LocalMatrix()
		}
		half := n.Size.Scale(0.5)

		for f, face := range boxFaces {
			mat := n.Materials[f%len(n.Materials)]
			if _, seen := slotIndices[mat]; !seen {
				order = append(order, mat)
			}

			normal := world.TransformVec3(face.normal).Sub(world.TransformVec3(math.Vec3{})).Normalize()
			center := face.normal.Mul(half)
			du := face.u.Mul(half)
			dv := face.v.Mul(half)

			base := uint32(len(vertices))
			for _, corner := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
				local := center.Add(du.Scale(corner[0])).Add(dv.Scale(corner[1]))
				pos := world.TransformVec3(local)
				updateBounds(&bounds, pos)
				vertices = append(vertices, Vertex{
					Position: [3]float32{pos.X, pos.Y, pos.Z},
					Normal:   [3]float32{normal.X, normal.Y, normal.Z},
				})
			}
			slotIndices[mat] = append(slotIndices[mat], base, base+1, base+2, base, base+2, base+3)
		}
	})

	if len(vertices) == 0 {
		return nil
	}

	var indices []uint32
	var groups []SlotGroup
	for _, mat := range order {
		idxs := slotIndices[mat]
		groups = append(groups, SlotGroup{
			Material:   mat,
			StartIndex: int32(len(indices)),
			IndexCount: int32(len(idxs)),
		})
		indices = append(indices, idxs...)
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Groups:   groups,
		Bounds:   bounds,
	}
}

func updateBounds(b *Bounds, p math.Vec3) {
	for i, v := range [3]float32{p.X, p.Y, p.Z} {
		if v < b.Min[i] {
			b.Min[i] = v
		}
		if v > b.Max[i] {
			b.Max[i] = v
		}
	}
}
