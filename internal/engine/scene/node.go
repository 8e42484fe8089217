// Package scene is the scene graph facade: nodes, materials, the active
// camera and the per-frame event pipeline the viewer core runs on.
package scene

import (
	"github.com/Faultbox/showcase3d/pkg/math"
)

// Node is a scene graph node. A node with materials is a renderable mesh.
type Node struct {
	Name string

	// Local transform, applied as translation * rotation (Euler XYZ) * scale.
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
	// HasTransform is false for nodes imported without transform data.
	HasTransform bool

	// Materials are the mesh slots; one or many.
	Materials []*Material
	// Size is the mesh's box extent used by the presenter.
	Size math.Vec3

	Children []*Node

	parent *Node
	world  *math.Mat4
}

// NewGroup creates a transform-only node at the origin.
func NewGroup(name string) *Node {
	return &Node{
		Name:         name,
		Scale:        math.Vec3{X: 1, Y: 1, Z: 1},
		HasTransform: true,
	}
}

// NewMesh creates a renderable node with the given slots.
func NewMesh(name string, size math.Vec3, materials ...*Material) *Node {
	n := NewGroup(name)
	n.Size = size
	n.Materials = materials
	return n
}

// Add attaches children, detaching them from any previous parent.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c.parent != nil {
			c.parent.remove(c)
		}
		c.parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

func (n *Node) remove(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsMesh reports whether the node has material slots.
func (n *Node) IsMesh() bool {
	return len(n.Materials) > 0
}

// Traverse calls fn for n and every descendant, depth first.
func (n *Node) Traverse(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Traverse(fn)
	}
}

// Find returns the first node in the subgraph with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Traverse(func(c *Node) {
		if found == nil && c.Name == name {
			found = c
		}
	})
	return found
}

// LocalMatrix returns the node's local transform.
func (n *Node) LocalMatrix() math.Mat4 {
	if !n.HasTransform {
		return math.Identity()
	}
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// UpdateWorldMatrix recomputes cached world matrices for the subgraph.
func (n *Node) UpdateWorldMatrix() {
	local := n.LocalMatrix()
	world := local
	if n.parent != nil && n.parent.world != nil {
		world = n.parent.world.Mul(local)
	}
	n.world = &world
	for _, c := range n.Children {
		c.UpdateWorldMatrix()
	}
}

// WorldMatrix returns the cached world matrix. ok is false until the
// first UpdateWorldMatrix that reached this node.
func (n *Node) WorldMatrix() (m math.Mat4, ok bool) {
	if n == nil || n.world == nil {
		return math.Mat4{}, false
	}
	return *n.world, true
}

// LocalTransform returns the node's own transform components.
func (n *Node) LocalTransform() (position, rotation, scale math.Vec3, ok bool) {
	if n == nil || !n.HasTransform {
		return math.Vec3{}, math.Vec3{}, math.Vec3{}, false
	}
	return n.Position, n.Rotation, n.Scale, true
}
