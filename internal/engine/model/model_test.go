package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/showcase3d/internal/engine/scene"
	"github.com/Faultbox/showcase3d/pkg/math"
)

func TestPhoneHasThirteenSlots(t *testing.T) {
	root, registry := Phone(0x1a1a1a)

	slots := 0
	meshes := 0
	root.Traverse(func(n *scene.Node) {
		if n.IsMesh() {
			meshes++
			slots += len(n.Materials)
		}
	})
	assert.Equal(t, 13, slots)
	assert.Equal(t, 7, meshes)
	assert.Len(t, registry, 13)
	assert.NotNil(t, root.Find("lenses"))
}

func TestBuildMeshSingleBox(t *testing.T) {
	mat := &scene.Material{Color: scene.NewColor(0xff0000)}
	box := scene.NewMesh("box", math.Vec3{X: 2, Y: 2, Z: 2}, mat)
	box.Position = math.Vec3{X: 5}
	root := scene.NewGroup("root").Add(box)

	mesh := BuildMesh(root)
	require.NotNil(t, mesh)
	assert.Len(t, mesh.Vertices, 24)
	assert.Len(t, mesh.Indices, 36)
	require.Len(t, mesh.Groups, 1)
	assert.Same(t, mat, mesh.Groups[0].Material)
	assert.Equal(t, int32(36), mesh.Groups[0].IndexCount)

	assert.Equal(t, [3]float32{4, -1, -1}, mesh.Bounds.Min)
	assert.Equal(t, [3]float32{6, 1, 1}, mesh.Bounds.Max)
	assert.Equal(t, [3]float32{5, 0, 0}, mesh.Bounds.Center())
}

func TestBuildMeshGroupsByMaterial(t *testing.T) {
	root, registry := Phone(0)
	mesh := BuildMesh(root)
	require.NotNil(t, mesh)

	assert.Len(t, mesh.Groups, len(registry))
	total := int32(0)
	for _, g := range mesh.Groups {
		assert.Equal(t, total, g.StartIndex)
		total += g.IndexCount
	}
	assert.Equal(t, int32(len(mesh.Indices)), total)
}

func TestBuildMeshEmpty(t *testing.T) {
	assert.Nil(t, BuildMesh(nil))
	assert.Nil(t, BuildMesh(scene.NewGroup("empty")))
}
