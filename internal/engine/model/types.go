// Package model builds the showcase's phone scene graph and flattens scene
// meshes into vertex data for the presenter.
package model

import (
	"github.com/Faultbox/showcase3d/internal/engine/scene"
)

// Vertex is a presenter vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// SlotGroup is a contiguous index range drawn with one material.
type SlotGroup struct {
	Material   *scene.Material
	StartIndex int32
	IndexCount int32
}

// Mesh holds flattened geometry ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Groups   []SlotGroup
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the middle of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}
