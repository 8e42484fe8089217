// Package hotspot keeps labeled 3D anchors on the model projected to screen
// space while the preview overlay is showing.
package hotspot

import (
	"github.com/Faultbox/showcase3d/internal/engine/projection"
	"github.com/Faultbox/showcase3d/pkg/math"
)

// Definition is a labeled anchor in model-local coordinates.
type Definition struct {
	ID          int       `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Local       math.Vec3 `yaml:"local"`
	Color       string    `yaml:"color"`
}

// State is a definition resolved against the current camera.
// Screen is nil when the point could not be projected.
type State struct {
	Definition
	World  math.Vec3
	Screen *projection.ScreenPoint
}

// Visible reports whether the marker is on screen.
func (s State) Visible() bool {
	return s.Screen != nil && s.Screen.Visible
}

// DefaultDefinitions returns the built-in anchor set for the phone model.
func DefaultDefinitions() []Definition {
	return []Definition{
		{ID: 1, Name: "Camera", Description: "Dual rear camera with optical stabilization.", Local: math.Vec3{X: 0.35, Y: 1.3, Z: -0.12}, Color: "#4285f4"},
		{ID: 2, Name: "Display", Description: "6.1 inch OLED panel, 120Hz refresh.", Local: math.Vec3{X: 0, Y: 0.2, Z: 0.12}, Color: "#ffffff"},
		{ID: 3, Name: "Speaker", Description: "Stereo speakers tuned for spatial audio.", Local: math.Vec3{X: 0, Y: -1.45, Z: 0}, Color: "#ff3b30"},
		{ID: 4, Name: "Buttons", Description: "Volume and power keys on the right edge.", Local: math.Vec3{X: 0.72, Y: 0.6, Z: 0}, Color: "#f8f8f8"},
		{ID: 5, Name: "Port", Description: "USB-C with fast charging.", Local: math.Vec3{X: 0, Y: -1.55, Z: 0.02}, Color: "#1a1a1a"},
	}
}
