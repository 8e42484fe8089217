// Package material recolors scene materials through cached channel profiles.
package material

import (
	"sort"
	"strings"

	"github.com/Faultbox/showcase3d/internal/engine/scene"
)

// Channel is one recolorable input of a material.
type Channel uint8

const (
	ChannelColor Channel = 1 << iota
	ChannelAlbedo
	ChannelBaseColor
	ChannelDiffuse
	// ChannelTextureTint marks a texture map that is tinted through Color,
	// synthesizing Color when the material has none.
	ChannelTextureTint
	ChannelUniforms
)

// HexSetter is a value whose color can be set from a packed 0xRRGGBB value.
type HexSetter interface {
	SetHex(hex uint32)
}

// Profile is the fixed set of recolorable channels of one material,
// determined once when the material is first seen.
type Profile struct {
	Channels Channel
	// Uniforms lists uniform keys whose names mention color or albedo and
	// whose values implement HexSetter, in sorted order.
	Uniforms []string
}

// Has reports whether the profile includes ch.
func (p Profile) Has(ch Channel) bool {
	return p.Channels&ch != 0
}

// Colorable reports whether any channel can be written.
func (p Profile) Colorable() bool {
	return p.Channels != 0
}

// Classify inspects a material and returns its profile.
func Classify(m *scene.Material) Profile {
	var p Profile
	if m == nil {
		return p
	}
	if m.Color != nil {
		p.Channels |= ChannelColor
	}
	if m.Albedo != nil {
		p.Channels |= ChannelAlbedo
	}
	if m.BaseColor != nil {
		p.Channels |= ChannelBaseColor
	}
	if m.Diffuse != nil {
		p.Channels |= ChannelDiffuse
	}
	if m.Map != nil {
		p.Channels |= ChannelTextureTint
	}
	for key, u := range m.Uniforms {
		name := strings.ToLower(key)
		if !strings.Contains(name, "color") && !strings.Contains(name, "albedo") {
			continue
		}
		if u == nil || u.Value == nil {
			continue
		}
		if _, ok := u.Value.(HexSetter); ok {
			p.Uniforms = append(p.Uniforms, key)
		}
	}
	if len(p.Uniforms) > 0 {
		sort.Strings(p.Uniforms)
		p.Channels |= ChannelUniforms
	}
	return p
}
