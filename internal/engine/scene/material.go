package scene

// Color is a linear RGB color channel on a material.
type Color struct {
	R, G, B float32
}

// NewColor creates a color from a packed 0xRRGGBB value.
func NewColor(hex uint32) *Color {
	c := &Color{}
	c.SetHex(hex)
	return c
}

// SetHex sets the channel from a packed 0xRRGGBB value.
func (c *Color) SetHex(hex uint32) {
	c.R = float32(hex>>16&0xff) / 255
	c.G = float32(hex>>8&0xff) / 255
	c.B = float32(hex&0xff) / 255
}

// Hex returns the packed 0xRRGGBB value.
func (c *Color) Hex() uint32 {
	return uint32(toByte(c.R))<<16 | uint32(toByte(c.G))<<8 | uint32(toByte(c.B))
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Texture references an image map by name.
type Texture struct {
	Name string
}

// Uniform is a named shader input. Value may be a *Color or any other type.
type Uniform struct {
	Value any
}

// Material holds the surface channels of a mesh slot.
// Nil channels are absent on the material's type.
type Material struct {
	Name string
	Type string

	Color     *Color
	Albedo    *Color
	BaseColor *Color
	Diffuse   *Color
	Map       *Texture

	Uniforms map[string]*Uniform

	// NeedsUpdate asks the renderer to re-upload the material.
	NeedsUpdate bool
	// Version increases on every MarkDirty.
	Version int
}

// MarkDirty flags the material for re-upload.
func (m *Material) MarkDirty() {
	m.NeedsUpdate = true
	m.Version++
}

// Tint returns the color the presenter should draw the material with.
func (m *Material) Tint() (*Color, bool) {
	switch {
	case m.Color != nil:
		return m.Color, true
	case m.BaseColor != nil:
		return m.BaseColor, true
	case m.Albedo != nil:
		return m.Albedo, true
	case m.Diffuse != nil:
		return m.Diffuse, true
	}
	return nil, false
}
