package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/showcase3d/internal/engine/scene"
	"github.com/Faultbox/showcase3d/pkg/math"
)

var red = ColorOption{Name: "red", Display: "#ff3b30", Value: 0xff3b30}

// opaque is a uniform value without a hex setter.
type opaque struct{ v float32 }

func TestClassify(t *testing.T) {
	mat := &scene.Material{
		Albedo: scene.NewColor(0),
		Map:    &scene.Texture{Name: "frame.png"},
		Uniforms: map[string]*scene.Uniform{
			"uBaseColor":   {Value: scene.NewColor(0)},
			"uAlbedoTint":  {Value: scene.NewColor(0)},
			"uColorScale":  {Value: opaque{1}},
			"uRoughness":   {Value: scene.NewColor(0)},
			"uEmptyColor":  {},
			"uNilColorRef": nil,
		},
	}

	p := Classify(mat)
	assert.True(t, p.Has(ChannelAlbedo))
	assert.True(t, p.Has(ChannelTextureTint))
	assert.True(t, p.Has(ChannelUniforms))
	assert.False(t, p.Has(ChannelColor))
	assert.False(t, p.Has(ChannelBaseColor))
	assert.False(t, p.Has(ChannelDiffuse))
	assert.Equal(t, []string{"uAlbedoTint", "uBaseColor"}, p.Uniforms)

	assert.False(t, Classify(&scene.Material{}).Colorable())
	assert.False(t, Classify(nil).Colorable())
}

func TestApplyWritesEveryChannel(t *testing.T) {
	mat := &scene.Material{
		Color:     scene.NewColor(0),
		Albedo:    scene.NewColor(0),
		BaseColor: scene.NewColor(0),
		Diffuse:   scene.NewColor(0),
		Uniforms: map[string]*scene.Uniform{
			"color": {Value: scene.NewColor(0)},
		},
	}
	root := scene.NewGroup("model").Add(scene.NewMesh("body", math.Vec3{}, mat))

	m := NewMutator()
	require.True(t, m.Apply(root, red))

	for _, c := range []*scene.Color{mat.Color, mat.Albedo, mat.BaseColor, mat.Diffuse, mat.Uniforms["color"].Value.(*scene.Color)} {
		assert.Equal(t, red.Value, c.Hex())
	}
	assert.True(t, mat.NeedsUpdate)
	assert.Equal(t, 1, mat.Version)
}

func TestApplySynthesizesTintForTexture(t *testing.T) {
	mat := &scene.Material{Map: &scene.Texture{Name: "screen.png"}}
	root := scene.NewMesh("screen", math.Vec3{}, mat)

	m := NewMutator()
	require.True(t, m.Apply(root, red))
	require.NotNil(t, mat.Color)
	assert.Equal(t, red.Value, mat.Color.Hex())

	// The synthesized channel is reused on the next call.
	synthesized := mat.Color
	blue := ColorOption{Name: "blue", Value: 0x4285f4}
	require.True(t, m.Apply(root, blue))
	assert.Same(t, synthesized, mat.Color)
	assert.Equal(t, blue.Value, mat.Color.Hex())
}

func TestTexturedColorWrittenOnce(t *testing.T) {
	mat := &scene.Material{Color: scene.NewColor(0), Map: &scene.Texture{Name: "frame.png"}}
	p := Classify(mat)
	require.True(t, p.Has(ChannelColor))
	require.True(t, p.Has(ChannelTextureTint))

	m := NewMutator()
	assert.Equal(t, 1, m.write(mat, p, red.Value))
	assert.Equal(t, red.Value, mat.Color.Hex())
	assert.Equal(t, 1, mat.Version)
}

func TestApplyWithoutChannels(t *testing.T) {
	glass := &scene.Material{Uniforms: map[string]*scene.Uniform{"uIor": {Value: opaque{1.5}}}}
	root := scene.NewGroup("model").Add(scene.NewMesh("lens", math.Vec3{}, glass))

	m := NewMutator()
	assert.False(t, m.Apply(root, red))
	assert.False(t, glass.NeedsUpdate)
	assert.False(t, m.Apply(nil, red))
}

func TestProfileIsNotReprobed(t *testing.T) {
	mat := &scene.Material{Color: scene.NewColor(0)}
	root := scene.NewMesh("body", math.Vec3{}, mat)

	m := NewMutator()
	assert.Equal(t, 1, m.Register(root))

	// A channel appearing after registration is outside the cached profile.
	mat.Albedo = scene.NewColor(0x123456)
	require.True(t, m.Apply(root, red))
	assert.Equal(t, red.Value, mat.Color.Hex())
	assert.Equal(t, uint32(0x123456), mat.Albedo.Hex())
}

// phoneModel builds a model with 13 slots over nested nodes; 10 of them
// expose at least one recognized channel.
func phoneModel() (root *scene.Node, colorable int, all []*scene.Material) {
	newColor := func() *scene.Material { return &scene.Material{Type: "Physical", Color: scene.NewColor(0)} }
	pbr := func() *scene.Material {
		return &scene.Material{Type: "PBR", Albedo: scene.NewColor(0), BaseColor: scene.NewColor(0)}
	}
	textured := func() *scene.Material { return &scene.Material{Type: "Basic", Map: &scene.Texture{Name: "logo.png"}} }
	shader := func() *scene.Material {
		return &scene.Material{Type: "Shader", Uniforms: map[string]*scene.Uniform{"diffuseColor": {Value: scene.NewColor(0)}}}
	}
	blank := func() *scene.Material { return &scene.Material{Type: "Glass"} }

	frame := scene.NewMesh("frame", math.Vec3{}, newColor(), pbr(), textured())
	buttons := scene.NewMesh("buttons", math.Vec3{}, newColor(), newColor())
	back := scene.NewMesh("back", math.Vec3{}, pbr(), shader(), blank())
	lenses := scene.NewMesh("lenses", math.Vec3{}, blank(), newColor())
	camera := scene.NewGroup("camera_module").Add(lenses, scene.NewMesh("flash", math.Vec3{}, shader()))
	logo := scene.NewMesh("logo", math.Vec3{}, textured())
	body := scene.NewGroup("body").Add(frame, scene.NewGroup("side").Add(buttons), back, camera, logo)
	screen := scene.NewMesh("screen", math.Vec3{}, blank())
	root = scene.NewGroup("phone").Add(body, screen)

	root.Traverse(func(n *scene.Node) { all = append(all, n.Materials...) })
	return root, 10, all
}

func TestApplyAllThirteenSlots(t *testing.T) {
	model, colorable, all := phoneModel()
	require.Len(t, all, 13)
	sceneRoot := scene.NewGroup("scene").Add(model)

	m := NewMutator()
	r := m.ApplyAll(model, sceneRoot, nil, red)

	assert.True(t, r.Changed)
	assert.Equal(t, colorable, r.Slots)
	assert.Equal(t, colorable, r.Materials)

	mutated := 0
	for _, mat := range all {
		if !m.Profile(mat).Colorable() {
			assert.False(t, mat.NeedsUpdate)
			continue
		}
		mutated++
		tint, ok := mat.Tint()
		if !ok {
			tint = mat.Uniforms["diffuseColor"].Value.(*scene.Color)
		}
		assert.Equal(t, red.Value, tint.Hex(), "material %s", mat.Type)
	}
	assert.Equal(t, colorable, mutated)
}

func TestApplyAllIsIdempotent(t *testing.T) {
	model, colorable, all := phoneModel()
	sceneRoot := scene.NewGroup("scene").Add(model)
	m := NewMutator()

	first := m.ApplyAll(model, sceneRoot, nil, red)
	second := m.ApplyAll(model, sceneRoot, nil, red)

	// Changed reports that channels were written, not that values moved.
	assert.True(t, first.Changed)
	assert.True(t, second.Changed)
	assert.Equal(t, colorable, second.Slots)

	for _, mat := range all {
		if tint, ok := mat.Tint(); ok {
			assert.Equal(t, red.Value, tint.Hex())
		}
	}
}

func TestApplyAllReachesOutsideModel(t *testing.T) {
	shared := &scene.Material{Color: scene.NewColor(0)}
	model := scene.NewGroup("phone").Add(scene.NewMesh("body", math.Vec3{}, shared))

	// A reparented part lives beside the model, and reuses the shared material.
	detached := &scene.Material{BaseColor: scene.NewColor(0)}
	sceneRoot := scene.NewGroup("scene").Add(
		model,
		scene.NewMesh("stand", math.Vec3{}, detached, shared),
	)
	orphan := &scene.Material{Diffuse: scene.NewColor(0)}

	m := NewMutator()
	r := m.ApplyAll(model, sceneRoot, []*scene.Material{orphan, shared, nil}, red)

	assert.True(t, r.Changed)
	assert.Equal(t, 1, r.Slots)
	assert.Equal(t, 3, r.Materials)
	assert.Equal(t, red.Value, detached.BaseColor.Hex())
	assert.Equal(t, red.Value, orphan.Diffuse.Hex())
	// Written once per slot visit: model pass, two scene slots, registry.
	assert.Equal(t, 4, shared.Version)
}

func TestApplyAllNothingColorable(t *testing.T) {
	model := scene.NewGroup("phone").Add(scene.NewMesh("glass", math.Vec3{}, &scene.Material{}))
	m := NewMutator()
	r := m.ApplyAll(model, scene.NewGroup("scene").Add(model), nil, red)
	assert.False(t, r.Changed)
	assert.Zero(t, r.Slots)
	assert.Zero(t, r.Materials)
}
