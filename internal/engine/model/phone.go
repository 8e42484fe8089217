package model

import (
	"github.com/Faultbox/showcase3d/internal/engine/scene"
	"github.com/Faultbox/showcase3d/pkg/math"
)

// Phone builds the showcase handset: 13 material slots over nested nodes,
// mixing plain, PBR, textured, shader and glass materials. The returned
// registry lists every material as an asset manager would.
func Phone(finish uint32) (root *scene.Node, registry []*scene.Material) {
	add := func(m *scene.Material) *scene.Material {
		registry = append(registry, m)
		return m
	}
	physical := func(name string) *scene.Material {
		return add(&scene.Material{Name: name, Type: "Physical", Color: scene.NewColor(finish)})
	}
	pbr := func(name string) *scene.Material {
		return add(&scene.Material{Name: name, Type: "PBR", Albedo: scene.NewColor(finish), BaseColor: scene.NewColor(finish)})
	}
	textured := func(name, tex string) *scene.Material {
		return add(&scene.Material{Name: name, Type: "Basic", Map: &scene.Texture{Name: tex}})
	}
	shader := func(name string) *scene.Material {
		return add(&scene.Material{Name: name, Type: "Shader", Uniforms: map[string]*scene.Uniform{
			"diffuseColor": {Value: scene.NewColor(finish)},
			"roughness":    {Value: float32(0.4)},
		}})
	}
	glass := func(name string, tint uint32) *scene.Material {
		return add(&scene.Material{Name: name, Type: "Glass", Uniforms: map[string]*scene.Uniform{
			"ior":  {Value: float32(1.5)},
			"tint": {Value: scene.NewColor(tint)},
		}})
	}

	frame := scene.NewMesh("frame", math.Vec3{X: 1.5, Y: 3.1, Z: 0.16},
		physical("frame_metal"), pbr("frame_edge"), textured("frame_antenna", "antenna_lines.png"))

	buttons := scene.NewMesh("buttons", math.Vec3{X: 0.04, Y: 0.5, Z: 0.06},
		physical("power_key"), physical("volume_keys"))
	buttons.Position = math.Vec3{X: 0.77, Y: 0.6}
	side := scene.NewGroup("side").Add(buttons)

	back := scene.NewMesh("back", math.Vec3{X: 1.46, Y: 3.06, Z: 0.02},
		pbr("back_glass"), shader("back_coating"), glass("back_gloss", 0x222222))
	back.Position = math.Vec3{Z: -0.09}

	lenses := scene.NewMesh("lenses", math.Vec3{X: 0.45, Y: 0.45, Z: 0.06},
		glass("lens_cover", 0x050505), physical("lens_ring"))
	flash := scene.NewMesh("flash", math.Vec3{X: 0.1, Y: 0.1, Z: 0.04}, shader("flash_housing"))
	flash.Position = math.Vec3{X: -0.35}
	cameraModule := scene.NewGroup("camera_module").Add(lenses, flash)
	cameraModule.Position = math.Vec3{X: 0.35, Y: 1.3, Z: -0.12}

	logo := scene.NewMesh("logo", math.Vec3{X: 0.3, Y: 0.3, Z: 0.005}, textured("logo_print", "logo.png"))
	logo.Position = math.Vec3{Z: -0.105}

	body := scene.NewGroup("body").Add(frame, side, back, cameraModule, logo)

	screen := scene.NewMesh("screen", math.Vec3{X: 1.42, Y: 3.0, Z: 0.01}, glass("screen_glass", 0x000000))
	screen.Position = math.Vec3{Z: 0.085}

	root = scene.NewGroup("phone").Add(body, screen)
	return root, registry
}
