// Package renderer presents the showcase scene with OpenGL: the model's
// material slots, hotspot markers and the flat page overlays.
package renderer

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/showcase3d/internal/engine/camera"
	"github.com/Faultbox/showcase3d/internal/engine/lighting"
	"github.com/Faultbox/showcase3d/internal/engine/model"
	"github.com/Faultbox/showcase3d/internal/engine/scene"
	"github.com/Faultbox/showcase3d/internal/engine/shader"
	"github.com/Faultbox/showcase3d/internal/logger"
	"github.com/Faultbox/showcase3d/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	// Drawable size in pixels.
	Width  int
	Height int
	// Screen size in window coordinates, used for overlay placement.
	ScreenWidth  int
	ScreenHeight int
}

// RGBA is a straight-alpha color.
type RGBA [4]float32

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	light  lighting.Rig

	sceneProgram   *shader.Program
	overlayProgram *shader.Program

	mesh    *model.Mesh
	meshVAO uint32
	meshVBO uint32
	meshEBO uint32

	quadVAO uint32
	quadVBO uint32

	log *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		light:  lighting.Studio(),
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.02, 0.02, 0.03, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.sceneProgram, err = shader.New(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	r.overlayProgram, err = shader.New(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		r.sceneProgram.Delete()
		return nil, fmt.Errorf("overlay shader: %w", err)
	}

	r.createQuad()
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.releaseMesh()
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.sceneProgram != nil {
		r.sceneProgram.Delete()
	}
	if r.overlayProgram != nil {
		r.overlayProgram.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(cfg Config) {
	r.config = cfg
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	r.log.Debug("renderer resized",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("screen_width", cfg.ScreenWidth),
		zap.Int("screen_height", cfg.ScreenHeight),
	)
}

// Upload replaces the model geometry on the GPU.
func (r *Renderer) Upload(mesh *model.Mesh) {
	r.releaseMesh()
	if mesh == nil {
		return
	}
	r.mesh = mesh

	gl.GenVertexArrays(1, &r.meshVAO)
	gl.BindVertexArray(r.meshVAO)

	gl.GenBuffers(1, &r.meshVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
	stride := int32(unsafe.Sizeof(model.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*int(stride), unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.meshEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.meshEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.log.Debug("model uploaded",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("groups", len(mesh.Groups)),
	)
}

func (r *Renderer) releaseMesh() {
	if r.meshVAO != 0 {
		gl.DeleteVertexArrays(1, &r.meshVAO)
		r.meshVAO = 0
	}
	if r.meshVBO != 0 {
		gl.DeleteBuffers(1, &r.meshVBO)
		r.meshVBO = 0
	}
	if r.meshEBO != 0 {
		gl.DeleteBuffers(1, &r.meshEBO)
		r.meshEBO = 0
	}
	r.mesh = nil
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawModel draws every material slot group with its current tint and
// clears the slot's update flag.
func (r *Renderer) DrawModel(cam *camera.Camera) {
	if r.mesh == nil || cam == nil || !cam.HasMatrices() {
		return
	}
	aspect := float32(r.config.Width) / float32(max(r.config.Height, 1))

	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	r.sceneProgram.Use()
	r.sceneProgram.SetMat4("uView", cam.ViewMatrix())
	r.sceneProgram.SetMat4("uProjection", cam.ProjectionMatrix(aspect))
	r.sceneProgram.SetVec3("uEye", cam.Position)
	r.sceneProgram.SetVec3("uLightDir", r.light.Direction())
	r.sceneProgram.SetFloat("uAmbient", r.light.Ambient)

	gl.BindVertexArray(r.meshVAO)
	for _, g := range r.mesh.Groups {
		c := slotColor(g.Material)
		r.sceneProgram.SetVec3("uColor", math.Vec3{X: c.R, Y: c.G, Z: c.B})
		r.sceneProgram.SetFloat("uGloss", slotGloss(g.Material))
		gl.DrawElementsWithOffset(gl.TRIANGLES, g.IndexCount, gl.UNSIGNED_INT, uintptr(g.StartIndex)*4)
		if g.Material != nil {
			g.Material.NeedsUpdate = false
		}
	}
	gl.BindVertexArray(0)
}

// DrawRect fills a rectangle given in screen coordinates.
func (r *Renderer) DrawRect(x, y, w, h float32, color RGBA) {
	r.drawQuad(x, y, w, h, color, 0)
}

// DrawDisc fills a circle given in screen coordinates.
func (r *Renderer) DrawDisc(cx, cy, radius float32, color RGBA) {
	r.drawQuad(cx-radius, cy-radius, 2*radius, 2*radius, color, 1)
}

func (r *Renderer) drawQuad(x, y, w, h float32, color RGBA, round float32) {
	sw := float32(max(r.config.ScreenWidth, 1))
	sh := float32(max(r.config.ScreenHeight, 1))

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	r.overlayProgram.Use()
	// Screen space has y down; NDC has y up.
	r.overlayProgram.SetVec4("uRect", x/sw*2-1, 1-(y+h)/sh*2, w/sw*2, h/sh*2)
	r.overlayProgram.SetVec4("uColor", color[0], color[1], color[2], color[3])
	r.overlayProgram.SetFloat("uRound", round)

	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}

func (r *Renderer) createQuad() {
	vertices := []float32{0, 0, 1, 0, 0, 1, 1, 1}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

var neutral = scene.Color{R: 0.5, G: 0.5, B: 0.52}

// slotColor picks the color a slot is drawn with: a direct channel, else a
// color-valued uniform, else neutral grey.
func slotColor(mat *scene.Material) scene.Color {
	if mat == nil {
		return neutral
	}
	if c, ok := mat.Tint(); ok {
		return *c
	}
	for _, key := range []string{"diffuseColor", "tint"} {
		if u := mat.Uniforms[key]; u != nil {
			if c, ok := u.Value.(*scene.Color); ok {
				return *c
			}
		}
	}
	return neutral
}

func slotGloss(mat *scene.Material) float32 {
	if mat != nil && strings.EqualFold(mat.Type, "Glass") {
		return 1
	}
	return 0.35
}
