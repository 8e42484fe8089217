// Package session assembles a complete showcase from configuration: the
// scene, the phone model, the page document and the viewer. It has no
// window dependency so it can run headless.
package session

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/showcase3d/internal/config"
	"github.com/Faultbox/showcase3d/internal/engine/camera"
	"github.com/Faultbox/showcase3d/internal/engine/material"
	"github.com/Faultbox/showcase3d/internal/engine/model"
	"github.com/Faultbox/showcase3d/internal/engine/projection"
	"github.com/Faultbox/showcase3d/internal/engine/scene"
	"github.com/Faultbox/showcase3d/internal/logger"
	"github.com/Faultbox/showcase3d/internal/showcase/page"
	"github.com/Faultbox/showcase3d/internal/showcase/viewer"
)

// Session is one running showcase.
type Session struct {
	Scene  *scene.Viewer
	Model  *scene.Node
	Doc    *page.Document
	Viewer *viewer.Viewer

	scrollStep float32
	log        *zap.Logger
}

// New builds a session sized to the configured window.
func New(cfg *config.Config) (*Session, error) {
	colors, err := cfg.ColorOptions()
	if err != nil {
		return nil, err
	}
	initial, ok := material.FindColor(colors, cfg.Colors.Initial)
	if !ok {
		return nil, fmt.Errorf("%w: initial color %q", config.ErrInvalid, cfg.Colors.Initial)
	}

	phone, registry := model.Phone(initial.Value)
	root := scene.NewGroup("scene").Add(phone)

	pose := cfg.Camera.Initial
	cam := camera.New(pose.Position, pose.Target, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	sv := scene.NewViewer(root, cam)
	sv.Registry = registry

	width, height := float32(cfg.Graphics.Width), float32(cfg.Graphics.Height)
	layout := page.NewLayout(height, cfg.Page.Sections)
	doc := page.NewDocument(layout)

	v := viewer.New(viewer.Options{
		Scene:          sv,
		Model:          phone,
		Surface:        doc,
		Layout:         layout,
		Choreography:   cfg.ChoreoSettings(),
		Hotspots:       cfg.Hotspots,
		HitRadius:      cfg.Overlay.HitRadius,
		Colors:         colors,
		InitialColor:   initial.Name,
		OverlayVisible: cfg.Overlay.Visible,
		Viewport:       projection.Viewport{Width: width, Height: height},
	})

	s := &Session{
		Scene:      sv,
		Model:      phone,
		Doc:        doc,
		Viewer:     v,
		scrollStep: cfg.Page.ScrollStep,
		log:        logger.Named("session"),
	}
	// Start from the top of the page, as a fresh load does.
	s.ScrollTo(0)
	return s, nil
}

// Wheel scrolls the page by wheel notches; positive scrolls up.
func (s *Session) Wheel(notches float32) {
	s.ScrollTo(s.Doc.ScrollY() - notches*s.scrollStep)
}

// ScrollTo moves the page and forwards the clamped offset to the viewer.
func (s *Session) ScrollTo(y float32) {
	s.Viewer.OnScroll(s.Doc.ScrollTo(y))
}

// Resize applies a new window size to the page layout and projection.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Doc.Layout().Resize(float32(height))
	s.Viewer.SetViewport(projection.Viewport{Width: float32(width), Height: float32(height)})
	s.ScrollTo(s.Doc.ScrollY())
	s.log.Debug("resized", zap.Int("width", width), zap.Int("height", height))
}

// Frame advances the viewer to now.
func (s *Session) Frame(now time.Time) bool {
	return s.Viewer.Frame(now)
}

// Close releases the viewer.
func (s *Session) Close() {
	s.Viewer.Close()
	s.Scene.LogStats()
}
