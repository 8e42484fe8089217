package page

import (
	"go.uber.org/zap"

	"github.com/Faultbox/showcase3d/internal/logger"
)

// Surface is the part of the page the viewer toggles when swapping between
// page content and the interactive canvas.
type Surface interface {
	SetCanvasInteractive(interactive bool)
	SetContentOpacity(opacity float32)
}

// Document tracks scroll position and the state of the content container.
type Document struct {
	layout *Layout

	scrollY           float32
	canvasInteractive bool
	contentOpacity    float32

	log *zap.Logger
}

// NewDocument creates a document scrolled to the top with content visible
// and the canvas inert.
func NewDocument(layout *Layout) *Document {
	return &Document{
		layout:         layout,
		contentOpacity: 1,
		log:            logger.Named("page"),
	}
}

// Layout returns the section layout.
func (d *Document) Layout() *Layout {
	return d.layout
}

// ScrollTo moves to y, clamped to the page, and returns the new offset.
func (d *Document) ScrollTo(y float32) float32 {
	d.scrollY = d.layout.Clamp(y)
	return d.scrollY
}

// ScrollBy moves by dy and returns the new offset.
func (d *Document) ScrollBy(dy float32) float32 {
	return d.ScrollTo(d.scrollY + dy)
}

// ScrollY returns the current offset.
func (d *Document) ScrollY() float32 {
	return d.scrollY
}

// SetCanvasInteractive implements Surface.
func (d *Document) SetCanvasInteractive(interactive bool) {
	d.canvasInteractive = interactive
	d.log.Debug("canvas pointer events", zap.Bool("interactive", interactive))
}

// SetContentOpacity implements Surface.
func (d *Document) SetContentOpacity(opacity float32) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	d.contentOpacity = opacity
	d.log.Debug("content opacity", zap.Float32("opacity", opacity))
}

// CanvasInteractive reports whether the canvas receives pointer input.
func (d *Document) CanvasInteractive() bool {
	return d.canvasInteractive
}

// ContentOpacity returns the content container opacity.
func (d *Document) ContentOpacity() float32 {
	return d.contentOpacity
}
