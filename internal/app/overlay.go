package app

import (
	"github.com/Faultbox/showcase3d/internal/engine/material"
	"github.com/Faultbox/showcase3d/internal/engine/renderer"
	"github.com/Faultbox/showcase3d/internal/showcase/states"
)

const (
	swatchSize   = 28
	swatchGap    = 12
	swatchBottom = 36
	markerRadius = 9
)

var (
	veilColor     = renderer.RGBA{0.96, 0.96, 0.97, 0.85}
	buttonColor   = renderer.RGBA{0.26, 0.52, 0.96, 1}
	markerColor   = renderer.RGBA{1, 1, 1, 0.9}
	selectedColor = renderer.RGBA{0.26, 0.52, 0.96, 1}
	panelColor    = renderer.RGBA{0.08, 0.08, 0.1, 0.85}
	ringColor     = renderer.RGBA{1, 1, 1, 1}
)

// render draws the model, then either the page content veil or the
// preview controls on top.
func (a *App) render() {
	v := a.session.Viewer
	a.renderer.Begin()
	a.renderer.DrawModel(v.Camera())

	vp := v.Viewport()
	if opacity := a.session.Doc.ContentOpacity(); opacity > 0 {
		// Page content occupies the left column of each section.
		c := veilColor
		c[3] *= opacity
		a.renderer.DrawRect(0, 0, vp.Width*0.38, vp.Height, c)
		if x, y, w, h, ok := a.previewButton(); ok {
			a.renderer.DrawRect(x, y, w, h, buttonColor)
		}
	}

	if v.Mode() != states.PreviewActive {
		return
	}

	selected, open := v.SelectedHotspot()
	for _, h := range v.Hotspots() {
		if !h.Visible() {
			continue
		}
		c := markerColor
		if open && selected.ID == h.ID {
			c = selectedColor
			a.renderer.DrawRect(h.Screen.X+14, h.Screen.Y-20, 180, 40, panelColor)
		}
		a.renderer.DrawDisc(h.Screen.X, h.Screen.Y, markerRadius, c)
	}

	for i, opt := range v.Colors() {
		x, y := a.swatchOrigin(i, len(v.Colors()))
		if opt.Name == v.CurrentColor() {
			a.renderer.DrawDisc(x+swatchSize/2, y+swatchSize/2, swatchSize/2+3, ringColor)
		}
		a.renderer.DrawDisc(x+swatchSize/2, y+swatchSize/2, swatchSize/2, swatchRGBA(opt))
	}
}

func (a *App) swatchOrigin(i, n int) (float32, float32) {
	vp := a.session.Viewer.Viewport()
	total := float32(n*swatchSize + (n-1)*swatchGap)
	x := (vp.Width-total)/2 + float32(i*(swatchSize+swatchGap))
	return x, vp.Height - swatchBottom - swatchSize
}

func (a *App) swatchAt(x, y float32) (int, bool) {
	n := len(a.session.Viewer.Colors())
	for i := 0; i < n; i++ {
		sx, sy := a.swatchOrigin(i, n)
		if x >= sx && x <= sx+swatchSize && y >= sy && y <= sy+swatchSize {
			return i, true
		}
	}
	return 0, false
}

// previewButton returns the on-screen rectangle of the display section's
// preview button, if that section is in view.
func (a *App) previewButton() (x, y, w, h float32, ok bool) {
	layout := a.session.Doc.Layout()
	top, found := layout.Top(a.cfg.Choreography.ExitSection)
	if !found {
		return 0, 0, 0, 0, false
	}
	vp := a.session.Viewer.Viewport()
	y = top - a.session.Doc.ScrollY() + vp.Height*0.6
	if y < 0 || y > vp.Height {
		return 0, 0, 0, 0, false
	}
	return vp.Width * 0.06, y, 160, 44, true
}

func (a *App) overPreviewButton(x, y float32) bool {
	bx, by, bw, bh, ok := a.previewButton()
	return ok && x >= bx && x <= bx+bw && y >= by && y <= by+bh
}

func swatchRGBA(opt material.ColorOption) renderer.RGBA {
	return renderer.RGBA{
		float32(opt.Value>>16&0xff) / 255,
		float32(opt.Value>>8&0xff) / 255,
		float32(opt.Value&0xff) / 255,
		1,
	}
}
