// Package projection maps model-local and world points to screen space.
package projection

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/showcase3d/internal/engine/camera"
	"github.com/Faultbox/showcase3d/pkg/math"
)

// Viewport is the pixel size of the canvas.
type Viewport struct {
	Width  float32
	Height float32
}

// Aspect returns width/height.
func (v Viewport) Aspect() float32 {
	return v.Width / v.Height
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// ScreenPoint is a projected point in pixels, origin top-left, y down.
type ScreenPoint struct {
	X, Y    float32
	Visible bool
}

// WorldToScreen projects a world point through the camera into the viewport.
//
// Returns nil only if the camera or the viewport is unavailable. Points
// outside the frustum come back with Visible false.
func WorldToScreen(p math.Vec3, cam *camera.Camera, vp Viewport) *ScreenPoint {
	if cam == nil || vp.Empty() {
		return nil
	}
	if cam.HasMatrices() {
		return projectMatrices(p, cam, vp)
	}
	return projectBasis(p, cam, vp)
}

func projectMatrices(p math.Vec3, cam *camera.Camera, vp Viewport) *ScreenPoint {
	viewProj := cam.ProjectionMatrix(vp.Aspect()).Mul(cam.ViewMatrix())
	clip := viewProj.MulVec4(math.Vec4{p.X, p.Y, p.Z, 1})

	w := clip[3]
	if w == 0 {
		return &ScreenPoint{Visible: false}
	}
	ndcX, ndcY, ndcZ := clip[0]/w, clip[1]/w, clip[2]/w

	sp := toPixels(ndcX, ndcY, vp)
	sp.Visible = w > 0 && ndcZ > -1 && ndcZ < 1 && inViewport(sp, vp)
	return sp
}

// projectBasis projects without matrices, from the camera's look direction
// and field of view.
func projectBasis(p math.Vec3, cam *camera.Camera, vp Viewport) *ScreenPoint {
	forward := cam.Target.Sub(cam.Position).Normalize()
	if forward.IsZero() {
		return &ScreenPoint{Visible: false}
	}
	worldUp := math.Up
	if math32.Abs(forward.Dot(worldUp)) > 0.999 {
		// Looking straight up or down; any horizontal reference works.
		worldUp = math.Vec3{Z: -1}
	}
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	toPoint := p.Sub(cam.Position)
	depth := toPoint.Dot(forward)
	if depth <= 0 {
		return &ScreenPoint{Visible: false}
	}

	fov := cam.FOV
	if fov <= 0 {
		fov = 50
	}
	halfHeight := math32.Tan(math.Radians(fov)/2) * depth
	halfWidth := halfHeight * vp.Aspect()

	ndcX := toPoint.Dot(right) / halfWidth
	ndcY := toPoint.Dot(up) / halfHeight

	sp := toPixels(ndcX, ndcY, vp)
	sp.Visible = inViewport(sp, vp)
	return sp
}

func toPixels(ndcX, ndcY float32, vp Viewport) *ScreenPoint {
	return &ScreenPoint{
		X: (ndcX*0.5 + 0.5) * vp.Width,
		Y: (ndcY*-0.5 + 0.5) * vp.Height,
	}
}

func inViewport(sp *ScreenPoint, vp Viewport) bool {
	return sp.X >= 0 && sp.X <= vp.Width && sp.Y >= 0 && sp.Y <= vp.Height
}

// HitTest returns the index of the visible point closest to (x, y) within
// radius pixels, or -1.
func HitTest(points []*ScreenPoint, x, y, radius float32) int {
	best := -1
	bestDist := radius * radius
	for i, sp := range points {
		if sp == nil || !sp.Visible {
			continue
		}
		dx, dy := sp.X-x, sp.Y-y
		if d := dx*dx + dy*dy; d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
