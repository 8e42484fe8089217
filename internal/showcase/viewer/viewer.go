// Package viewer is the showcase's single state record: it owns the preview
// mode and routes page and pointer input to the camera choreographer, the
// hotspot tracker and the material mutator.
package viewer

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/showcase3d/internal/engine/camera"
	"github.com/Faultbox/showcase3d/internal/engine/material"
	"github.com/Faultbox/showcase3d/internal/engine/projection"
	"github.com/Faultbox/showcase3d/internal/engine/scene"
	"github.com/Faultbox/showcase3d/internal/logger"
	"github.com/Faultbox/showcase3d/internal/showcase/choreo"
	"github.com/Faultbox/showcase3d/internal/showcase/hotspot"
	"github.com/Faultbox/showcase3d/internal/showcase/page"
	"github.com/Faultbox/showcase3d/internal/showcase/states"
)

// Delays of the follow-up redraws after a recolor.
var recolorRefreshDelays = []time.Duration{50 * time.Millisecond, 100 * time.Millisecond}

// Options configures a Viewer.
type Options struct {
	Scene   *scene.Viewer
	Model   *scene.Node
	Surface page.Surface
	Layout  *page.Layout

	Choreography choreo.Settings
	Hotspots     []hotspot.Definition
	HitRadius    float32
	Colors       []material.ColorOption
	InitialColor string

	OverlayVisible bool
	Viewport       projection.Viewport
}

// Viewer coordinates the 3D canvas with the page. All methods run on the
// frame loop's goroutine.
type Viewer struct {
	scene   *scene.Viewer
	model   *scene.Node
	surface page.Surface

	machine  *states.Machine
	choreo   *choreo.Choreographer
	controls *camera.Controls
	tracker  *hotspot.Tracker
	mutator  *material.Mutator

	colors         []material.ColorOption
	currentColor   string
	overlayVisible bool
	viewport       projection.Viewport

	stopPreFrame func()

	log *zap.Logger
}

// New wires a viewer. Without a scene, camera or model the viewer is left
// uninitialized and every operation is a no-op.
func New(opts Options) *Viewer {
	v := &Viewer{
		scene:          opts.Scene,
		model:          opts.Model,
		surface:        opts.Surface,
		machine:        states.NewMachine(),
		colors:         append([]material.ColorOption(nil), opts.Colors...),
		currentColor:   opts.InitialColor,
		overlayVisible: opts.OverlayVisible,
		viewport:       opts.Viewport,
		log:            logger.Named("viewer"),
	}
	if v.surface == nil {
		v.surface = nopSurface{}
	}
	if !v.Ready() {
		v.log.Warn("viewer not initialized: missing scene, camera or model")
		return v
	}

	cam := v.scene.Camera
	v.choreo = choreo.New(cam, opts.Layout, opts.Choreography)
	v.choreo.BindScrollTween(&cam.Position, &cam.Target, v.scene.SetDirty)
	v.controls = camera.NewControls(cam)
	v.tracker = hotspot.NewTracker(hotspot.Config{
		Definitions: opts.Hotspots,
		Camera:      cam,
		Anchor:      v.model,
		Frames:      v.scene,
		Viewport:    v.Viewport,
	})
	if opts.HitRadius > 0 {
		v.tracker.HitRadius = opts.HitRadius
	}
	v.mutator = material.NewMutator()
	colorable := v.mutator.Register(v.scene.Scene)

	v.stopPreFrame = v.scene.OnPreFrame(func() {
		v.choreo.Advance(v.scene.Delta())
	})
	v.machine.OnTransition(func(from, to states.Mode) {
		v.log.Info("mode changed", zap.Stringer("from", from), zap.Stringer("to", to))
		v.reconcileTracker()
	})

	v.log.Info("viewer initialized",
		zap.Int("hotspots", len(opts.Hotspots)),
		zap.Int("colors", len(v.colors)),
		zap.Int("colorable_slots", colorable),
	)
	return v
}

// Ready reports whether the viewer has a scene, camera and model.
func (v *Viewer) Ready() bool {
	return v.scene != nil && v.scene.Camera != nil && v.model != nil
}

// Mode returns the current preview mode.
func (v *Viewer) Mode() states.Mode {
	return v.machine.Current()
}

// Camera returns the active camera, or nil.
func (v *Viewer) Camera() *camera.Camera {
	if v.scene == nil {
		return nil
	}
	return v.scene.Camera
}

// CameraOwner returns the program currently driving the camera.
func (v *Viewer) CameraOwner() choreo.Owner {
	if v.choreo == nil {
		return choreo.OwnerScroll
	}
	return v.choreo.Owner()
}

// TriggerPreview switches from browsing to the interactive preview.
func (v *Viewer) TriggerPreview() {
	if !v.Ready() {
		return
	}
	if err := v.machine.Transition(states.EnteringPreview); err != nil {
		v.log.Warn("preview ignored", zap.Error(err))
		return
	}
	v.surface.SetCanvasInteractive(true)
	v.surface.SetContentOpacity(0)
	v.choreo.TriggerEnter()
	v.transition(states.PreviewActive)
}

// HandleExit leaves preview. The mode returns to Browsing once the camera
// is back on the scroll timeline.
func (v *Viewer) HandleExit() {
	if !v.Ready() {
		return
	}
	if err := v.machine.Transition(states.ExitingPreview); err != nil {
		v.log.Warn("exit ignored", zap.Error(err))
		return
	}
	v.surface.SetCanvasInteractive(false)
	v.surface.SetContentOpacity(1)
	v.choreo.TriggerExit(func() {
		v.transition(states.Browsing)
	})
}

// OnScroll forwards the page scroll offset to the camera choreographer.
func (v *Viewer) OnScroll(y float32) {
	if !v.Ready() {
		return
	}
	v.choreo.OnScroll(y)
}

// Drag orbits the camera while controls are enabled. A drag during the
// enter tween takes the camera away from it.
func (v *Viewer) Drag(dx, dy float32) bool {
	if !v.Ready() || !v.scene.Camera.ControlsEnabled {
		return false
	}
	v.choreo.Interrupt()
	if !v.controls.HandleDrag(dx, dy) {
		return false
	}
	v.scene.SetDirty()
	return true
}

// Zoom dollies the camera while controls are enabled.
func (v *Viewer) Zoom(delta float32) bool {
	if !v.Ready() || !v.scene.Camera.ControlsEnabled {
		return false
	}
	v.choreo.Interrupt()
	if !v.controls.HandleZoom(delta) {
		return false
	}
	v.scene.SetDirty()
	return true
}

// Click toggles the hotspot panel under (x, y). Returns true if a marker
// was hit.
func (v *Viewer) Click(x, y float32) bool {
	if !v.Ready() || !v.tracker.Running() {
		return false
	}
	id, ok := v.tracker.HitTest(x, y)
	if !ok {
		return false
	}
	v.tracker.Select(id)
	return true
}

// SelectHotspot toggles the panel of hotspot id.
func (v *Viewer) SelectHotspot(id int) {
	if !v.Ready() {
		return
	}
	v.tracker.Select(id)
}

// CloseHotspot closes the open panel.
func (v *Viewer) CloseHotspot() {
	if !v.Ready() {
		return
	}
	v.tracker.Close()
}

// SelectedHotspot returns the hotspot whose panel is open.
func (v *Viewer) SelectedHotspot() (hotspot.Definition, bool) {
	if !v.Ready() {
		return hotspot.Definition{}, false
	}
	return v.tracker.Selected()
}

// Hotspots returns the current hotspot screen positions. Empty unless the
// overlay is being tracked.
func (v *Viewer) Hotspots() []hotspot.State {
	if !v.Ready() || !v.tracker.Running() {
		return nil
	}
	return v.tracker.States()
}

// TrackingHotspots reports whether the overlay tracker is subscribed.
func (v *Viewer) TrackingHotspots() bool {
	return v.Ready() && v.tracker.Running()
}

// SetOverlayVisible shows or hides the hotspot overlay.
func (v *Viewer) SetOverlayVisible(visible bool) {
	v.overlayVisible = visible
	if v.Ready() {
		v.reconcileTracker()
	}
}

// OverlayVisible reports whether the overlay is enabled.
func (v *Viewer) OverlayVisible() bool {
	return v.overlayVisible
}

// SetViewport updates the canvas size used for projection.
func (v *Viewer) SetViewport(vp projection.Viewport) {
	v.viewport = vp
	if v.TrackingHotspots() {
		v.tracker.Refresh()
	}
}

// Viewport returns the canvas size.
func (v *Viewer) Viewport() projection.Viewport {
	return v.viewport
}

// Colors returns the selectable finishes.
func (v *Viewer) Colors() []material.ColorOption {
	return append([]material.ColorOption(nil), v.colors...)
}

// CurrentColor returns the name of the last applied finish.
func (v *Viewer) CurrentColor() string {
	return v.currentColor
}

// ChangeColor applies the named finish to the model and everything sharing
// its materials. Returns true if any material channel was written.
func (v *Viewer) ChangeColor(name string) bool {
	if !v.Ready() {
		return false
	}
	opt, ok := material.FindColor(v.colors, name)
	if !ok {
		v.log.Warn("unknown color", zap.String("color", name))
		return false
	}

	report := v.mutator.ApplyAll(v.model, v.scene.Scene, v.scene.Registry, opt)
	if !report.Changed {
		v.log.Warn("no colorable materials found", zap.String("color", name))
		return false
	}

	v.currentColor = opt.Name
	v.scene.SetDirty()
	v.scene.ResetShadows()
	for _, d := range recolorRefreshDelays {
		v.scene.After(d, v.scene.SetDirty)
	}
	v.log.Info("color changed",
		zap.String("color", opt.Name),
		zap.Int("slots", report.Slots),
		zap.Int("materials", report.Materials),
	)
	return true
}

// Frame advances the scene pipeline. Returns true if the frame rendered.
func (v *Viewer) Frame(now time.Time) bool {
	if v.scene == nil {
		return false
	}
	return v.scene.Frame(now)
}

// Close releases every subscription the viewer holds.
func (v *Viewer) Close() {
	if !v.Ready() {
		return
	}
	v.tracker.Stop()
	if v.stopPreFrame != nil {
		v.stopPreFrame()
		v.stopPreFrame = nil
	}
}

func (v *Viewer) transition(to states.Mode) {
	if err := v.machine.Transition(to); err != nil {
		v.log.Warn("transition rejected", zap.Error(err))
	}
}

// reconcileTracker runs the tracker exactly when preview is active and the
// overlay is visible.
func (v *Viewer) reconcileTracker() {
	if v.machine.Is(states.PreviewActive) && v.overlayVisible {
		v.tracker.Start()
		return
	}
	v.tracker.Stop()
	v.tracker.Close()
}

type nopSurface struct{}

func (nopSurface) SetCanvasInteractive(bool) {}
func (nopSurface) SetContentOpacity(float32) {}
