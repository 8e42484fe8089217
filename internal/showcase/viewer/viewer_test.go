package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/showcase3d/internal/engine/camera"
	"github.com/Faultbox/showcase3d/internal/engine/material"
	"github.com/Faultbox/showcase3d/internal/engine/model"
	"github.com/Faultbox/showcase3d/internal/engine/projection"
	"github.com/Faultbox/showcase3d/internal/engine/scene"
	"github.com/Faultbox/showcase3d/internal/engine/tween"
	"github.com/Faultbox/showcase3d/internal/showcase/choreo"
	"github.com/Faultbox/showcase3d/internal/showcase/hotspot"
	"github.com/Faultbox/showcase3d/internal/showcase/page"
	"github.com/Faultbox/showcase3d/internal/showcase/states"
	"github.com/Faultbox/showcase3d/pkg/math"
)

const frame = time.Second / 60

type fixture struct {
	v     *Viewer
	scene *scene.Viewer
	doc   *page.Document
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	layout := page.NewLayout(600, []page.Section{
		{Name: "jumbotron", Height: 1},
		{Name: "sound", Height: 1},
		{Name: "display", Height: 1},
	})
	doc := page.NewDocument(layout)

	phone, registry := model.Phone(0x1a1a1a)
	root := scene.NewGroup("scene").Add(phone)
	cam := camera.New(math.Vec3{X: 3, Z: 5}, math.Vec3{}, 45, 0.1, 100)
	sv := scene.NewViewer(root, cam)
	sv.Registry = registry

	settings := choreo.DefaultSettings()
	settings.Scrub = 0

	v := New(Options{
		Scene:          sv,
		Model:          phone,
		Surface:        doc,
		Layout:         layout,
		Choreography:   settings,
		Hotspots:       hotspot.DefaultDefinitions(),
		Colors:         material.DefaultColors(),
		InitialColor:   "black",
		OverlayVisible: true,
		Viewport:       projection.Viewport{Width: 800, Height: 600},
	})
	require.True(t, v.Ready())
	return &fixture{v: v, scene: sv, doc: doc, now: time.Unix(0, 0)}
}

func (f *fixture) frames(n int) {
	for i := 0; i < n; i++ {
		f.now = f.now.Add(frame)
		f.v.Frame(f.now)
	}
}

func (f *fixture) scrollTo(y float32) {
	f.v.OnScroll(f.doc.ScrollTo(y))
}

func TestPreviewRoundTrip(t *testing.T) {
	f := newFixture(t)
	baseline := f.scene.FrameListeners()

	f.scrollTo(1200)
	f.v.TriggerPreview()

	assert.Equal(t, states.PreviewActive, f.v.Mode())
	assert.True(t, f.v.TrackingHotspots())
	assert.Equal(t, baseline+1, f.scene.FrameListeners())
	assert.True(t, f.doc.CanvasInteractive())
	assert.Equal(t, float32(0), f.doc.ContentOpacity())
	assert.True(t, f.v.Camera().ControlsEnabled)
	assert.Equal(t, choreo.OwnerEnter, f.v.CameraOwner())

	f.frames(130)
	enter := choreo.DefaultSettings().EnterPose
	assert.True(t, enter.ApproxEqual(tween.Pose{Position: f.v.Camera().Position, Target: f.v.Camera().Target}, 1e-4))
	require.Len(t, f.v.Hotspots(), 5)

	f.v.HandleExit()

	assert.Equal(t, states.Browsing, f.v.Mode())
	assert.False(t, f.v.TrackingHotspots())
	assert.Equal(t, baseline, f.scene.FrameListeners())
	assert.Equal(t, 0, f.v.Camera().ChangeListeners())
	assert.False(t, f.doc.CanvasInteractive())
	assert.Equal(t, float32(1), f.doc.ContentOpacity())
	assert.False(t, f.v.Camera().ControlsEnabled)
	assert.Equal(t, choreo.OwnerScroll, f.v.CameraOwner())
	assert.Nil(t, f.v.Hotspots())
}

func TestImmediateExitLeavesNoLoop(t *testing.T) {
	f := newFixture(t)
	baseline := f.scene.FrameListeners()
	enter := choreo.DefaultSettings().EnterPose
	pose := func() tween.Pose {
		return tween.Pose{Position: f.v.Camera().Position, Target: f.v.Camera().Target}
	}

	f.scrollTo(1200)
	f.v.TriggerPreview()
	f.v.HandleExit()

	assert.Equal(t, states.Browsing, f.v.Mode())
	assert.False(t, f.v.TrackingHotspots())
	assert.Equal(t, baseline, f.scene.FrameListeners())
	assert.Equal(t, 0, f.v.Camera().ChangeListeners())
	assert.Equal(t, choreo.OwnerScroll, f.v.CameraOwner())

	before := pose()
	gap := before.Position.Distance(enter.Position)
	f.frames(10)
	after := pose()
	assert.True(t, after.ApproxEqual(before, 1e-5), "camera moved after exit: %+v", after)
	assert.GreaterOrEqual(t, after.Position.Distance(enter.Position), gap-1e-4)
}

func TestExitBeforeDisplayEndWaitsForScroll(t *testing.T) {
	f := newFixture(t)
	f.scrollTo(900)
	f.v.TriggerPreview()
	f.frames(130)

	f.v.HandleExit()
	assert.Equal(t, states.ExitingPreview, f.v.Mode())
	assert.False(t, f.v.TrackingHotspots())

	// Preview cannot be re-entered until the exit finishes.
	f.v.TriggerPreview()
	assert.Equal(t, states.ExitingPreview, f.v.Mode())

	f.scrollTo(1200)
	assert.Equal(t, states.Browsing, f.v.Mode())
}

func TestIllegalCallsAreIgnored(t *testing.T) {
	f := newFixture(t)

	f.v.HandleExit()
	assert.Equal(t, states.Browsing, f.v.Mode())

	f.scrollTo(1200)
	f.v.TriggerPreview()
	f.v.TriggerPreview()
	assert.Equal(t, states.PreviewActive, f.v.Mode())
	assert.Equal(t, 1, f.v.Camera().ChangeListeners())
}

func TestOverlayVisibilityGatesTracker(t *testing.T) {
	f := newFixture(t)
	f.scrollTo(1200)
	f.v.TriggerPreview()
	require.True(t, f.v.TrackingHotspots())

	f.v.SelectHotspot(2)
	f.v.SetOverlayVisible(false)
	assert.False(t, f.v.TrackingHotspots())
	_, open := f.v.SelectedHotspot()
	assert.False(t, open)

	f.v.SetOverlayVisible(true)
	assert.True(t, f.v.TrackingHotspots())

	// Showing the overlay while browsing does not start tracking.
	f.v.HandleExit()
	f.v.SetOverlayVisible(true)
	assert.False(t, f.v.TrackingHotspots())
}

func TestDragInterruptsEnterTween(t *testing.T) {
	f := newFixture(t)
	f.scrollTo(1200)

	assert.False(t, f.v.Drag(10, 0), "controls are disabled while browsing")

	f.v.TriggerPreview()
	f.frames(10)
	require.True(t, f.v.Drag(30, 5))
	assert.Equal(t, choreo.OwnerControls, f.v.CameraOwner())

	held := f.v.Camera().Position
	f.frames(10)
	assert.Equal(t, held, f.v.Camera().Position)

	assert.True(t, f.v.Zoom(1))
}

func TestClickTogglesHotspot(t *testing.T) {
	f := newFixture(t)
	f.scrollTo(1200)
	f.v.TriggerPreview()
	f.frames(130)

	var target *hotspot.State
	for _, s := range f.v.Hotspots() {
		if s.Visible() {
			s := s
			target = &s
			break
		}
	}
	require.NotNil(t, target, "at least one hotspot must face the inspect pose")

	require.True(t, f.v.Click(target.Screen.X, target.Screen.Y))
	d, ok := f.v.SelectedHotspot()
	require.True(t, ok)
	assert.Equal(t, target.ID, d.ID)

	require.True(t, f.v.Click(target.Screen.X, target.Screen.Y))
	_, ok = f.v.SelectedHotspot()
	assert.False(t, ok)

	assert.False(t, f.v.Click(-100, -100))
}

func TestChangeColor(t *testing.T) {
	f := newFixture(t)
	f.frames(1)
	before := f.scene.Stats()

	require.True(t, f.v.ChangeColor("red"))
	assert.Equal(t, "red", f.v.CurrentColor())

	after := f.scene.Stats()
	assert.Equal(t, before.DirtyCalls+1, after.DirtyCalls)
	assert.Equal(t, before.ShadowResets+1, after.ShadowResets)
	assert.Equal(t, 2, f.scene.PendingTimers())

	// 50ms and 100ms follow-up redraws run on later frames.
	f.frames(4)
	assert.Equal(t, 1, f.scene.PendingTimers())
	f.frames(3)
	assert.Equal(t, 0, f.scene.PendingTimers())
	assert.Equal(t, before.DirtyCalls+3, f.scene.Stats().DirtyCalls)

	body := f.v.model.Find("frame").Materials[0]
	assert.Equal(t, uint32(0xff3b30), body.Color.Hex())

	// Repeating the same color still writes channels.
	assert.True(t, f.v.ChangeColor("red"))
	assert.False(t, f.v.ChangeColor("chartreuse"))
	assert.Equal(t, "red", f.v.CurrentColor())
}

func TestUninitializedViewerIsInert(t *testing.T) {
	v := New(Options{Colors: material.DefaultColors()})
	assert.False(t, v.Ready())

	v.TriggerPreview()
	v.HandleExit()
	v.OnScroll(100)
	v.SelectHotspot(1)
	v.CloseHotspot()
	v.SetOverlayVisible(true)
	v.Close()

	assert.Equal(t, states.Browsing, v.Mode())
	assert.False(t, v.ChangeColor("red"))
	assert.False(t, v.Drag(1, 1))
	assert.False(t, v.Zoom(1))
	assert.False(t, v.Click(0, 0))
	assert.Nil(t, v.Hotspots())
	assert.Nil(t, v.Camera())
	assert.False(t, v.Frame(time.Now()))
	assert.Len(t, v.Colors(), 4)
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	f := newFixture(t)
	f.scrollTo(1200)
	f.v.TriggerPreview()

	f.v.Close()
	assert.Equal(t, 0, f.scene.FrameListeners())
	assert.Equal(t, 0, f.v.Camera().ChangeListeners())
}
