package hotspot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/showcase3d/internal/engine/camera"
	"github.com/Faultbox/showcase3d/internal/engine/event"
	"github.com/Faultbox/showcase3d/internal/engine/projection"
	"github.com/Faultbox/showcase3d/internal/engine/scene"
	"github.com/Faultbox/showcase3d/pkg/math"
)

// countingFrames counts subscriptions so tests can check for leaks.
type countingFrames struct {
	listeners  event.Listeners
	subscribed int
}

func (f *countingFrames) OnFrame(fn func()) func() {
	f.subscribed++
	return f.listeners.Add(fn)
}

func (f *countingFrames) tick() {
	f.listeners.Emit()
}

func newTestTracker(frames FrameSource) (*Tracker, *camera.Camera) {
	cam := camera.New(math.Vec3{Z: 10}, math.Vec3{}, 50, 0.1, 100)
	model := scene.NewGroup("model")
	tr := NewTracker(Config{
		Definitions: []Definition{
			{ID: 1, Name: "center", Local: math.Vec3{}},
			{ID: 2, Name: "behind", Local: math.Vec3{Z: 20}},
		},
		Camera:   cam,
		Anchor:   model,
		Frames:   frames,
		Viewport: func() projection.Viewport { return projection.Viewport{Width: 800, Height: 600} },
	})
	return tr, cam
}

func TestStartRefreshesImmediately(t *testing.T) {
	frames := &countingFrames{}
	tr, _ := newTestTracker(frames)

	tr.Start()
	require.True(t, tr.Running())

	states := tr.States()
	require.Len(t, states, 2)
	require.NotNil(t, states[0].Screen)
	assert.InDelta(t, 400, states[0].Screen.X, 0.01)
	assert.InDelta(t, 300, states[0].Screen.Y, 0.01)
	assert.True(t, states[0].Visible())
	assert.False(t, states[1].Visible())
}

func TestDoubleStartKeepsOneSubscription(t *testing.T) {
	frames := &countingFrames{}
	tr, cam := newTestTracker(frames)

	tr.Start()
	tr.Start()

	assert.Equal(t, 1, frames.subscribed)
	assert.Equal(t, 1, frames.listeners.Len())
	assert.Equal(t, 1, cam.ChangeListeners())

	before := tr.Refreshes()
	frames.tick()
	assert.Equal(t, before+1, tr.Refreshes())
}

func TestStopUnsubscribesAndIsIdempotent(t *testing.T) {
	frames := &countingFrames{}
	tr, cam := newTestTracker(frames)

	tr.Start()
	tr.Stop()
	tr.Stop()

	assert.False(t, tr.Running())
	assert.Equal(t, 0, frames.listeners.Len())
	assert.Equal(t, 0, cam.ChangeListeners())

	before := tr.Refreshes()
	frames.tick()
	assert.Equal(t, before, tr.Refreshes())

	tr.Start()
	assert.Equal(t, 2, frames.subscribed)
	assert.Equal(t, 1, frames.listeners.Len())
}

func TestCameraChangeRefreshes(t *testing.T) {
	frames := &countingFrames{}
	tr, cam := newTestTracker(frames)
	tr.Start()

	cam.ControlsEnabled = true
	controls := camera.NewControls(cam)

	before := tr.Refreshes()
	require.True(t, controls.HandleDrag(40, 0))
	assert.Equal(t, before+1, tr.Refreshes())
}

func TestRefreshWithoutCamera(t *testing.T) {
	tr := NewTracker(Config{Definitions: DefaultDefinitions()})
	tr.Start()

	states := tr.States()
	require.Len(t, states, 5)
	for _, s := range states {
		assert.Nil(t, s.Screen)
		assert.False(t, s.Visible())
		assert.Equal(t, s.Local, s.World)
	}
	tr.Stop()
}

func TestRefreshFollowsModelTransform(t *testing.T) {
	frames := &countingFrames{}
	tr, _ := newTestTracker(frames)
	model := scene.NewGroup("model")
	model.Position = math.Vec3{X: 1}
	model.HasTransform = true
	tr.anchor = model

	tr.Refresh()
	assert.Equal(t, math.Vec3{X: 1}, tr.States()[0].World)
	assert.Greater(t, tr.States()[0].Screen.X, float32(400))
}

func TestSelectToggles(t *testing.T) {
	tr, _ := newTestTracker(&countingFrames{})

	tr.Select(1)
	d, ok := tr.Selected()
	require.True(t, ok)
	assert.Equal(t, "center", d.Name)

	tr.Select(2)
	d, _ = tr.Selected()
	assert.Equal(t, 2, d.ID)

	tr.Select(2)
	_, ok = tr.Selected()
	assert.False(t, ok)

	tr.Select(99)
	_, ok = tr.Selected()
	assert.False(t, ok)

	tr.Select(1)
	tr.Close()
	_, ok = tr.Selected()
	assert.False(t, ok)
}

func TestHitTest(t *testing.T) {
	tr, _ := newTestTracker(&countingFrames{})
	tr.Refresh()

	id, ok := tr.HitTest(405, 296)
	require.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = tr.HitTest(100, 100)
	assert.False(t, ok)
}

func TestStatesReturnsCopy(t *testing.T) {
	tr, _ := newTestTracker(&countingFrames{})
	tr.Refresh()

	states := tr.States()
	states[0].Name = "mutated"
	assert.Equal(t, "center", tr.States()[0].Name)
}
