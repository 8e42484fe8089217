package hotspot

import (
	"go.uber.org/zap"

	"github.com/Faultbox/showcase3d/internal/engine/camera"
	"github.com/Faultbox/showcase3d/internal/engine/projection"
	"github.com/Faultbox/showcase3d/internal/logger"
)

// FrameSource delivers a callback after every rendered frame.
type FrameSource interface {
	OnFrame(fn func()) (cancel func())
}

// ChangeSource delivers a callback after user-driven camera changes.
type ChangeSource interface {
	OnChange(fn func()) (cancel func())
}

// DefaultHitRadius is the click radius around a marker in pixels.
const DefaultHitRadius = 18

// Tracker recomputes hotspot screen positions while started. Both the frame
// and camera change subscriptions feed Refresh, which rebuilds the state
// slice from scratch, so extra calls are harmless.
type Tracker struct {
	defs     []Definition
	cam      *camera.Camera
	anchor   projection.Transform
	frames   FrameSource
	changes  ChangeSource
	viewport func() projection.Viewport

	HitRadius float32

	states   []State
	selected int

	stopFrame  func()
	stopChange func()
	refreshes  int

	log *zap.Logger
}

// Config wires a tracker to its collaborators. Changes defaults to the
// camera when nil.
type Config struct {
	Definitions []Definition
	Camera      *camera.Camera
	Anchor      projection.Transform
	Frames      FrameSource
	Changes     ChangeSource
	Viewport    func() projection.Viewport
}

// NewTracker creates a stopped tracker.
func NewTracker(cfg Config) *Tracker {
	t := &Tracker{
		defs:      append([]Definition(nil), cfg.Definitions...),
		cam:       cfg.Camera,
		anchor:    cfg.Anchor,
		frames:    cfg.Frames,
		changes:   cfg.Changes,
		viewport:  cfg.Viewport,
		HitRadius: DefaultHitRadius,
		log:       logger.Named("hotspot"),
	}
	if t.changes == nil && t.cam != nil {
		t.changes = t.cam
	}
	return t
}

// Running reports whether the tracker holds its subscriptions.
func (t *Tracker) Running() bool {
	return t.stopFrame != nil || t.stopChange != nil
}

// Start subscribes to frame and camera change events and refreshes once.
// Calling Start on a running tracker does nothing.
func (t *Tracker) Start() {
	if t.Running() {
		return
	}
	if t.frames != nil {
		t.stopFrame = t.frames.OnFrame(t.Refresh)
	}
	if t.changes != nil {
		t.stopChange = t.changes.OnChange(t.Refresh)
	}
	t.log.Debug("tracking started", zap.Int("hotspots", len(t.defs)))
	t.Refresh()
}

// Stop cancels every subscription. Safe to call repeatedly.
func (t *Tracker) Stop() {
	if !t.Running() {
		return
	}
	if t.stopFrame != nil {
		t.stopFrame()
		t.stopFrame = nil
	}
	if t.stopChange != nil {
		t.stopChange()
		t.stopChange = nil
	}
	t.log.Debug("tracking stopped", zap.Int("refreshes", t.refreshes))
}

// Refresh recomputes world and screen positions for every definition.
func (t *Tracker) Refresh() {
	var vp projection.Viewport
	if t.viewport != nil {
		vp = t.viewport()
	}
	states := make([]State, len(t.defs))
	for i, d := range t.defs {
		world := projection.ToWorld(d.Local, t.anchor)
		states[i] = State{
			Definition: d,
			World:      world,
			Screen:     projection.WorldToScreen(world, t.cam, vp),
		}
	}
	t.states = states
	t.refreshes++
}

// Refreshes returns how many times positions were recomputed.
func (t *Tracker) Refreshes() int {
	return t.refreshes
}

// States returns a copy of the last computed positions.
func (t *Tracker) States() []State {
	return append([]State(nil), t.states...)
}

// Select opens the panel for id, or closes it if id is already open.
// Unknown ids are ignored.
func (t *Tracker) Select(id int) {
	if t.selected == id {
		t.selected = 0
		return
	}
	for _, d := range t.defs {
		if d.ID == id {
			t.selected = id
			return
		}
	}
}

// Close clears the open panel.
func (t *Tracker) Close() {
	t.selected = 0
}

// Selected returns the open hotspot definition.
func (t *Tracker) Selected() (Definition, bool) {
	if t.selected == 0 {
		return Definition{}, false
	}
	for _, d := range t.defs {
		if d.ID == t.selected {
			return d, true
		}
	}
	return Definition{}, false
}

// HitTest returns the id of the visible marker under (x, y).
func (t *Tracker) HitTest(x, y float32) (int, bool) {
	points := make([]*projection.ScreenPoint, len(t.states))
	for i, s := range t.states {
		points[i] = s.Screen
	}
	idx := projection.HitTest(points, x, y, t.HitRadius)
	if idx < 0 {
		return 0, false
	}
	return t.states[idx].ID, true
}
