package scene

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/showcase3d/internal/engine/camera"
	"github.com/Faultbox/showcase3d/internal/engine/event"
	"github.com/Faultbox/showcase3d/internal/logger"
)

// Viewer owns the scene root, the active camera, the optional material
// registry and the frame pipeline. Frame order is: due timers, pre-frame
// listeners, world matrix update, render, frame listeners.
type Viewer struct {
	Scene  *Node
	Camera *camera.Camera

	// Registry is the asset manager's material list. Nil when the loader
	// does not expose one.
	Registry []*Material

	dirty    bool
	preFrame event.Listeners
	frame    event.Listeners

	timers  []timer
	timerID int

	now     time.Time
	started bool
	delta   time.Duration

	frames       int
	renders      int
	dirtyCalls   int
	shadowResets int

	log *zap.Logger
}

type timer struct {
	id  int
	due time.Time
	fn  func()
}

// NewViewer creates a facade around a scene root and camera.
func NewViewer(root *Node, cam *camera.Camera) *Viewer {
	if root == nil {
		root = NewGroup("scene")
	}
	return &Viewer{
		Scene:  root,
		Camera: cam,
		dirty:  true,
		log:    logger.Named("scene"),
	}
}

// SetDirty requests a render on the next frame.
func (v *Viewer) SetDirty() {
	v.dirty = true
	v.dirtyCalls++
}

// Dirty reports whether a render is pending.
func (v *Viewer) Dirty() bool {
	return v.dirty
}

// ResetShadows invalidates accumulated shadow and progressive buffers.
func (v *Viewer) ResetShadows() {
	v.shadowResets++
	v.dirty = true
}

// OnPreFrame registers fn to run at the start of every frame, before the
// render. Camera writers hook here.
func (v *Viewer) OnPreFrame(fn func()) (cancel func()) {
	return v.preFrame.Add(fn)
}

// OnFrame registers fn to run after the render of every frame.
// Readers of the camera (overlay projection) hook here.
func (v *Viewer) OnFrame(fn func()) (cancel func()) {
	return v.frame.Add(fn)
}

// FrameListeners returns the number of post-render subscriptions.
func (v *Viewer) FrameListeners() int {
	return v.frame.Len()
}

// After schedules fn on the first frame at or after delay from the current
// frame time.
func (v *Viewer) After(delay time.Duration, fn func()) {
	v.timerID++
	v.timers = append(v.timers, timer{id: v.timerID, due: v.now.Add(delay), fn: fn})
}

// PendingTimers returns the number of scheduled callbacks not yet run.
func (v *Viewer) PendingTimers() int {
	return len(v.timers)
}

// Delta returns the time elapsed between the current and previous frame.
func (v *Viewer) Delta() time.Duration {
	return v.delta
}

// Now returns the current frame time.
func (v *Viewer) Now() time.Time {
	return v.now
}

// Frame advances the pipeline to now. Returns true if the frame rendered.
func (v *Viewer) Frame(now time.Time) bool {
	if v.started {
		v.delta = now.Sub(v.now)
		if v.delta < 0 {
			v.delta = 0
		}
	} else {
		v.started = true
		v.delta = 0
		// Timers queued before the first frame count from it.
		for i := range v.timers {
			v.timers[i].due = now.Add(v.timers[i].due.Sub(v.now))
		}
	}
	v.now = now

	v.runTimers()
	v.preFrame.Emit()

	v.Scene.UpdateWorldMatrix()

	rendered := false
	if v.dirty {
		v.dirty = false
		v.renders++
		rendered = true
	}

	v.frame.Emit()
	v.frames++
	return rendered
}

func (v *Viewer) runTimers() {
	if len(v.timers) == 0 {
		return
	}
	var due, pending []timer
	for _, t := range v.timers {
		if !t.due.After(v.now) {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	v.timers = pending
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})
	for _, t := range due {
		t.fn()
	}
}

// Stats is a snapshot of frame pipeline counters.
type Stats struct {
	Frames       int
	Renders      int
	DirtyCalls   int
	ShadowResets int
}

// Stats returns the pipeline counters.
func (v *Viewer) Stats() Stats {
	return Stats{
		Frames:       v.frames,
		Renders:      v.renders,
		DirtyCalls:   v.dirtyCalls,
		ShadowResets: v.shadowResets,
	}
}

// LogStats writes the counters at debug level.
func (v *Viewer) LogStats() {
	s := v.Stats()
	v.log.Debug("frame pipeline",
		zap.Int("frames", s.Frames),
		zap.Int("renders", s.Renders),
		zap.Int("dirty_calls", s.DirtyCalls),
		zap.Int("shadow_resets", s.ShadowResets),
	)
}
