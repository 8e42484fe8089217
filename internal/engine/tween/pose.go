package tween

import (
	"time"

	"github.com/Faultbox/showcase3d/pkg/math"
)

// Pose is a camera position and the point it looks at.
type Pose struct {
	Position math.Vec3 `yaml:"position"`
	Target   math.Vec3 `yaml:"target"`
}

// Lerp interpolates both points by t.
func (p Pose) Lerp(to Pose, t float32) Pose {
	return Pose{
		Position: p.Position.Lerp(to.Position, t),
		Target:   p.Target.Lerp(to.Target, t),
	}
}

// ApproxEqual compares both points within eps.
func (p Pose) ApproxEqual(o Pose, eps float32) bool {
	return p.Position.ApproxEqual(o.Position, eps) && p.Target.ApproxEqual(o.Target, eps)
}

// Timed moves a pose between two endpoints over a fixed duration.
type Timed struct {
	from, to Pose
	duration time.Duration
	elapsed  time.Duration
	ease     Ease
}

// NewTimed creates a tween; a nil ease means Power1Out.
func NewTimed(from, to Pose, duration time.Duration, ease Ease) *Timed {
	if ease == nil {
		ease = Power1Out
	}
	return &Timed{from: from, to: to, duration: duration, ease: ease}
}

// Advance moves the tween forward by dt and returns the pose and whether
// the terminal frame has been reached.
func (t *Timed) Advance(dt time.Duration) (Pose, bool) {
	t.elapsed += dt
	if t.duration <= 0 || t.elapsed >= t.duration {
		t.elapsed = t.duration
		return t.to, true
	}
	return t.from.Lerp(t.to, t.ease(t.Progress())), false
}

// Progress returns linear progress in [0,1].
func (t *Timed) Progress() float32 {
	if t.duration <= 0 {
		return 1
	}
	return clamp01(float32(t.elapsed) / float32(t.duration))
}

// Done reports whether the terminal frame has been reached.
func (t *Timed) Done() bool {
	return t.elapsed >= t.duration
}
