package tween

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	vmath "github.com/Faultbox/showcase3d/pkg/math"
)

const settleEpsilon = 1e-4

// Follower eases a pose toward a goal with critically damped springs, one
// per component. A zero settle time makes it snap to every goal.
type Follower struct {
	spring harmonica.Spring
	step   time.Duration
	smooth bool

	pos, vel, goal [6]float64
	carry          time.Duration
}

// NewFollower creates a follower stepped at fps that settles roughly within
// settle.
func NewFollower(fps int, settle time.Duration) *Follower {
	if fps <= 0 {
		fps = 60
	}
	f := &Follower{
		step:   time.Second / time.Duration(fps),
		smooth: settle > 0,
	}
	if f.smooth {
		// A critically damped spring covers all but ~0.1% of the distance in 9/omega seconds.
		omega := 9 / settle.Seconds()
		f.spring = harmonica.NewSpring(harmonica.FPS(fps), omega, 1.0)
	}
	return f
}

// Smooth reports whether goals are approached over time.
func (f *Follower) Smooth() bool {
	return f.smooth
}

// Reset places the follower at p with no velocity and p as goal.
func (f *Follower) Reset(p Pose) {
	f.pos = flatten(p)
	f.goal = f.pos
	f.vel = [6]float64{}
	f.carry = 0
}

// SetGoal changes the pose the follower moves toward. Without smoothing the
// follower jumps there immediately.
func (f *Follower) SetGoal(p Pose) {
	f.goal = flatten(p)
	if !f.smooth {
		f.pos = f.goal
		f.vel = [6]float64{}
	}
}

// Pose returns the current pose.
func (f *Follower) Pose() Pose {
	return unflatten(f.pos)
}

// Goal returns the current goal.
func (f *Follower) Goal() Pose {
	return unflatten(f.goal)
}

// Settled reports whether the follower rests on its goal.
func (f *Follower) Settled() bool {
	for i := range f.pos {
		if math.Abs(f.pos[i]-f.goal[i]) > settleEpsilon || math.Abs(f.vel[i]) > settleEpsilon {
			return false
		}
	}
	return true
}

// Advance runs the springs for dt in fixed steps. Returns the new pose and
// whether it moved.
func (f *Follower) Advance(dt time.Duration) (Pose, bool) {
	if f.Settled() {
		f.carry = 0
		return f.Pose(), false
	}
	if !f.smooth {
		f.pos = f.goal
		f.vel = [6]float64{}
		return f.Pose(), true
	}

	f.carry += dt
	steps := int(f.carry / f.step)
	if steps == 0 {
		// Always make progress on a frame tick.
		steps = 1
		f.carry = 0
	} else {
		f.carry -= time.Duration(steps) * f.step
	}
	for s := 0; s < steps; s++ {
		for i := range f.pos {
			f.pos[i], f.vel[i] = f.spring.Update(f.pos[i], f.vel[i], f.goal[i])
		}
	}
	if f.Settled() || f.near() {
		f.pos = f.goal
		f.vel = [6]float64{}
	}
	return f.Pose(), true
}

// near reports whether every component is within the settle threshold,
// ignoring residual velocity below a visible amount.
func (f *Follower) near() bool {
	for i := range f.pos {
		if math.Abs(f.pos[i]-f.goal[i]) > settleEpsilon || math.Abs(f.vel[i]) > 1e-2 {
			return false
		}
	}
	return true
}

func flatten(p Pose) [6]float64 {
	return [6]float64{
		float64(p.Position.X), float64(p.Position.Y), float64(p.Position.Z),
		float64(p.Target.X), float64(p.Target.Y), float64(p.Target.Z),
	}
}

func unflatten(v [6]float64) Pose {
	return Pose{
		Position: vmath.Vec3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])},
		Target:   vmath.Vec3{X: float32(v[3]), Y: float32(v[4]), Z: float32(v[5])},
	}
}
