// Package choreo drives the camera: the scroll-bound browsing timeline, the
// timed move into preview and the scrubbed return when preview closes. At
// most one program writes the camera at a time.
package choreo

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/showcase3d/internal/engine/camera"
	"github.com/Faultbox/showcase3d/internal/engine/tween"
	"github.com/Faultbox/showcase3d/internal/logger"
	"github.com/Faultbox/showcase3d/internal/showcase/page"
	"github.com/Faultbox/showcase3d/pkg/math"
)

// Owner is the program currently allowed to write the camera.
type Owner int

const (
	// OwnerScroll is the browsing timeline.
	OwnerScroll Owner = iota
	// OwnerEnter is the timed tween into preview.
	OwnerEnter
	// OwnerControls is the user's orbit controls.
	OwnerControls
	// OwnerExit is the scrubbed return from preview.
	OwnerExit
)

func (o Owner) String() string {
	switch o {
	case OwnerScroll:
		return "scroll"
	case OwnerEnter:
		return "enter"
	case OwnerControls:
		return "controls"
	case OwnerExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Choreographer owns every camera write that is not user input.
type Choreographer struct {
	settings Settings
	layout   *page.Layout
	cam      *camera.Camera

	position *math.Vec3
	target   *math.Vec3
	onUpdate func()
	initial  tween.Pose
	bound    bool

	owner    Owner
	scrollY  float32
	follower *tween.Follower

	enter     *tween.Timed
	enterEase tween.Ease

	exitFrom   tween.Pose
	exitRegion page.Region
	exitDone   func()

	log *zap.Logger
}

// New creates a choreographer for cam. The browsing timeline is inactive
// until BindScrollTween.
func New(cam *camera.Camera, layout *page.Layout, settings Settings) *Choreographer {
	c := &Choreographer{
		settings: settings,
		layout:   layout,
		cam:      cam,
		follower: tween.NewFollower(settings.FPS, settings.Scrub),
		log:      logger.Named("choreo"),
	}
	ease, err := tween.EaseByName(settings.EnterEase)
	if err != nil {
		c.log.Warn("falling back to power1.out for enter tween", zap.Error(err))
		ease = tween.Power1Out
	}
	c.enterEase = ease
	return c
}

// Owner returns the program that currently writes the camera.
func (c *Choreographer) Owner() Owner {
	return c.owner
}

// ScrollY returns the last scroll offset seen.
func (c *Choreographer) ScrollY() float32 {
	return c.scrollY
}

// BindScrollTween installs the browsing timeline on the given camera
// position and target. onUpdate runs after every write.
func (c *Choreographer) BindScrollTween(position, target *math.Vec3, onUpdate func()) {
	if position == nil || target == nil {
		return
	}
	c.position = position
	c.target = target
	c.onUpdate = onUpdate
	c.initial = c.current()
	c.bound = true
	c.owner = OwnerScroll
	c.follower.Reset(c.initial)
	c.log.Debug("scroll timeline bound", zap.Int("segments", len(c.settings.Timeline)))
}

// OnScroll feeds a new scroll offset to whichever scroll-coupled program
// owns the camera.
func (c *Choreographer) OnScroll(y float32) {
	c.scrollY = y
	if !c.bound {
		return
	}
	switch c.owner {
	case OwnerScroll:
		c.steer(c.BrowsingPose(y))
	case OwnerExit:
		c.steer(c.exitFrom.Lerp(c.settings.ExitPose, c.exitRegion.Progress(y)))
		c.checkExit()
	}
}

// BrowsingPose returns the timeline pose for scroll offset y. The last
// segment whose region has started decides the pose.
func (c *Choreographer) BrowsingPose(y float32) tween.Pose {
	pose := c.initial
	from := c.initial
	for _, seg := range c.settings.Timeline {
		if region, ok := c.region(seg.Section); ok {
			if p := region.Progress(y); p > 0 {
				pose = from.Lerp(seg.End, p)
			}
		}
		from = seg.End
	}
	return pose
}

// TriggerEnter starts the timed tween to the inspect pose and enables
// orbit controls. Scroll input is ignored until TriggerExit.
func (c *Choreographer) TriggerEnter() {
	if c.cam == nil || !c.bound {
		return
	}
	c.cam.ControlsEnabled = true
	c.exitDone = nil
	c.enter = tween.NewTimed(c.current(), c.settings.EnterPose, c.settings.EnterDuration, c.enterEase)
	c.owner = OwnerEnter
	c.log.Info("enter tween started", zap.Duration("duration", c.settings.EnterDuration))
}

// Interrupt hands the camera to the user's controls if the enter tween is
// still running.
func (c *Choreographer) Interrupt() {
	if c.owner != OwnerEnter {
		return
	}
	c.enter = nil
	c.owner = OwnerControls
	c.log.Debug("enter tween interrupted by user input")
}

// TriggerExit disables orbit controls and installs the return tween to the
// display pose, scrubbed by the exit section's trigger region. onDone runs
// once the scroll offset reaches the region end, after which the browsing
// timeline owns the camera again.
func (c *Choreographer) TriggerExit(onDone func()) {
	if c.cam == nil || !c.bound {
		return
	}
	c.cam.ControlsEnabled = false
	c.enter = nil
	c.exitFrom = c.current()
	region, ok := c.region(c.settings.ExitSection)
	if !ok {
		c.log.Warn("exit section not on page, exit completes at once",
			zap.String("section", c.settings.ExitSection))
	}
	c.exitRegion = region
	c.exitDone = onDone
	c.owner = OwnerExit
	c.follower.Reset(c.exitFrom)
	c.log.Info("exit tween installed",
		zap.String("section", c.settings.ExitSection),
		zap.Float32("scroll", c.scrollY),
	)
	c.OnScroll(c.scrollY)
}

// Advance runs frame-driven motion: the enter tween and scrub smoothing.
// Hook it to the pre-frame event.
func (c *Choreographer) Advance(dt time.Duration) {
	if !c.bound {
		return
	}
	switch c.owner {
	case OwnerEnter:
		pose, done := c.enter.Advance(dt)
		c.write(pose)
		if done {
			c.enter = nil
			c.owner = OwnerControls
			c.log.Debug("enter tween complete")
		}
	case OwnerScroll, OwnerExit:
		if pose, moved := c.follower.Advance(dt); moved {
			c.write(pose)
		}
	}
}

func (c *Choreographer) checkExit() {
	if !c.exitRegion.Passed(c.scrollY) {
		return
	}
	done := c.exitDone
	c.exitDone = nil
	c.owner = OwnerScroll
	c.log.Info("exit tween complete, scroll timeline resumed")
	c.steer(c.BrowsingPose(c.scrollY))
	if done != nil {
		done()
	}
}

// steer moves the follower's goal and writes immediately when not smoothing.
func (c *Choreographer) steer(p tween.Pose) {
	c.follower.SetGoal(p)
	if !c.follower.Smooth() {
		c.write(p)
	}
}

func (c *Choreographer) write(p tween.Pose) {
	*c.position = p.Position
	*c.target = p.Target
	if c.onUpdate != nil {
		c.onUpdate()
	}
}

func (c *Choreographer) current() tween.Pose {
	return tween.Pose{Position: *c.position, Target: *c.target}
}

func (c *Choreographer) region(section string) (page.Region, bool) {
	if c.layout == nil {
		return page.Region{}, false
	}
	return c.layout.Region(section)
}
