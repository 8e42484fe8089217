package choreo

import (
	"time"

	"github.com/Faultbox/showcase3d/internal/engine/tween"
	"github.com/Faultbox/showcase3d/pkg/math"
)

// Segment is one step of the browsing timeline: while the section's trigger
// region is scrolled through, the camera moves to End.
type Segment struct {
	Section string     `yaml:"section"`
	End     tween.Pose `yaml:"end"`
}

// Settings holds the poses and timings of every camera program.
type Settings struct {
	Timeline []Segment

	EnterPose     tween.Pose
	EnterDuration time.Duration
	EnterEase     string

	ExitSection string
	ExitPose    tween.Pose

	// Scrub is the lag of scroll-coupled motion. Zero writes in the
	// scroll handler.
	Scrub time.Duration
	FPS   int
}

// DefaultSettings returns the showcase's preset poses.
func DefaultSettings() Settings {
	return Settings{
		Timeline: []Segment{
			{
				Section: "sound",
				End: tween.Pose{
					Position: math.Vec3{X: -3.38, Y: -10.74, Z: -5.93},
					Target:   math.Vec3{X: 1.52, Y: 0.77, Z: -1.08},
				},
			},
			{
				Section: "display",
				End: tween.Pose{
					Position: math.Vec3{X: 1.56, Y: 5.0, Z: 0.01},
					Target:   math.Vec3{X: -0.55, Y: 0.32, Z: 0.0},
				},
			},
		},
		EnterPose: tween.Pose{
			Position: math.Vec3{X: 13.04, Y: -2.01, Z: 2.29},
			Target:   math.Vec3{X: 0.11, Y: 0.0, Z: 0.0},
		},
		EnterDuration: 2 * time.Second,
		EnterEase:     "power1.out",
		ExitSection:   "display",
		ExitPose: tween.Pose{
			Position: math.Vec3{X: 1.56, Y: 5.0, Z: 0.011},
			Target:   math.Vec3{X: -0.55, Y: 0.32, Z: 0.0},
		},
		Scrub: 2 * time.Second,
		FPS:   60,
	}
}
