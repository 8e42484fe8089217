// Package config handles viewer configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/showcase3d/internal/engine/tween"
	"github.com/Faultbox/showcase3d/internal/showcase/choreo"
	"github.com/Faultbox/showcase3d/internal/showcase/hotspot"
	"github.com/Faultbox/showcase3d/internal/showcase/page"
	"github.com/Faultbox/showcase3d/pkg/math"
)

// Config holds all viewer settings.
type Config struct {
	Graphics     GraphicsConfig       `yaml:"graphics"`
	Page         PageConfig           `yaml:"page"`
	Camera       CameraConfig         `yaml:"camera"`
	Choreography ChoreographyConfig   `yaml:"choreography"`
	Hotspots     []hotspot.Definition `yaml:"hotspots"`
	Colors       ColorsConfig         `yaml:"colors"`
	Overlay      OverlayConfig        `yaml:"overlay"`
	Logging      LoggingConfig        `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// PageConfig describes the scrolling document around the canvas.
type PageConfig struct {
	Sections   []page.Section `yaml:"sections"`
	ScrollStep float32        `yaml:"scroll_step"` // pixels per wheel notch
}

// CameraConfig holds the lens and the pose before any scroll.
type CameraConfig struct {
	FOV     float32    `yaml:"fov"`
	Near    float32    `yaml:"near"`
	Far     float32    `yaml:"far"`
	Initial tween.Pose `yaml:"initial"`
}

// ChoreographyConfig holds the camera programs.
type ChoreographyConfig struct {
	Timeline     []choreo.Segment `yaml:"timeline"`
	EnterPose    tween.Pose       `yaml:"enter_pose"`
	EnterSeconds float64          `yaml:"enter_seconds"`
	EnterEase    string           `yaml:"enter_ease"`
	ExitSection  string           `yaml:"exit_section"`
	ExitPose     tween.Pose       `yaml:"exit_pose"`
	ScrubSeconds float64          `yaml:"scrub_seconds"`
	FPS          int              `yaml:"fps"`
}

// ColorEntry is a finish as written in the config file.
type ColorEntry struct {
	Name    string `yaml:"name"`
	Display string `yaml:"display"`
}

// ColorsConfig holds the color picker options.
type ColorsConfig struct {
	Options []ColorEntry `yaml:"options"`
	Initial string       `yaml:"initial"`
}

// OverlayConfig holds hotspot overlay settings.
type OverlayConfig struct {
	Visible   bool    `yaml:"visible"`
	HitRadius float32 `yaml:"hit_radius"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	moves := choreo.DefaultSettings()
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Page: PageConfig{
			Sections: []page.Section{
				{Name: "jumbotron", Height: 1},
				{Name: "sound", Height: 1},
				{Name: "display", Height: 1},
			},
			ScrollStep: 80,
		},
		Camera: CameraConfig{
			FOV:  45,
			Near: 0.1,
			Far:  100,
			Initial: tween.Pose{
				Position: math.Vec3{X: 3.2, Y: -0.1, Z: 4.5},
				Target:   math.Vec3{X: 0, Y: 0, Z: 0},
			},
		},
		Choreography: ChoreographyConfig{
			Timeline:     moves.Timeline,
			EnterPose:    moves.EnterPose,
			EnterSeconds: moves.EnterDuration.Seconds(),
			EnterEase:    moves.EnterEase,
			ExitSection:  moves.ExitSection,
			ExitPose:     moves.ExitPose,
			ScrubSeconds: moves.Scrub.Seconds(),
			FPS:          moves.FPS,
		},
		Hotspots: hotspot.DefaultDefinitions(),
		Colors: ColorsConfig{
			Options: []ColorEntry{
				{Name: "black", Display: "#1a1a1a"},
				{Name: "white", Display: "#f8f8f8"},
				{Name: "blue", Display: "#4285f4"},
				{Name: "red", Display: "#ff3b30"},
			},
			Initial: "black",
		},
		Overlay: OverlayConfig{
			Visible:   true,
			HitRadius: hotspot.DefaultHitRadius,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ChoreoSettings converts the choreography section for the choreographer.
func (c *Config) ChoreoSettings() choreo.Settings {
	ch := c.Choreography
	return choreo.Settings{
		Timeline:      ch.Timeline,
		EnterPose:     ch.EnterPose,
		EnterDuration: seconds(ch.EnterSeconds),
		EnterEase:     ch.EnterEase,
		ExitSection:   ch.ExitSection,
		ExitPose:      ch.ExitPose,
		Scrub:         seconds(ch.ScrubSeconds),
		FPS:           ch.FPS,
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
