package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/showcase3d/internal/engine/material"
	"github.com/Faultbox/showcase3d/internal/engine/tween"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks that the settings can drive a viewer.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return invalid("graphics size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return invalid("camera fov %v out of (0, 180)", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return invalid("camera clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}

	if len(c.Page.Sections) == 0 {
		return invalid("page has no sections")
	}
	sections := make(map[string]bool, len(c.Page.Sections))
	for _, s := range c.Page.Sections {
		if s.Name == "" || s.Height <= 0 {
			return invalid("page section %q height %v", s.Name, s.Height)
		}
		if sections[s.Name] {
			return invalid("duplicate page section %q", s.Name)
		}
		sections[s.Name] = true
	}
	if c.Page.ScrollStep <= 0 {
		return invalid("page scroll_step %v", c.Page.ScrollStep)
	}

	ch := c.Choreography
	for _, seg := range ch.Timeline {
		if !sections[seg.Section] {
			return invalid("timeline section %q not on page", seg.Section)
		}
	}
	if !sections[ch.ExitSection] {
		return invalid("exit section %q not on page", ch.ExitSection)
	}
	if ch.EnterSeconds < 0 || ch.ScrubSeconds < 0 {
		return invalid("negative choreography duration")
	}
	if _, err := tween.EaseByName(ch.EnterEase); err != nil {
		return fmt.Errorf("%w: enter_ease: %v", ErrInvalid, err)
	}
	if ch.FPS <= 0 {
		return invalid("choreography fps %d", ch.FPS)
	}

	ids := make(map[int]bool, len(c.Hotspots))
	for _, h := range c.Hotspots {
		if h.ID <= 0 {
			return invalid("hotspot %q id %d", h.Name, h.ID)
		}
		if ids[h.ID] {
			return invalid("duplicate hotspot id %d", h.ID)
		}
		ids[h.ID] = true
	}

	options, err := c.ColorOptions()
	if err != nil {
		return err
	}
	if _, ok := material.FindColor(options, c.Colors.Initial); !ok {
		return invalid("initial color %q not in options", c.Colors.Initial)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log level %q", c.Logging.Level)
	}
	return nil
}

// ColorOptions parses the configured finishes.
func (c *Config) ColorOptions() ([]material.ColorOption, error) {
	if len(c.Colors.Options) == 0 {
		return nil, invalid("no color options")
	}
	options := make([]material.ColorOption, 0, len(c.Colors.Options))
	for _, e := range c.Colors.Options {
		v, err := material.ParseDisplay(e.Display)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		options = append(options, material.ColorOption{Name: e.Name, Display: e.Display, Value: v})
	}
	return options, nil
}
