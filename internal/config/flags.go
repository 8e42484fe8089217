package config

import (
	"github.com/spf13/pflag"
)

// Flags holds command-line overrides.
type Flags struct {
	ConfigPath string
	Debug      bool
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Scrub      float64

	fs *pflag.FlagSet
}

// Bind registers the override flags on fs.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.Float64Var(&f.Scrub, "scrub", 0, "Scroll smoothing lag in seconds (0 disables)")
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.fs != nil && f.fs.Changed("scrub") {
		cfg.Choreography.ScrubSeconds = f.Scrub
	}
}
