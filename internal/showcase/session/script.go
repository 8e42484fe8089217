package session

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Step is one scripted user action followed by a number of frames.
type Step struct {
	Action string  `yaml:"action"`
	Y      float32 `yaml:"y,omitempty"`
	DX     float32 `yaml:"dx,omitempty"`
	DY     float32 `yaml:"dy,omitempty"`
	Color  string  `yaml:"color,omitempty"`
	ID     int     `yaml:"id,omitempty"`
	On     bool    `yaml:"on,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// Script is an ordered list of steps.
type Script struct {
	FPS   int    `yaml:"fps"`
	Steps []Step `yaml:"steps"`
}

// DefaultScript tours the page, opens the preview, orbits, recolors,
// opens a hotspot and returns to browsing.
func DefaultScript() Script {
	return Script{
		FPS: 60,
		Steps: []Step{
			{Action: "scroll", Y: 300, Frames: 30},
			{Action: "scroll", Y: 900, Frames: 30},
			{Action: "end", Frames: 150},
			{Action: "preview", Frames: 150},
			{Action: "drag", DX: 60, DY: -10, Frames: 5},
			{Action: "zoom", DY: 1, Frames: 5},
			{Action: "color", Color: "blue", Frames: 10},
			{Action: "select", ID: 1, Frames: 5},
			{Action: "close", Frames: 1},
			{Action: "exit", Frames: 150},
			{Action: "top", Frames: 150},
		},
	}
}

// LoadScript reads a YAML script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parsing script %s: %w", path, err)
	}
	return s, nil
}

// Result summarizes a scripted run.
type Result struct {
	Steps   int
	Frames  int
	Renders int
	Mode    string
	Color   string
}

// Play runs the script on a virtual clock starting at start.
func (s *Session) Play(script Script, start time.Time) (Result, error) {
	fps := script.FPS
	if fps <= 0 {
		fps = 60
	}
	step := time.Second / time.Duration(fps)
	now := start

	var res Result
	for i, st := range script.Steps {
		if err := s.apply(st); err != nil {
			return res, fmt.Errorf("step %d (%s): %w", i, st.Action, err)
		}
		frames := st.Frames
		if frames <= 0 {
			frames = 1
		}
		for f := 0; f < frames; f++ {
			if s.Frame(now) {
				res.Renders++
			}
			now = now.Add(step)
			res.Frames++
		}
		res.Steps++
		s.report(i, st)
	}
	res.Mode = s.Viewer.Mode().String()
	res.Color = s.Viewer.CurrentColor()
	return res, nil
}

func (s *Session) apply(st Step) error {
	v := s.Viewer
	switch st.Action {
	case "scroll":
		s.ScrollTo(st.Y)
	case "wheel":
		s.Wheel(st.DY)
	case "top":
		s.ScrollTo(0)
	case "end":
		s.ScrollTo(s.Doc.Layout().MaxScroll())
	case "preview":
		v.TriggerPreview()
	case "exit":
		v.HandleExit()
	case "drag":
		v.Drag(st.DX, st.DY)
	case "zoom":
		v.Zoom(st.DY)
	case "click":
		v.Click(st.DX, st.DY)
	case "color":
		v.ChangeColor(st.Color)
	case "select":
		v.SelectHotspot(st.ID)
	case "close":
		v.CloseHotspot()
	case "overlay":
		v.SetOverlayVisible(st.On)
	case "wait":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func (s *Session) report(i int, st Step) {
	cam := s.Viewer.Camera()
	fields := []zap.Field{
		zap.Int("step", i),
		zap.String("action", st.Action),
		zap.Stringer("mode", s.Viewer.Mode()),
		zap.Stringer("owner", s.Viewer.CameraOwner()),
		zap.Float32("scroll", s.Doc.ScrollY()),
		zap.Float32s("position", []float32{cam.Position.X, cam.Position.Y, cam.Position.Z}),
	}
	visible := 0
	for _, h := range s.Viewer.Hotspots() {
		if h.Visible() {
			visible++
			fields = append(fields, zap.Float32s(h.Name, []float32{h.Screen.X, h.Screen.Y}))
		}
	}
	fields = append(fields, zap.Int("hotspots_visible", visible))
	if d, ok := s.Viewer.SelectedHotspot(); ok {
		fields = append(fields, zap.String("open_panel", d.Name))
	}
	s.log.Info("step", fields...)
}
