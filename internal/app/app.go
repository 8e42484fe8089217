// Package app runs the showcase in an SDL window.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/showcase3d/internal/config"
	"github.com/Faultbox/showcase3d/internal/engine/debug"
	"github.com/Faultbox/showcase3d/internal/engine/input"
	"github.com/Faultbox/showcase3d/internal/engine/model"
	"github.com/Faultbox/showcase3d/internal/engine/renderer"
	"github.com/Faultbox/showcase3d/internal/engine/window"
	"github.com/Faultbox/showcase3d/internal/logger"
	"github.com/Faultbox/showcase3d/internal/showcase/session"
	"github.com/Faultbox/showcase3d/internal/showcase/states"
)

// Click tolerance in pixels between button down and up.
const clickSlop = 4

// App is the windowed showcase.
type App struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	session  *session.Session
	shots    *debug.Screenshots

	pressX, pressY int
	moved          bool

	log *zap.Logger
}

// New creates the window, the renderer and the session.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}
	a.log.Info("initializing showcase",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Showcase 3D",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer comes after the window, since the OpenGL context must exist.
	a.renderer, err = renderer.New(a.rendererConfig())
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.session, err = session.New(cfg)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	w, h := a.window.Size()
	a.session.Resize(w, h)
	a.renderer.Upload(model.BuildMesh(a.session.Model))

	a.input = input.New()
	a.shots = debug.NewScreenshots("screenshots", "showcase")
	return a, nil
}

func (a *App) rendererConfig() renderer.Config {
	dw, dh := a.window.DrawableSize()
	sw, sh := a.window.Size()
	return renderer.Config{Width: dw, Height: dh, ScreenWidth: sw, ScreenHeight: sh}
}

// Run starts the main loop and returns when the window closes.
func (a *App) Run() error {
	a.running = true

	var frameDelay time.Duration
	if a.cfg.Graphics.FPSLimit > 0 {
		frameDelay = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		start := time.Now()

		if a.input.Update() {
			a.running = false
			break
		}
		for _, ev := range a.input.Events() {
			a.handle(ev)
		}

		if a.session.Frame(start) {
			a.render()
			a.window.SwapBuffers()
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameDelay > 0 {
			if rest := frameDelay - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		} else if !a.cfg.Graphics.VSync {
			// Without vsync an idle scene would spin a core.
			sdl.Delay(1)
		}
	}
	return nil
}

// Close cleans up app resources.
func (a *App) Close() {
	a.log.Info("closing showcase")
	if a.session != nil {
		a.session.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handle(ev input.Event) {
	v := a.session.Viewer
	switch ev.Type {
	case input.EventWindowResize:
		a.renderer.Resize(a.rendererConfig())
		w, h := a.window.Size()
		a.session.Resize(w, h)
		a.session.Scene.SetDirty()

	case input.EventMouseWheel:
		if v.Mode() == states.PreviewActive {
			v.Zoom(ev.WheelY)
		} else {
			a.session.Wheel(ev.WheelY)
			// The page content moves even when the camera pose does not.
			a.session.Scene.SetDirty()
		}

	case input.EventMouseDown:
		if ev.Button == sdl.BUTTON_LEFT {
			a.pressX, a.pressY = ev.MouseX, ev.MouseY
			a.moved = false
		}

	case input.EventMouseMove:
		if a.input.Dragging() {
			if abs(ev.MouseX-a.pressX) > clickSlop || abs(ev.MouseY-a.pressY) > clickSlop {
				a.moved = true
			}
			if a.moved {
				v.Drag(float32(ev.RelX), float32(ev.RelY))
			}
		}

	case input.EventMouseUp:
		if ev.Button == sdl.BUTTON_LEFT && !a.moved {
			a.click(float32(ev.MouseX), float32(ev.MouseY))
		}

	case input.EventKeyDown:
		a.key(ev.Key)
	}
}

func (a *App) key(code sdl.Scancode) {
	v := a.session.Viewer
	switch code {
	case sdl.SCANCODE_ESCAPE:
		if v.Mode() == states.PreviewActive {
			v.HandleExit()
		} else {
			a.running = false
		}
	case sdl.SCANCODE_P, sdl.SCANCODE_RETURN:
		v.TriggerPreview()
	case sdl.SCANCODE_H:
		v.SetOverlayVisible(!v.OverlayVisible())
		a.session.Scene.SetDirty()
	case sdl.SCANCODE_HOME:
		a.session.ScrollTo(0)
		a.session.Scene.SetDirty()
	case sdl.SCANCODE_END:
		a.session.ScrollTo(a.session.Doc.Layout().MaxScroll())
		a.session.Scene.SetDirty()
	case sdl.SCANCODE_F12:
		a.screenshot()
	case sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3, sdl.SCANCODE_4:
		if v.Mode() != states.PreviewActive {
			return
		}
		colors := v.Colors()
		if i := int(code - sdl.SCANCODE_1); i < len(colors) {
			v.ChangeColor(colors[i].Name)
		}
	}
}

func (a *App) click(x, y float32) {
	v := a.session.Viewer
	if v.Mode() != states.PreviewActive {
		// The page's preview button sits on the display section.
		if a.overPreviewButton(x, y) {
			v.TriggerPreview()
		}
		return
	}
	if i, ok := a.swatchAt(x, y); ok {
		v.ChangeColor(v.Colors()[i].Name)
		return
	}
	if v.Click(x, y) {
		a.session.Scene.SetDirty()
		return
	}
	if _, open := v.SelectedHotspot(); open {
		v.CloseHotspot()
		a.session.Scene.SetDirty()
	}
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	a.shots.Fit(a.window.Size())
	path, err := a.shots.Save(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
