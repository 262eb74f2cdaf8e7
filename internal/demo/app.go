// Package demo runs the OpenGL demo scenes.
package demo

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemo/internal/config"
	"github.com/Faultbox/gldemo/internal/engine/gpu"
	"github.com/Faultbox/gldemo/internal/engine/timing"
	"github.com/Faultbox/gldemo/internal/engine/window"
	"github.com/Faultbox/gldemo/internal/logger"
)

// ErrUniformNotFound is returned when a shader lacks a uniform a scene sets.
var ErrUniformNotFound = errors.New("uniform not found")

// Scene is one demo's GPU state and per-frame behaviour.
type Scene interface {
	// Resize adapts the scene to a new drawable size.
	Resize(width, height int) error
	// Update advances the scene by dt seconds.
	Update(dt float64) error
	// Draw issues the scene's draw calls. The target is already cleared.
	Draw() error
	Close()
}

// Builder creates a scene on a ready graphics context.
type Builder func(ctx gpu.Context, cfg *config.Config, width, height int) (Scene, error)

// App owns the window, graphics context, frame timer and scene.
type App struct {
	window window.Window
	ctx    gpu.Context
	timer  *timing.FrameTimer
	scene  Scene
	log    *zap.Logger
	title  string

	width   int
	height  int
	lastFPS float64
}

// New opens a window, loads OpenGL and builds the scene.
func New(cfg *config.Config, title string, build Builder) (*App, error) {
	wc := windowConfig(cfg, title, false)
	win, err := window.New(wc)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// OpenGL must be loaded after the window made its context current.
	ctx, err := gpu.NewGL()
	if err != nil {
		win.Close()
		return nil, err
	}

	width, height := win.Size()
	scene, err := build(ctx, cfg, width, height)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	return newApp(win, ctx, timing.New(cfg.Timing.FPSWindow), scene, wc.Title, logger.Named("demo")), nil
}

func newApp(win window.Window, ctx gpu.Context, timer *timing.FrameTimer, scene Scene, title string, log *zap.Logger) *App {
	a := &App{
		window: win,
		ctx:    ctx,
		timer:  timer,
		scene:  scene,
		log:    log,
		title:  title,
	}
	a.width, a.height = win.Size()
	ctx.Viewport(0, 0, a.width, a.height)
	ctx.SetClearColor(0, 0, 0, 1)
	return a
}

// windowConfig maps the config file's window section onto the window package.
func windowConfig(cfg *config.Config, title string, hidden bool) window.Config {
	major, minor, _ := cfg.Window.GLVersionParts()
	if cfg.Window.Title != "" {
		title = cfg.Window.Title
	}
	wc := window.Config{
		Backend:    cfg.Window.Backend,
		GLMajor:    major,
		GLMinor:    minor,
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		Resizable:  cfg.Window.Resizable,
		VSync:      cfg.Window.VSync,
		Cursor:     cfg.Window.Cursor,
		Samples:    cfg.Window.Samples,
		Hidden:     hidden,
	}
	if hidden {
		wc.Width, wc.Height = cfg.Output.Width, cfg.Output.Height
		wc.Fullscreen = false
		wc.Resizable = false
	}
	return wc
}

// Run drives the frame loop until the window is asked to close.
func (a *App) Run() error {
	a.log.Info("starting render loop")
	a.timer.Reset()

	for {
		a.window.PollEvents()
		if a.window.ShouldClose() {
			a.log.Info("window closed")
			return nil
		}
		if err := a.Frame(); err != nil {
			return err
		}
	}
}

// Frame advances, renders and presents one frame.
func (a *App) Frame() error {
	dt := a.timer.Tick()

	if w, h := a.window.Size(); (w != a.width || h != a.height) && w > 0 && h > 0 {
		a.width, a.height = w, h
		a.ctx.Viewport(0, 0, w, h)
		if err := a.scene.Resize(w, h); err != nil {
			return fmt.Errorf("resize to %dx%d: %w", w, h, err)
		}
		a.log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
	}

	if err := a.scene.Update(dt); err != nil {
		return fmt.Errorf("update error: %w", err)
	}

	a.ctx.Clear()
	if err := a.scene.Draw(); err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	a.window.SwapBuffers()

	if fps := a.timer.FPS(); fps != a.lastFPS {
		a.log.Info("fps", zap.Float64("fps", fps))
		a.window.SetTitle(fmt.Sprintf("%s (%.0f fps)", a.title, fps))
		a.lastFPS = fps
	}
	return nil
}

// Close releases the scene and then the window.
func (a *App) Close() {
	a.log.Info("closing demo")
	if a.scene != nil {
		a.scene.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
