// Package window creates a window with an OpenGL core context.
//
// Two backends are available: SDL2 (the default) and GLFW. Both must be
// driven from the main OS thread.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemo/internal/config"
	"github.com/Faultbox/gldemo/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// ErrUnknownBackend is returned by New for a backend it does not know.
var ErrUnknownBackend = errors.New("unknown window backend")

// Config holds window configuration.
type Config struct {
	Backend    string // config.BackendSDL or config.BackendGLFW
	GLMajor    int
	GLMinor    int
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	Resizable  bool
	VSync      bool
	Cursor     bool
	Samples    int
	Hidden     bool // offscreen rendering still needs a context
}

// Window is a native window owning the current GL context.
type Window interface {
	// PollEvents pumps pending events. Quit and Escape mark the
	// window as closing.
	PollEvents()
	ShouldClose() bool
	// Size returns the drawable size in pixels.
	Size() (width, height int)
	SwapBuffers()
	SetTitle(title string)
	Close()
}

// New creates a window with the configured backend and makes its GL
// context current.
func New(cfg Config) (Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d must be positive", cfg.Width, cfg.Height)
	}

	var (
		w   Window
		err error
	)
	switch cfg.Backend {
	case config.BackendSDL, "":
		w, err = newSDL(cfg)
	case config.BackendGLFW:
		w, err = newGLFW(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("window created",
		zap.String("backend", cfg.Backend),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
		zap.Bool("hidden", cfg.Hidden),
	)
	return w, nil
}
