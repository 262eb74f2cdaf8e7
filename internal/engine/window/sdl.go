package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/gldemo/internal/engine/input"
	"github.com/Faultbox/gldemo/internal/logger"
)

// sdlWindow wraps an SDL2 window and its OpenGL context.
type sdlWindow struct {
	window    *sdl.Window
	glContext sdl.GLContext
	input     *input.Input

	width, height int
}

func newSDL(cfg Config) (*sdlWindow, error) {
	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Attributes must be set before the window exists.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, cfg.GLMajor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, cfg.GLMinor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	if cfg.Samples > 0 {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, cfg.Samples)
	}

	w, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdlFlags(cfg),
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	glContext, err := w.GLCreateContext()
	if err != nil {
		w.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	if !cfg.Cursor {
		if _, err := sdl.ShowCursor(sdl.DISABLE); err != nil {
			logger.Warn("failed to hide cursor", zap.Error(err))
		}
	}

	sw := &sdlWindow{
		window:    w,
		glContext: glContext,
		input:     input.New(),
	}
	sw.refreshSize()
	return sw, nil
}

func sdlFlags(cfg Config) uint32 {
	flags := uint32(sdl.WINDOW_OPENGL)
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if cfg.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}
	return flags
}

func (w *sdlWindow) PollEvents() {
	w.input.Update()
	if width, height, ok := w.input.Resized(); ok {
		logger.Debug("window resized", zap.Int("width", width), zap.Int("height", height))
		w.refreshSize()
	}
}

// refreshSize caches the drawable size, which differs from the window
// size on high-DPI displays.
func (w *sdlWindow) refreshSize() {
	width, height := w.window.GLGetDrawableSize()
	w.width, w.height = int(width), int(height)
}

func (w *sdlWindow) ShouldClose() bool {
	return w.input.QuitRequested()
}

func (w *sdlWindow) Size() (int, int) {
	return w.width, w.height
}

func (w *sdlWindow) SwapBuffers() {
	w.window.GLSwap()
}

func (w *sdlWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

// Close destroys the window and cleans up SDL2.
func (w *sdlWindow) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}

	sdl.Quit()
}
