package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Faultbox/gldemo/internal/logger"
)

// glfwWindow wraps a GLFW window and its OpenGL context.
type glfwWindow struct {
	window *glfw.Window
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(!cfg.Hidden))
	if cfg.Samples > 0 {
		glfw.WindowHint(glfw.Samples, cfg.Samples)
	}

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	w.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if !cfg.Cursor {
		w.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}

	return &glfwWindow{window: w}, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
	if w.window.GetKey(glfw.KeyEscape) == glfw.Press {
		w.window.SetShouldClose(true)
	}
}

func (w *glfwWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindow) Size() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *glfwWindow) Close() {
	logger.Info("closing window")

	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	glfw.Terminate()
}
