package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// GLVersionParts parses GLVersion into its major and minor numbers.
func (w WindowConfig) GLVersionParts() (major, minor int, err error) {
	majStr, minStr, ok := strings.Cut(strings.TrimSpace(w.GLVersion), ".")
	if !ok {
		return 0, 0, fmt.Errorf("gl_version %q: want major.minor", w.GLVersion)
	}
	if major, err = strconv.Atoi(majStr); err != nil {
		return 0, 0, fmt.Errorf("gl_version %q: %w", w.GLVersion, err)
	}
	if minor, err = strconv.Atoi(minStr); err != nil {
		return 0, 0, fmt.Errorf("gl_version %q: %w", w.GLVersion, err)
	}
	return major, minor, nil
}

// Validate reports every setting the demos cannot run with.
func (c *Config) Validate() error {
	var errs []error

	switch c.Window.Backend {
	case BackendSDL, BackendGLFW:
	default:
		errs = append(errs, fmt.Errorf("window.backend %q: want %q or %q", c.Window.Backend, BackendSDL, BackendGLFW))
	}
	if major, minor, err := c.Window.GLVersionParts(); err != nil {
		errs = append(errs, err)
	} else if major < 3 || (major == 3 && minor < 3) {
		errs = append(errs, fmt.Errorf("gl_version %s: at least 3.3 core is required", c.Window.GLVersion))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Samples < 0 {
		errs = append(errs, fmt.Errorf("window.samples %d must not be negative", c.Window.Samples))
	}
	if c.Timing.FPSWindow <= 0 {
		errs = append(errs, fmt.Errorf("timing.fps_window %v must be positive", c.Timing.FPSWindow))
	}
	if c.Modulo.Vertices <= 0 {
		errs = append(errs, fmt.Errorf("modulo.vertices %d must be positive", c.Modulo.Vertices))
	}
	if c.CubeWave.GridSize < 0 || c.CubeWave.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("cubewave grid %d spacing %v: size must be >= 0 and spacing positive",
			c.CubeWave.GridSize, c.CubeWave.Spacing))
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		errs = append(errs, fmt.Errorf("output size %dx%d must be positive", c.Output.Width, c.Output.Height))
	}
	if c.Output.Supersample < 1 || c.Output.Supersample > 4 {
		errs = append(errs, fmt.Errorf("output.supersample %d: want 1 to 4", c.Output.Supersample))
	}

	return errors.Join(errs...)
}
