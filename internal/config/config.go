// Package config handles demo configuration loading and management.
package config

import "time"

// Config holds all demo settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Timing   TimingConfig   `yaml:"timing"`
	Camera   CameraConfig   `yaml:"camera"`
	Modulo   ModuloConfig   `yaml:"modulo"`
	CubeWave CubeWaveConfig `yaml:"cubewave"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// WindowConfig holds display and context settings.
type WindowConfig struct {
	Backend    string `yaml:"backend"`    // "sdl" or "glfw"
	GLVersion  string `yaml:"gl_version"` // "major.minor", core profile
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Resizable  bool   `yaml:"resizable"`
	Title      string `yaml:"title"` // empty: the demo's own title
	VSync      bool   `yaml:"vsync"`
	Cursor     bool   `yaml:"cursor"`
	Samples    int    `yaml:"samples"` // MSAA samples, 0 disables
}

// TimingConfig holds frame timer settings.
type TimingConfig struct {
	FPSWindow time.Duration `yaml:"fps_window"`
}

// CameraConfig holds the lens and orbit settings shared by the 3D demos.
type CameraConfig struct {
	FOV      float32 `yaml:"fov"` // degrees
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Pitch    float32 `yaml:"pitch"`    // degrees
	Distance float32 `yaml:"distance"` // third-person distance
}

// ModuloConfig holds the modulo-circle pattern settings.
type ModuloConfig struct {
	Vertices       int     `yaml:"vertices"`
	Multiplier     float64 `yaml:"multiplier"`
	MultiplierRate float64 `yaml:"multiplier_rate"` // per second
	Radius         float32 `yaml:"radius"`
	HueRate        float64 `yaml:"hue_rate"` // hue turns per second
	Saturation     float64 `yaml:"saturation"`
	Value          float64 `yaml:"value"`
}

// CubeWaveConfig holds the cube grid settings.
type CubeWaveConfig struct {
	GridSize int     `yaml:"grid_size"`
	Spacing  float32 `yaml:"spacing"`
	YawSpeed float32 `yaml:"yaw_speed"` // degrees per second
}

// OutputConfig holds offscreen render settings.
type OutputConfig struct {
	Path        string `yaml:"path"` // format follows the extension
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Supersample int    `yaml:"supersample"` // render scale before downsampling
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Backend:    BackendSDL,
			GLVersion:  "3.3",
			Width:      750,
			Height:     750,
			Fullscreen: false,
			Resizable:  true,
			VSync:      false,
			Cursor:     true,
			Samples:    0,
		},
		Timing: TimingConfig{
			FPSWindow: time.Second,
		},
		Camera: CameraConfig{
			FOV:      90,
			Near:     0.1,
			Far:      25,
			Pitch:    25,
			Distance: 8,
		},
		Modulo: ModuloConfig{
			Vertices:       500,
			Multiplier:     4,
			MultiplierRate: 1,
			Radius:         1,
			HueRate:        0.125,
			Saturation:     1,
			Value:          1,
		},
		CubeWave: CubeWaveConfig{
			GridSize: 6,
			Spacing:  1,
			YawSpeed: 45,
		},
		Output: OutputConfig{
			Path:        "image.png",
			Width:       750,
			Height:      750,
			Supersample: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
