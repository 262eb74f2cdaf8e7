// Package camera provides the perspective camera used by the demos.
package camera

import (
	"errors"
	"fmt"

	"github.com/Faultbox/gldemo/pkg/math"
)

// ErrDegenerateProjection is returned when the viewport or clip planes
// cannot form a perspective frustum.
var ErrDegenerateProjection = errors.New("degenerate projection")

// Config holds the initial camera pose and lens settings.
type Config struct {
	Position math.Vec3

	// Orientation in degrees.
	Pitch float32
	Yaw   float32
	Roll  float32

	// Viewport size in pixels.
	Width  int
	Height int

	FOV  float32 // vertical field of view, degrees
	Near float32
	Far  float32

	// ThirdPerson moves the eye ThirdPersonDistance units back along the
	// view's -Z axis, orbiting Position instead of looking from it.
	ThirdPerson         bool
	ThirdPersonDistance float32
}

// Camera holds independently cached view and projection matrices.
// Field changes take effect after RebuildView or RebuildProjection.
type Camera struct {
	Position math.Vec3
	Pitch    float32
	Yaw      float32
	Roll     float32

	Width  int
	Height int
	FOV    float32
	Near   float32
	Far    float32

	ThirdPerson         bool
	ThirdPersonDistance float32

	view       math.Mat4
	projection math.Mat4
}

// New creates a camera with both matrices built.
func New(cfg Config) (*Camera, error) {
	c := &Camera{
		Position:            cfg.Position,
		Pitch:               cfg.Pitch,
		Yaw:                 cfg.Yaw,
		Roll:                cfg.Roll,
		Width:               cfg.Width,
		Height:              cfg.Height,
		FOV:                 cfg.FOV,
		Near:                cfg.Near,
		Far:                 cfg.Far,
		ThirdPerson:         cfg.ThirdPerson,
		ThirdPersonDistance: cfg.ThirdPersonDistance,
		projection:          math.Identity(),
	}

	c.RebuildView()
	if err := c.RebuildProjection(); err != nil {
		return nil, err
	}
	return c, nil
}

// RebuildView recomputes the view matrix. It is the inverse of a world
// transform with the same pose: negated angles and position, applied in
// reverse order (translate, roll, yaw, pitch, then the third-person offset).
func (c *Camera) RebuildView() {
	m := math.TranslateVec3(c.Position.Neg())
	m = math.RotateZ(-math.Radians(c.Roll)).Mul(m)
	m = math.RotateY(-math.Radians(c.Yaw)).Mul(m)
	m = math.RotateX(-math.Radians(c.Pitch)).Mul(m)
	if c.ThirdPerson {
		m = math.Translate(0, 0, -c.ThirdPersonDistance).Mul(m)
	}
	c.view = m
}

// RebuildProjection recomputes the perspective matrix. On error the
// previous projection is kept.
func (c *Camera) RebuildProjection() error {
	// Comparisons are written so that NaN fails them.
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d", ErrDegenerateProjection, c.Width, c.Height)
	case !(c.FOV > 0 && c.FOV < 180):
		return fmt.Errorf("%w: field of view %v", ErrDegenerateProjection, c.FOV)
	case !(c.Near > 0):
		return fmt.Errorf("%w: near plane %v", ErrDegenerateProjection, c.Near)
	case !(c.Near < c.Far):
		return fmt.Errorf("%w: near %v >= far %v", ErrDegenerateProjection, c.Near, c.Far)
	}

	aspect := float32(c.Width) / float32(c.Height)
	p := math.Perspective(math.Radians(c.FOV), aspect, c.Near, c.Far)
	if !p.IsFinite() {
		return fmt.Errorf("%w: near %v far %v overflow", ErrDegenerateProjection, c.Near, c.Far)
	}
	c.projection = p
	return nil
}

// Resize updates the viewport and rebuilds the projection.
func (c *Camera) Resize(width, height int) error {
	c.Width = width
	c.Height = height
	return c.RebuildProjection()
}

// View returns the last built view matrix.
func (c *Camera) View() math.Mat4 {
	return c.view
}

// Projection returns the last built projection matrix.
func (c *Camera) Projection() math.Mat4 {
	return c.projection
}

// Matrix returns Projection · View, combined on every call.
func (c *Camera) Matrix() math.Mat4 {
	return c.projection.Mul(c.view)
}
